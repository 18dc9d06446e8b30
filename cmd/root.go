package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/imagegrid/internal/config"
	"github.com/lehigh-university-libraries/imagegrid/internal/gridcmd"
)

func NewRootCmd() *cobra.Command {
	var output string
	var cols int
	var cellWidth int
	var cellHeight int
	var padding int
	var bg string
	var quality int

	cmd := &cobra.Command{
		Use:   "imagegrid [flags] <folder>",
		Short: "Compose every image in a folder into a single grid image",
		Long: `imagegrid scans a folder for images (jpg, jpeg, png, bmp, gif, tif,
tiff, webp), lays them out on a rows-by-columns grid, scales each one to fit a
uniform cell without cropping, and writes a single composite image.

Columns and cell size default to sensible automatic values: ceil(sqrt(n))
columns and a cell large enough for the biggest source image. The output
format is inferred from the output file extension.`,
		Example: `  # Auto layout, default white background
  imagegrid ./photos

  # 2-column contact sheet with a 10px gap
  imagegrid ./photos --cols 2 --padding 10 -o contact-sheet.png

  # Dark background, fixed cell size
  imagegrid ./shots --cell-width 320 --cell-height 240 --bg "#202020"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(args[0], config.Flags{
				Output:     output,
				Cols:       cols,
				CellWidth:  cellWidth,
				CellHeight: cellHeight,
				Padding:    padding,
				Background: bg,
				Quality:    quality,
			}, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			return gridcmd.Build(cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "grid.jpg", "Output image file path")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (0 = auto, ceil(sqrt(n)))")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "Cell width in pixels (0 = max source width)")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 0, "Cell height in pixels (0 = max source height)")
	cmd.Flags().IntVar(&padding, "padding", 8, "Padding between cells in pixels")
	cmd.Flags().StringVar(&bg, "bg", "#ffffff", "Background color (#rrggbb hex or SVG color name)")
	cmd.Flags().IntVar(&quality, "quality", 95, "JPEG quality (1-100), used for .jpg/.jpeg output")

	// Add subcommands
	cmd.AddCommand(gridcmd.NewInspectCmd())

	return cmd
}
