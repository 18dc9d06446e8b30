package gridcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/imagegrid/internal/layout"
	"github.com/lehigh-university-libraries/imagegrid/internal/scan"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var cols int
	var cellWidth int
	var cellHeight int
	var padding int

	cmd := &cobra.Command{
		Use:   "inspect <folder>",
		Short: "Show the images and grid layout without rendering anything",
		Long: `Inspect lists the images that would go into the grid, their natural
sizes and grid positions, and the planned layout. No output file is written.

Useful for checking ordering and cell sizes before a slow render of a large
folder.`,
		Example: `  # Preview the auto layout
  imagegrid inspect ./photos

  # Preview a fixed 3-column layout
  imagegrid inspect ./photos --cols 3 --padding 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInspect(args[0], cols, cellWidth, cellHeight, padding)
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (0 = auto, ceil(sqrt(n)))")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "Cell width in pixels (0 = max source width)")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 0, "Cell height in pixels (0 = max source height)")
	cmd.Flags().IntVar(&padding, "padding", 8, "Padding between cells in pixels")

	return cmd
}

func executeInspect(folder string, cols, cellWidth, cellHeight, padding int) error {
	files, err := scan.Images(folder)
	if err != nil {
		return err
	}

	g := layout.Plan(files, cols, cellWidth, cellHeight, padding)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSIZE\tROW\tCOL")
	fmt.Fprintln(w, "----\t----\t---\t---")
	for i, f := range files {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\n",
			filepath.Base(f.Path),
			f.Width, f.Height,
			i/g.Cols, i%g.Cols,
		)
	}
	w.Flush()

	fmt.Printf("\nGrid: %d cols x %d rows\n", g.Cols, g.Rows)
	fmt.Printf("Cell: %dx%d, padding %dpx\n", g.CellWidth, g.CellHeight, g.Padding)
	fmt.Printf("Canvas: %dx%d\n", g.CanvasWidth, g.CanvasHeight)

	return nil
}
