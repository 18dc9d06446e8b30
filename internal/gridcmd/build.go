package gridcmd

import (
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/lehigh-university-libraries/imagegrid/internal/config"
	"github.com/lehigh-university-libraries/imagegrid/internal/layout"
	"github.com/lehigh-university-libraries/imagegrid/internal/render"
	"github.com/lehigh-university-libraries/imagegrid/internal/scan"
)

// Build runs the whole pipeline: enumerate, plan, compose, save. Any failure
// along the way aborts the run; the output file is only opened once the
// canvas is fully composed in memory.
func Build(cfg config.Config) error {
	files, err := scan.Images(cfg.Folder)
	if err != nil {
		return err
	}

	slog.Info("Found images", "folder", cfg.Folder, "count", len(files))

	g := layout.Plan(files, cfg.Cols, cfg.CellWidth, cfg.CellHeight, cfg.Padding)
	slog.Info("Planned grid",
		"cols", g.Cols,
		"rows", g.Rows,
		"cell", fmt.Sprintf("%dx%d", g.CellWidth, g.CellHeight),
		"canvas", fmt.Sprintf("%dx%d", g.CanvasWidth, g.CanvasHeight),
	)

	canvas, err := render.Compose(g, files, cfg.Background)
	if err != nil {
		return err
	}

	if err := imaging.Save(canvas, cfg.Output, imaging.JPEGQuality(cfg.JPEGQuality)); err != nil {
		return fmt.Errorf("failed to write output %s: %w", cfg.Output, err)
	}

	fmt.Printf("Wrote %s\n", cfg.Output)
	return nil
}
