package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/lehigh-university-libraries/imagegrid/internal/layout"
	"github.com/lehigh-university-libraries/imagegrid/internal/scan"
)

// Cell loads one source image and renders it into an opaque w×h cell:
// scaled to fit without cropping, centered, letterboxed with bg.
func Cell(path string, w, h int, bg color.Color) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return fit(src, w, h, bg), nil
}

// fit scales src to fit inside w×h preserving aspect ratio and centers it on
// an opaque background. Centering uses integer floor division, so a 1-pixel
// remainder biases top/left. The 1-pixel floor on the resized dimensions
// keeps extreme aspect ratios from collapsing to a zero-size resize.
func fit(src image.Image, w, h int, bg color.Color) *image.NRGBA {
	b := src.Bounds()
	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))

	newW := int(math.Round(float64(b.Dx()) * scale))
	newH := int(math.Round(float64(b.Dy()) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	resized := imaging.Resize(src, newW, newH, imaging.Lanczos)

	// Overlay composites with the resized image's own alpha, so transparent
	// source pixels show the background. The offset must be computed with a
	// single floor division; imaging.OverlayCenter halves each dimension
	// separately and lands one pixel low/right when the remainder is odd.
	cell := imaging.New(w, h, bg)
	return imaging.Overlay(cell, resized, image.Pt((w-newW)/2, (h-newH)/2), 1.0)
}

// Compose renders every image into its grid slot on a single canvas. Slots
// past the last image stay plain background. Any decode failure aborts the
// whole composition; there is no partial-grid output.
func Compose(g layout.GridLayout, files []scan.ImageFile, bg color.Color) (*image.NRGBA, error) {
	canvas := imaging.New(g.CanvasWidth, g.CanvasHeight, bg)

	for i, f := range files {
		cell, err := Cell(f.Path, g.CellWidth, g.CellHeight, bg)
		if err != nil {
			return nil, err
		}

		x, y := g.CellOrigin(i)
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}

	return canvas, nil
}
