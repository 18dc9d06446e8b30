package layout

import (
	"math"

	"github.com/lehigh-university-libraries/imagegrid/internal/scan"
)

// GridLayout is the fully resolved geometry of one grid render. Padding
// applies only between cells, never around the outer border.
type GridLayout struct {
	Cols         int
	Rows         int
	CellWidth    int
	CellHeight   int
	Padding      int
	CanvasWidth  int
	CanvasHeight int
}

// Plan resolves the grid geometry for the given images. Zero or negative
// cols and cell dimensions mean "auto": cols defaults to ceil(sqrt(n)) and
// the cell defaults to the largest natural width and height across inputs.
func Plan(files []scan.ImageFile, cols, cellWidth, cellHeight, padding int) GridLayout {
	n := len(files)

	if cellWidth <= 0 {
		cellWidth = 0
		for _, f := range files {
			if f.Width > cellWidth {
				cellWidth = f.Width
			}
		}
	}
	if cellHeight <= 0 {
		cellHeight = 0
		for _, f := range files {
			if f.Height > cellHeight {
				cellHeight = f.Height
			}
		}
	}

	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	return GridLayout{
		Cols:         cols,
		Rows:         rows,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		Padding:      padding,
		CanvasWidth:  cols*cellWidth + (cols-1)*padding,
		CanvasHeight: rows*cellHeight + (rows-1)*padding,
	}
}

// CellOrigin returns the top-left pixel of the i-th cell, row-major.
func (g GridLayout) CellOrigin(i int) (x, y int) {
	row := i / g.Cols
	col := i % g.Cols
	return col * (g.CellWidth + g.Padding), row * (g.CellHeight + g.Padding)
}
