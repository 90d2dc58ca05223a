// pkg/gridmap/grid.go
package gridmap

import "math"

// Layout maps the square tile grid to screen pixels. Cells are CellSize wide
// with Gap pixels between them, starting at (OriginX, OriginY).
type Layout struct {
	OriginX, OriginY float64
	CellSize, Gap    float64
	Rows, Cols       int
}

// Centered returns a layout of rows x cols cells centred in the rectangle
// (x, y, w, h).
func Centered(rows, cols int, cellSize, gap, x, y, w, h float64) Layout {
	l := Layout{CellSize: cellSize, Gap: gap, Rows: rows, Cols: cols}
	gw, gh := l.Size()
	l.OriginX = x + (w-gw)/2
	l.OriginY = y + (h-gh)/2
	return l
}

// Pitch is the distance between the top-left corners of neighbouring cells.
func (l Layout) Pitch() float64 {
	return l.CellSize + l.Gap
}

// Size returns the pixel width and height of the whole grid.
func (l Layout) Size() (w, h float64) {
	w = float64(l.Cols)*l.Pitch() - l.Gap
	h = float64(l.Rows)*l.Pitch() - l.Gap
	return
}

// CellToPixel returns the top-left corner of a cell.
func (l Layout) CellToPixel(row, col int) (x, y float64) {
	x = l.OriginX + float64(col)*l.Pitch()
	y = l.OriginY + float64(row)*l.Pitch()
	return
}

// CellCenter returns the centre of a cell.
func (l Layout) CellCenter(row, col int) (x, y float64) {
	x, y = l.CellToPixel(row, col)
	return x + l.CellSize/2, y + l.CellSize/2
}

// PixelToCell returns the cell under a point. Points in the gaps between cells
// or outside the grid report false.
func (l Layout) PixelToCell(x, y float64) (row, col int, ok bool) {
	fx := (x - l.OriginX) / l.Pitch()
	fy := (y - l.OriginY) / l.Pitch()
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	col, row = int(fx), int(fy)
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	if (fx-float64(col))*l.Pitch() > l.CellSize || (fy-float64(row))*l.Pitch() > l.CellSize {
		return 0, 0, false
	}
	return row, col, true
}

// Contains reports whether a point lies inside the grid rectangle, gaps
// included.
func (l Layout) Contains(x, y float64) bool {
	w, h := l.Size()
	return x >= l.OriginX && y >= l.OriginY && x < l.OriginX+w && y < l.OriginY+h
}

// ShiftOffset converts a drag distance in pixels into a whole number of cells,
// rounding half away from zero.
func (l Layout) ShiftOffset(delta float64) int {
	return int(math.Round(delta / l.Pitch()))
}
