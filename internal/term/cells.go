package term

import (
	"image/color"
	"math"
)

// Layout pixels covered by one terminal cell. Ten pixels per row puts every
// staff line on its own row.
const (
	CellWidth  = 5
	CellHeight = 10
)

const (
	runeHLine  = '─'
	runeVLine  = '│'
	runeCross  = '┼'
	runeDiag   = '·'
	runeDisc   = '●'
	runeCircle = '○'
)

// cell is one character position. A zero rune leaves the glyph of the layer
// below visible, a nil bg leaves its background.
type cell struct {
	ch     rune
	fg, bg color.Color
}

// cellSurface rasterises layout-pixel drawing calls onto a character grid.
type cellSurface struct {
	w, h       int
	cols, rows int
	cells      []cell
}

func newCellSurface(w, h int) *cellSurface {
	cols := (w + CellWidth - 1) / CellWidth
	rows := (h + CellHeight - 1) / CellHeight
	return &cellSurface{w: w, h: h, cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

func (s *cellSurface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *cellSurface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func (s *cellSurface) Size() (int, int) { return s.w, s.h }

func (s *cellSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

func (s *cellSurface) Fill(c color.Color) {
	for i := range s.cells {
		s.cells[i] = cell{bg: c}
	}
}

// FillRect paints the background of every cell the rectangle overlaps.
// Empty rectangles cover no cell.
func (s *cellSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, r0 := s.cellOf(x, y)
	c1 := int(math.Ceil((x+w)/CellWidth)) - 1
	r1 := int(math.Ceil((y+h)/CellHeight)) - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if cl := s.at(col, row); cl != nil {
				cl.bg = c
			}
		}
	}
}

func (s *cellSurface) StrokeLine(x0, y0, x1, y1, _ float64, c color.Color) {
	ch := runeDiag
	switch {
	case x0 == x1:
		ch = runeVLine
	case y0 == y1:
		ch = runeHLine
	}
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row := s.cellOf(x0+(x1-x0)*t, y0+(y1-y0)*t)
		s.mark(col, row, ch, c)
	}
}

// mark sets a line glyph, turning crossing straight lines into a junction.
func (s *cellSurface) mark(col, row int, ch rune, c color.Color) {
	cl := s.at(col, row)
	if cl == nil {
		return
	}
	if (cl.ch == runeHLine && ch == runeVLine) || (cl.ch == runeVLine && ch == runeHLine) {
		ch = runeCross
	}
	cl.ch, cl.fg = ch, c
}

func (s *cellSurface) FillCircle(cx, cy, _ float64, c color.Color) {
	if cl := s.at(s.cellOf(cx, cy)); cl != nil {
		cl.ch, cl.fg = runeDisc, c
	}
}

func (s *cellSurface) StrokeCircle(cx, cy, _, _ float64, c color.Color) {
	if cl := s.at(s.cellOf(cx, cy)); cl != nil {
		cl.ch, cl.fg = runeCircle, c
	}
}

func (s *cellSurface) Text(str string, x, y float64, c color.Color) {
	col, row := s.cellOf(x, y)
	for _, r := range str {
		if cl := s.at(col, row); cl != nil {
			cl.ch, cl.fg = r, c
		}
		col++
	}
}
