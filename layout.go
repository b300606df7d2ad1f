package pickchar

import (
	"fmt"
	"strconv"
	"strings"
)

// Pad is the space reserved on the two sides of a glyph along one axis.
type Pad struct {
	Before, After int
}

// ParsePad reads a padding spec: a single non-negative integer applied to
// both sides, or "before,after". The empty string is no padding.
func ParsePad(s string) (Pad, error) {
	if s == "" {
		return Pad{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return Pad{}, fmt.Errorf("bad padding %q: want N or N,N", s)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Pad{}, fmt.Errorf("bad padding %q: want N or N,N", s)
		}
		if v < 0 {
			return Pad{}, fmt.Errorf("bad padding %q: negative values not allowed", s)
		}
		vals[i] = v
	}
	if len(vals) == 1 {
		return Pad{Before: vals[0], After: vals[0]}, nil
	}
	return Pad{Before: vals[0], After: vals[1]}, nil
}

// Grid is the combo image geometry: every character occupies one fixed
// size cell, row-major from the top left.
type Grid struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	Width      int // canvas size
	Height     int
	XPad, YPad Pad
}

// NewGrid computes the grid for count characters laid out in the given
// number of columns. Cells are the font size grown by the padding on each
// side; the row count is exact, with no trailing empty row when count is a
// multiple of columns.
func NewGrid(count, columns, fontSize int, xpad, ypad Pad) (Grid, error) {
	if columns < 1 {
		return Grid{}, fmt.Errorf("column count must be positive (got %d)", columns)
	}
	if count < 0 {
		return Grid{}, fmt.Errorf("character count cannot be negative (got %d)", count)
	}
	if fontSize < 1 {
		return Grid{}, fmt.Errorf("font size must be positive (got %d)", fontSize)
	}
	g := Grid{
		Columns:    columns,
		Rows:       (count + columns - 1) / columns,
		CellWidth:  xpad.Before + fontSize + xpad.After,
		CellHeight: ypad.Before + fontSize + ypad.After,
		XPad:       xpad,
		YPad:       ypad,
	}
	g.Width = g.CellWidth * g.Columns
	g.Height = g.CellHeight * g.Rows
	return g, nil
}

// CellOrigin returns the top-left pixel of the i'th cell.
func (g Grid) CellOrigin(i int) (x, y int) {
	return (i % g.Columns) * g.CellWidth, (i / g.Columns) * g.CellHeight
}

// GlyphOrigin returns where the i'th glyph is drawn: the cell origin
// pushed in by the leading padding.
func (g Grid) GlyphOrigin(i int) (x, y int) {
	x, y = g.CellOrigin(i)
	return x + g.XPad.Before, y + g.YPad.Before
}
