package ui

import "github.com/mattn/go-runewidth"

// Cell is one character cell of a Buffer. A wide rune occupies its own cell
// plus a continuation cell to the right with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a cell, measuring the rune's display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether the cell is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// RuneWidth returns the number of cells r occupies. Zero-width and control
// runes still take one cell so they remain addressable.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
