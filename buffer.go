package ui

import "strings"

// Canvas is the rendering backend. Widgets never touch it directly; they
// draw through a Surface that clips every write to the scissor top.
type Canvas interface {
	// Size returns the drawable area in cells.
	Size() (width, height int)
	// SetContent writes one rune. Out-of-range writes are ignored.
	SetContent(x, y int, r rune, style Style)
	// Clear resets every cell to a blank default.
	Clear()
	// Show presents the drawn frame.
	Show()
}

// Buffer is an in-memory Canvas. It is used for off-screen rendering and as
// the backend in tests.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	shows  int
}

// NewBuffer creates a blank buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize discards the contents and reallocates at the new size.
func (b *Buffer) Resize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
	b.cells = make([]Cell, b.width*b.height)
	b.Clear()
}

// Size returns (width, height).
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Shows returns how many frames have been presented.
func (b *Buffer) Shows() int {
	return b.shows
}

// Show counts a presented frame.
func (b *Buffer) Show() {
	b.shows++
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of range.
func (b *Buffer) Cell(x, y int) Cell {
	if i := b.idx(x, y); i >= 0 {
		return b.cells[i]
	}
	return Cell{}
}

func (b *Buffer) set(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetContent writes r at (x, y). Wide runes claim the next cell as a
// continuation; any wide rune they overlap is blanked.
func (b *Buffer) SetContent(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	w := RuneWidth(r)
	b.unsplit(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.set(x, y, NewCell(' ', style))
			return
		}
		b.unsplit(x+1, y)
	}
	b.set(x, y, Cell{Rune: r, Style: style, Width: uint8(w)})
	if w == 2 {
		b.set(x+1, y, Cell{Style: style, Width: 0})
	}
}

// unsplit blanks the wide rune, if any, that covers (x, y).
func (b *Buffer) unsplit(x, y int) {
	blank := NewCell(' ', NewStyle())
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation() && b.idx(x, y) >= 0:
		b.set(x-1, y, blank)
		b.set(x, y, blank)
	case c.Width == 2:
		b.set(x, y, blank)
		b.set(x+1, y, blank)
	}
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// String renders the buffer as rows joined by newlines.
func (b *Buffer) String() string {
	return b.render(false)
}

// StringTrimmed is like String but strips trailing spaces from each row.
func (b *Buffer) StringTrimmed() string {
	return b.render(true)
}

func (b *Buffer) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(c.Rune)
			}
		}
		s := line.String()
		if trim {
			s = strings.TrimRight(s, " ")
		}
		sb.WriteString(s)
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
