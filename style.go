package ui

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
)

// Style combines attributes with foreground and background colors.
// The zero value is the terminal default.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a copy with bold set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy with dim set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Underline returns a copy with underline set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a copy with reverse video set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Equal reports whether both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr reports whether every bit of a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
