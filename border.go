package ui

import "fmt"

// BorderStyle selects a set of box-drawing characters.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderChars holds the runes used to draw a border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Chars returns the characters for b. BorderNone yields spaces.
func (b BorderStyle) Chars() BorderChars {
	if c, ok := borderChars[b]; ok {
		return c
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// ParseBorderStyle maps a config name to a BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "", "none":
		return BorderNone, nil
	case "single":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	case "thick":
		return BorderThick, nil
	}
	return BorderNone, fmt.Errorf("unknown border style %q", name)
}
