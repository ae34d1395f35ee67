package ui

import (
	"errors"
	"strings"
)

// ColorType distinguishes color representations.
type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorANSI
	ColorRGB
)

// Color is a terminal color: the default, an ANSI 256 palette entry, or RGB.
// The zero value is the default color.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// Named palette entries.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// ErrInvalidHex is returned by HexColor for malformed input.
var ErrInvalidHex = errors.New("invalid hex color")

// DefaultColor returns the terminal default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a palette color.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	var v [6]uint8
	switch len(hex) {
	case 6:
		for i := 0; i < 6; i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return Color{}, ErrInvalidHex
			}
			v[i] = n
		}
		return RGBColor(v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	case 3:
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return Color{}, ErrInvalidHex
			}
			v[i] = n<<4 | n
		}
		return RGBColor(v[0], v[1], v[2]), nil
	default:
		return Color{}, ErrInvalidHex
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Type returns the representation of c.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. Only meaningful for ColorANSI.
func (c Color) ANSI() uint8 {
	return c.r
}

// RGB returns the components. Only meaningful for ColorRGB.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Equal reports whether both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
	return true
}
