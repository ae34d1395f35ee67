package ui

import (
	"testing"
)

func TestDefaultColor(t *testing.T) {
	c := DefaultColor()
	if c.Type() != ColorDefault {
		t.Errorf("DefaultColor().Type() = %v, want ColorDefault", c.Type())
	}
	if !c.IsDefault() {
		t.Error("DefaultColor().IsDefault() = false, want true")
	}
}

func TestANSIColor(t *testing.T) {
	type tc struct {
		idx uint8
	}

	tests := map[string]tc{
		"zero": {idx: 0},
		"one":  {idx: 1},
		"mid":  {idx: 127},
		"max":  {idx: 255},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := ANSIColor(tt.idx)
			if c.Type() != ColorANSI {
				t.Errorf("ANSIColor(%d).Type() = %v, want ColorANSI", tt.idx, c.Type())
			}
			if c.IsDefault() {
				t.Errorf("ANSIColor(%d).IsDefault() = true, want false", tt.idx)
			}
			if got := c.ANSI(); got != tt.idx {
				t.Errorf("ANSIColor(%d).ANSI() = %d, want %d", tt.idx, got, tt.idx)
			}
		})
	}
}

func TestRGBColor(t *testing.T) {
	type tc struct {
		r, g, b uint8
	}

	tests := map[string]tc{
		"black": {r: 0, g: 0, b: 0},
		"white": {r: 255, g: 255, b: 255},
		"red":   {r: 255, g: 0, b: 0},
		"green": {r: 0, g: 255, b: 0},
		"blue":  {r: 0, g: 0, b: 255},
		"mixed": {r: 128, g: 64, b: 32},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := RGBColor(tt.r, tt.g, tt.b)
			if c.Type() != ColorRGB {
				t.Errorf("RGBColor(%d,%d,%d).Type() = %v, want ColorRGB", tt.r, tt.g, tt.b, c.Type())
			}
			if c.IsDefault() {
				t.Errorf("RGBColor(%d,%d,%d).IsDefault() = true, want false", tt.r, tt.g, tt.b)
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGBColor(%d,%d,%d).RGB() = %d,%d,%d, want %d,%d,%d",
					tt.r, tt.g, tt.b, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHexColor_Valid6Digit(t *testing.T) {
	type tc struct {
		hex     string
		r, g, b uint8
	}

	tests := map[string]tc{
		"black":           {hex: "#000000", r: 0, g: 0, b: 0},
		"white uppercase": {hex: "#FFFFFF", r: 255, g: 255, b: 255},
		"white lowercase": {hex: "#ffffff", r: 255, g: 255, b: 255},
		"red":             {hex: "#FF0000", r: 255, g: 0, b: 0},
		"green":           {hex: "#00FF00", r: 0, g: 255, b: 0},
		"blue":            {hex: "#0000FF", r: 0, g: 0, b: 255},
		"mixed":           {hex: "#1A2B3C", r: 26, g: 43, b: 60},
		"without hash":    {hex: "1A2B3C", r: 26, g: 43, b: 60},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.hex)
			if err != nil {
				t.Fatalf("HexColor(%q) returned error: %v", tt.hex, err)
			}
			if c.Type() != ColorRGB {
				t.Fatalf("HexColor(%q).Type() = %v, want ColorRGB", tt.hex, c.Type())
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HexColor(%q).RGB() = %d,%d,%d, want %d,%d,%d",
					tt.hex, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHexColor_Valid3Digit(t *testing.T) {
	type tc struct {
		hex     string
		r, g, b uint8
	}

	tests := map[string]tc{
		"black":           {hex: "#000", r: 0, g: 0, b: 0},
		"white uppercase": {hex: "#FFF", r: 255, g: 255, b: 255},
		"white lowercase": {hex: "#fff", r: 255, g: 255, b: 255},
		"red":             {hex: "#F00", r: 255, g: 0, b: 0},
		"green":           {hex: "#0F0", r: 0, g: 255, b: 0},
		"blue":            {hex: "#00F", r: 0, g: 0, b: 255},
		"mixed":           {hex: "#ABC", r: 0xAA, g: 0xBB, b: 0xCC},
		"without hash":    {hex: "ABC", r: 0xAA, g: 0xBB, b: 0xCC},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.hex)
			if err != nil {
				t.Fatalf("HexColor(%q) returned error: %v", tt.hex, err)
			}
			if c.Type() != ColorRGB {
				t.Fatalf("HexColor(%q).Type() = %v, want ColorRGB", tt.hex, c.Type())
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HexColor(%q).RGB() = %d,%d,%d, want %d,%d,%d",
					tt.hex, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHexColor_Invalid(t *testing.T) {
	type tc struct {
		hex string
	}

	tests := map[string]tc{
		"empty":           {hex: ""},
		"hash only":       {hex: "#"},
		"one digit":       {hex: "#1"},
		"two digits":      {hex: "#12"},
		"four digits":     {hex: "#1234"},
		"five digits":     {hex: "#12345"},
		"seven digits":    {hex: "#1234567"},
		"invalid 3 digit": {hex: "#GGG"},
		"invalid 6 digit": {hex: "#GGGGGG"},
		"partial invalid": {hex: "#12345G"},
		"not a color":     {hex: "not-a-color"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := HexColor(tt.hex)
			if err == nil {
				t.Errorf("HexColor(%q) should return error", tt.hex)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	type tc struct {
		a, b  Color
		equal bool
	}

	tests := map[string]tc{
		"default == default":     {a: DefaultColor(), b: DefaultColor(), equal: true},
		"ansi 0 == ansi 0":       {a: ANSIColor(0), b: ANSIColor(0), equal: true},
		"ansi 0 != ansi 1":       {a: ANSIColor(0), b: ANSIColor(1), equal: false},
		"rgb black == rgb black": {a: RGBColor(0, 0, 0), b: RGBColor(0, 0, 0), equal: true},
		"rgb != rgb different":   {a: RGBColor(0, 0, 0), b: RGBColor(1, 0, 0), equal: false},
		"default != ansi":        {a: DefaultColor(), b: ANSIColor(0), equal: false},
		"default != rgb":         {a: DefaultColor(), b: RGBColor(0, 0, 0), equal: false},
		"ansi != rgb":            {a: ANSIColor(0), b: RGBColor(0, 0, 0), equal: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			// Test symmetry
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("(symmetric) Equal() = %v, want %v", got, tt.equal)
			}
		})
	}
}
