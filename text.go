package ui

import (
	"strings"
	"unicode/utf8"
)

// Text is a leaf that displays a string. With wrapping enabled its height
// depends on the width it is given.
type Text struct {
	Node
	text      string
	style     Style
	wrap      bool
	ellipsize bool
}

// NewText creates an unwrapped text widget.
func NewText(s string) *Text {
	return &Text{text: s}
}

// Text returns the current content.
func (t *Text) Text() string { return t.text }

// SetText replaces the content.
func (t *Text) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.InvalidateSize(true)
	t.QueueRedraw()
	t.NotifyStateChanged()
}

// SetStyle sets the draw style.
func (t *Text) SetStyle(s Style) {
	t.style = s
	t.QueueRedraw()
}

// SetWrap enables word wrapping at the allocated width.
func (t *Text) SetWrap(w bool) {
	t.wrap = w
	t.InvalidateSize(true)
}

// SetEllipsize lets the text be cut short, marking the cut with an ellipsis.
func (t *Text) SetEllipsize(e bool) {
	t.ellipsize = e
	t.InvalidateSize(true)
}

// SizeRequest wraps to prospWidth for Vertical.
func (t *Text) SizeRequest(dim Direction, prospWidth int) SizeReq {
	if dim == Horizontal {
		nat, word := 0, 0
		for _, line := range strings.Split(t.text, "\n") {
			nat = max(nat, StringWidth(line))
			for _, f := range strings.Fields(line) {
				word = max(word, StringWidth(f))
			}
		}
		switch {
		case t.ellipsize:
			return SizeReq{Min: 0, Nat: nat}
		case t.wrap:
			return SizeReq{Min: word, Nat: nat}
		}
		return SizeReq{Min: nat, Nat: nat}
	}

	n := len(t.lines(prospWidth))
	if t.ellipsize {
		return SizeReq{Min: min(n, 1), Nat: n}
	}
	return SizeReq{Min: n, Nat: n}
}

func (t *Text) lines(width int) []string {
	if t.text == "" {
		return nil
	}
	if !t.wrap {
		return strings.Split(t.text, "\n")
	}
	return WrapText(t.text, width)
}

// Draw paints the wrapped lines that fit, ellipsizing the last when enabled.
func (t *Text) Draw(s *Surface) {
	r := t.region
	lines := t.lines(r.Width)
	for i := 0; i < len(lines) && i < r.Height; i++ {
		line := lines[i]
		cut := StringWidth(line) > r.Width || (i == r.Height-1 && len(lines) > r.Height)
		if t.ellipsize && cut {
			line = Ellipsize(line, r.Width)
		}
		s.DrawText(r.X, r.Y+i, line, t.style)
	}
}

// WrapText breaks text into lines no wider than width, splitting at spaces
// and hard-breaking words that do not fit on a line of their own. Explicit
// newlines are kept. A non-positive width disables wrapping.
func WrapText(text string, width int) []string {
	paras := strings.Split(text, "\n")
	if width <= 0 {
		return paras
	}
	var out []string
	for _, p := range paras {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line strings.Builder
		lw := 0
		flush := func() {
			out = append(out, line.String())
			line.Reset()
			lw = 0
		}
		for _, w := range words {
			ww := StringWidth(w)
			if lw > 0 && lw+1+ww > width {
				flush()
			}
			for ww > width {
				head, rest := splitAtWidth(w, width)
				if head == "" {
					// A single rune wider than the line.
					_, size := utf8.DecodeRuneInString(w)
					head, rest = w[:size], w[size:]
				}
				out = append(out, head)
				w, ww = rest, StringWidth(rest)
			}
			if lw > 0 {
				line.WriteByte(' ')
				lw++
			}
			line.WriteString(w)
			lw += ww
		}
		if lw > 0 {
			flush()
		}
	}
	return out
}

// splitAtWidth returns the longest prefix of s no wider than width and the rest.
func splitAtWidth(s string, width int) (string, string) {
	w := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

// Ellipsize marks s as cut: it keeps at most width-1 cells and appends "…".
func Ellipsize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	head, _ := splitAtWidth(s, width-1)
	return head + "…"
}
