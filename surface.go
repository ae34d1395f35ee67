package ui

// Surface is what widgets draw on during Render. Every primitive is clipped
// to the top of the scissor stack.
type Surface struct {
	canvas  Canvas
	scissor ScissorStack
}

// NewSurface wraps a canvas with an empty scissor stack.
func NewSurface(c Canvas) *Surface {
	return &Surface{canvas: c}
}

// PushScissor narrows the clip region to r intersected with the current clip.
func (s *Surface) PushScissor(r Region) {
	s.scissor.Push(r)
}

// PopScissor restores the previous clip region.
func (s *Surface) PopScissor() {
	s.scissor.Pop()
}

// Scissor returns the current clip region.
func (s *Surface) Scissor() Region {
	return s.scissor.Top()
}

// Depth returns the number of pushed clip regions.
func (s *Surface) Depth() int {
	return s.scissor.Len()
}

// SetRune draws r at (x, y) if the whole rune fits inside the clip.
func (s *Surface) SetRune(x, y int, r rune, style Style) {
	clip := s.scissor.Top()
	if !clip.Contains(x, y) || !clip.Contains(x+RuneWidth(r)-1, y) {
		return
	}
	s.canvas.SetContent(x, y, r, style)
}

// DrawText draws text starting at (x, y) and returns the width advanced.
func (s *Surface) DrawText(x, y int, text string, style Style) int {
	start := x
	for _, r := range text {
		s.SetRune(x, y, r, style)
		x += RuneWidth(r)
	}
	return x - start
}

// Fill paints every cell of r that is inside the clip.
func (s *Surface) Fill(r Region, ch rune, style Style) {
	r = r.Intersect(s.scissor.Top())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.canvas.SetContent(x, y, ch, style)
		}
	}
}

// DrawBorder outlines r with the given border characters.
func (s *Surface) DrawBorder(r Region, border BorderStyle, style Style) {
	if border == BorderNone || r.Width < 2 || r.Height < 2 {
		return
	}
	c := border.Chars()
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetRune(x, r.Y, c.Top, style)
		s.SetRune(x, bottom, c.Bottom, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetRune(r.X, y, c.Left, style)
		s.SetRune(right, y, c.Right, style)
	}
	s.SetRune(r.X, r.Y, c.TopLeft, style)
	s.SetRune(right, r.Y, c.TopRight, style)
	s.SetRune(r.X, bottom, c.BottomLeft, style)
	s.SetRune(right, bottom, c.BottomRight, style)
}

// DrawTitle centres title on the top edge of r, inside the corners.
func (s *Surface) DrawTitle(r Region, title string, style Style) {
	if title == "" || r.Width < 4 {
		return
	}
	title = " " + title + " "
	w := StringWidth(title)
	if w > r.Width-2 {
		return
	}
	s.DrawText(r.X+(r.Width-w)/2, r.Y, title, style)
}
