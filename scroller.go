package ui

// ScrollConfig sets scroll step sizes in cells.
type ScrollConfig struct {
	LineStep  int // cells per arrow key press
	WheelStep int // lines per wheel notch
}

// DefaultScrollConfig is used when a scroller is not under a root.
var DefaultScrollConfig = ScrollConfig{LineStep: 1, WheelStep: 3}

// Scroller shows a vertical window onto a single child laid out at its full
// natural height.
type Scroller struct {
	Node
	child         Widget
	scroll        int
	contentHeight int
	scrollbar     bool
	barStyle      Style
}

// NewScroller wraps child.
func NewScroller(child Widget) *Scroller {
	s := &Scroller{barStyle: NewStyle().Reverse()}
	if child != nil {
		s.SetChild(child)
	}
	return s
}

// SetChild replaces the scrolled child.
func (s *Scroller) SetChild(w Widget) {
	if s.child != nil {
		orphan(s.child)
	}
	s.child = w
	if w != nil {
		adopt(s, w)
	}
	s.scroll = 0
}

// Child returns the scrolled widget, or nil.
func (s *Scroller) Child() Widget { return s.child }

// Scroll returns the current offset.
func (s *Scroller) Scroll() int { return s.scroll }

// MaxScroll returns the largest offset allowed by the last layout.
func (s *Scroller) MaxScroll() int {
	return max(s.contentHeight-s.region.Height, 0)
}

// SetScroll moves the window. The value is clamped on the next layout.
func (s *Scroller) SetScroll(v int) {
	if v == s.scroll {
		return
	}
	s.scroll = v
	s.QueueAllocation(true)
	s.QueueRedraw()
}

// ScrollBy moves the window by delta cells, clamped immediately.
func (s *Scroller) ScrollBy(delta int) {
	s.SetScroll(min(max(s.scroll+delta, 0), s.MaxScroll()))
}

// SetScrollbarVisible draws a bar on the right edge when content overflows.
func (s *Scroller) SetScrollbarVisible(v bool) {
	s.scrollbar = v
	s.QueueRedraw()
}

// Children returns the scrolled widget, if any.
func (s *Scroller) Children() []Widget {
	if s.child == nil {
		return nil
	}
	return []Widget{s.child}
}

// ChildAt returns the child when (x, y) is inside the visible window.
func (s *Scroller) ChildAt(x, y int) Widget {
	if s.child == nil || !s.region.Contains(x, y) {
		return nil
	}
	return hitTest([]Widget{s.child}, x, y)
}

// SizeRequest reports the child's size except that the vertical minimum is
// zero: a scroller can always shrink.
func (s *Scroller) SizeRequest(dim Direction, prospWidth int) SizeReq {
	if s.child == nil {
		return SizeReq{}
	}
	sr := PreferredSize(s.child, dim, prospWidth)
	if dim == Vertical {
		sr.Min = 0
	}
	return sr
}

// Layout gives the child its full height, shifted up by the scroll offset.
func (s *Scroller) Layout() {
	if s.child == nil {
		return
	}
	r := s.region
	sr := PreferredSize(s.child, Vertical, r.Width)
	h := sr.Nat
	if h >= ExpandSize {
		h = max(sr.Min, r.Height)
	}
	s.contentHeight = h
	s.scroll = min(max(s.scroll, 0), s.MaxScroll())
	AllocateRegion(s.child, NewRegion(r.X, r.Y, r.Width, h).Translate(0, -s.scroll))
}

// Draw renders the child clipped to the window, then the scrollbar.
func (s *Scroller) Draw(surf *Surface) {
	if s.child == nil {
		return
	}
	surf.PushScissor(s.region)
	Render(s.child, surf)
	surf.PopScissor()

	if s.scrollbar && s.contentHeight > s.region.Height && s.region.Height > 0 {
		s.drawScrollbar(surf)
	}
}

func (s *Scroller) drawScrollbar(surf *Surface) {
	r := s.region
	x := r.Right() - 1
	thumb := max(r.Height*r.Height/s.contentHeight, 1)
	pos := 0
	if m := s.MaxScroll(); m > 0 {
		pos = s.scroll * (r.Height - thumb) / m
	}
	for y := 0; y < r.Height; y++ {
		if y >= pos && y < pos+thumb {
			surf.SetRune(x, r.Y+y, ' ', s.barStyle)
		} else {
			surf.SetRune(x, r.Y+y, '│', NewStyle().Dim())
		}
	}
}

func (s *Scroller) config() ScrollConfig {
	if root := s.Owner(); root != nil {
		return root.scroll
	}
	return DefaultScrollConfig
}

// HandleEvent scrolls on paging keys, arrows, home/end and the wheel.
func (s *Scroller) HandleEvent(ev Event) bool {
	cfg := s.config()
	page := max(s.region.Height, 1)
	switch e := ev.(type) {
	case KeyEvent:
		switch e.Key {
		case KeyPageDown:
			s.ScrollBy(page)
		case KeyPageUp:
			s.ScrollBy(-page)
		case KeyDown:
			s.ScrollBy(cfg.LineStep)
		case KeyUp:
			s.ScrollBy(-cfg.LineStep)
		case KeyHome:
			s.SetScroll(0)
		case KeyEnd:
			s.SetScroll(s.MaxScroll())
		case KeyRune:
			switch e.Rune {
			case ' ', '+', '>', '\'':
				s.ScrollBy(page)
			case '-', '<', ';':
				s.ScrollBy(-page)
			default:
				return false
			}
		default:
			return false
		}
		return true
	case MouseEvent:
		if e.Kind != MouseWheel {
			return false
		}
		s.ScrollBy(-e.WheelDelta * cfg.WheelStep * cfg.LineStep)
		return true
	}
	return false
}
