package ui

// Stack overlays its children. Each child gets the full region, clamped
// between its minimum and natural size. Later children paint over earlier
// ones and only the topmost child receives pointer events.
type Stack struct {
	Node
	children []Widget
}

// NewStack creates a stack holding children, bottom first.
func NewStack(children ...Widget) *Stack {
	s := &Stack{}
	for _, c := range children {
		s.AddChild(c)
	}
	return s
}

// AddChild pushes w on top.
func (s *Stack) AddChild(w Widget) {
	adopt(s, w)
	s.children = append(s.children, w)
}

// PopChild removes and returns the topmost child, or nil if empty.
func (s *Stack) PopChild() Widget {
	if len(s.children) == 0 {
		return nil
	}
	w := s.children[len(s.children)-1]
	s.children = s.children[:len(s.children)-1]
	orphan(w)
	return w
}

// RemoveChild detaches w and reports whether it was a child.
func (s *Stack) RemoveChild(w Widget) bool {
	var ok bool
	if s.children, ok = removeWidget(s.children, w); ok {
		orphan(w)
	}
	return ok
}

// Children returns the stacked widgets, bottom first.
func (s *Stack) Children() []Widget { return s.children }

// ChildAt only considers the topmost child.
func (s *Stack) ChildAt(x, y int) Widget {
	if len(s.children) == 0 {
		return nil
	}
	top := s.children[len(s.children)-1]
	if top.Base().Visible() && top.Base().Region().Contains(x, y) {
		return top
	}
	return nil
}

// SizeRequest takes the maximum over the children.
func (s *Stack) SizeRequest(dim Direction, prospWidth int) SizeReq {
	return maxSizeReq(s.children, dim, prospWidth)
}

// Layout places every child at the origin, clamped between its min and nat.
func (s *Stack) Layout() {
	for _, c := range s.children {
		AllocateRegion(c, clampedRegion(c, s.region, AlignStart, AlignStart))
	}
}

// Draw renders children bottom to top.
func (s *Stack) Draw(surf *Surface) {
	for _, c := range s.children {
		Render(c, surf)
	}
}

// Switcher shows exactly one of its children, chosen by index.
type Switcher struct {
	Node
	children []Widget
	current  int
	align    [2]Align
}

// NewSwitcher creates a switcher holding children; the first is current.
func NewSwitcher(children ...Widget) *Switcher {
	s := &Switcher{align: [2]Align{AlignStretch, AlignStretch}}
	for _, c := range children {
		s.AddChild(c)
	}
	return s
}

// AddChild appends w.
func (s *Switcher) AddChild(w Widget) {
	adopt(s, w)
	s.children = append(s.children, w)
}

// RemoveChild detaches w and reports whether it was a child.
func (s *Switcher) RemoveChild(w Widget) bool {
	var ok bool
	if s.children, ok = removeWidget(s.children, w); ok {
		orphan(w)
		s.QueueAllocation(true)
	}
	return ok
}

// Current returns the index of the shown child, clamped into range.
// It returns -1 when there are no children.
func (s *Switcher) Current() int {
	if len(s.children) == 0 {
		return -1
	}
	return min(max(s.current, 0), len(s.children)-1)
}

// CurrentChild returns the shown child, or nil.
func (s *Switcher) CurrentChild() Widget {
	if i := s.Current(); i >= 0 {
		return s.children[i]
	}
	return nil
}

// SetCurrent selects the shown child. Out-of-range values are clamped when read.
func (s *Switcher) SetCurrent(i int) {
	if i == s.current {
		return
	}
	s.current = i
	s.QueueAllocation(true)
	s.QueueRedraw()
	s.structureChanged()
}

// SetAlign sets how the current child is placed on each axis.
func (s *Switcher) SetAlign(x, y Align) {
	s.align = [2]Align{x, y}
	s.QueueAllocation(true)
}

// Children returns every page, shown or not.
func (s *Switcher) Children() []Widget { return s.children }

// ChildAt only considers the current page.
func (s *Switcher) ChildAt(x, y int) Widget {
	c := s.CurrentChild()
	if c != nil && c.Base().Visible() && c.Base().Region().Contains(x, y) {
		return c
	}
	return nil
}

// SizeRequest takes the maximum over every child so switching does not
// resize the layout.
func (s *Switcher) SizeRequest(dim Direction, prospWidth int) SizeReq {
	return maxSizeReq(s.children, dim, prospWidth)
}

// Layout allocates the current page.
func (s *Switcher) Layout() {
	if c := s.CurrentChild(); c != nil {
		AllocateRegion(c, clampedRegion(c, s.region, s.align[Horizontal], s.align[Vertical]))
	}
}

// Draw renders the current page.
func (s *Switcher) Draw(surf *Surface) {
	if c := s.CurrentChild(); c != nil {
		Render(c, surf)
	}
}

func maxSizeReq(children []Widget, dim Direction, prospWidth int) SizeReq {
	var r SizeReq
	for _, c := range children {
		sr := PreferredSize(c, dim, prospWidth)
		r.Min = max(r.Min, sr.Min)
		r.Nat = max(r.Nat, sr.Nat)
	}
	return r
}

// clampedRegion fits c inside r. On each axis a stretched child takes the
// full extent; otherwise it is clamped between its min and natural size and
// positioned by the alignment.
func clampedRegion(c Widget, r Region, ax, ay Align) Region {
	hw := PreferredSize(c, Horizontal, -1)
	w := r.Width
	if ax != AlignStretch {
		w = min(max(hw.Min, r.Width), hw.Nat)
	}
	hv := PreferredSize(c, Vertical, w)
	h := r.Height
	if ay != AlignStretch {
		h = min(max(hv.Min, r.Height), hv.Nat)
	}
	return Region{
		X:      r.X + ax.offset(r.Width, w),
		Y:      r.Y + ay.offset(r.Height, h),
		Width:  w,
		Height: h,
	}
}

func (s *Switcher) shownChildren() []Widget {
	if c := s.CurrentChild(); c != nil {
		return []Widget{c}
	}
	return nil
}
