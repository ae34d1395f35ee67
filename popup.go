package ui

// Popup frames a single child with padding, a border and a background. It
// is normally the root of a modal layer: the layer gives it the whole
// screen and the popup centres its child inside, or offsets it by its
// stacking depth.
type Popup struct {
	Node
	child       Widget
	padding     int
	depthIndent int
	depth       int
	centred     bool
	border      BorderStyle
	borderStyle Style
	background  Style
	title       string
}

// PopupOption configures a Popup.
type PopupOption func(*Popup)

// WithPadding sets the frame width around the child. The border is drawn in
// the outermost cell of the padding.
func WithPadding(n int) PopupOption {
	return func(p *Popup) { p.padding = max(n, 0) }
}

// WithDepthIndent sets the vertical offset per stacking level for popups
// that are not centred.
func WithDepthIndent(n int) PopupOption {
	return func(p *Popup) { p.depthIndent = max(n, 0) }
}

// WithCentred centres the child vertically instead of offsetting by depth.
func WithCentred(c bool) PopupOption {
	return func(p *Popup) { p.centred = c }
}

// WithBorder sets the frame style.
func WithBorder(b BorderStyle, style Style) PopupOption {
	return func(p *Popup) { p.border, p.borderStyle = b, style }
}

// WithBackground sets the style used to clear the frame.
func WithBackground(style Style) PopupOption {
	return func(p *Popup) { p.background = style }
}

// WithTitle draws title on the top border.
func WithTitle(title string) PopupOption {
	return func(p *Popup) { p.title = title }
}

// NewPopup wraps child. Defaults: padding 1, centred, single border.
func NewPopup(child Widget, opts ...PopupOption) *Popup {
	p := &Popup{padding: 1, centred: true, border: BorderSingle}
	for _, opt := range opts {
		opt(p)
	}
	if child != nil {
		p.SetChild(child)
	}
	return p
}

// SetChild replaces the framed child.
func (p *Popup) SetChild(w Widget) {
	if p.child != nil {
		orphan(p.child)
	}
	p.child = w
	if w != nil {
		adopt(p, w)
	}
}

// Child returns the framed widget, or nil.
func (p *Popup) Child() Widget { return p.child }

// Depth returns the stacking level assigned when the popup's layer was pushed.
func (p *Popup) Depth() int { return p.depth }

func (p *Popup) setDepth(d int) {
	if d == p.depth {
		return
	}
	p.depth = d
	p.InvalidateSize(true)
}

// SetTitle changes the border title.
func (p *Popup) SetTitle(t string) {
	p.title = t
	p.QueueRedraw()
}

func (p *Popup) indent() int {
	if p.centred {
		return 0
	}
	return p.depth * p.depthIndent
}

// Children returns the framed widget, if any.
func (p *Popup) Children() []Widget {
	if p.child == nil {
		return nil
	}
	return []Widget{p.child}
}

// ChildAt returns the framed widget when it contains (x, y).
func (p *Popup) ChildAt(x, y int) Widget {
	if p.child == nil {
		return nil
	}
	return hitTest([]Widget{p.child}, x, y)
}

// SizeRequest is the child's request plus padding and depth indent.
func (p *Popup) SizeRequest(dim Direction, prospWidth int) SizeReq {
	pad := 2 * p.padding
	if p.child == nil {
		return SizeReq{Min: pad, Nat: pad}
	}
	if dim == Vertical {
		prospWidth = max(prospWidth-pad, 0)
		pad += p.indent()
	}
	sr := PreferredSize(p.child, dim, prospWidth)
	return SizeReq{Min: sr.Min + pad, Nat: sr.Nat + pad}
}

// Layout centres the child horizontally inside the padding, and vertically
// when the popup is centred.
func (p *Popup) Layout() {
	if p.child == nil {
		return
	}
	r := p.region
	pad := p.padding
	availW := max(r.Width-2*pad, 0)
	availH := max(r.Height-2*pad-p.indent(), 0)

	hw := PreferredSize(p.child, Horizontal, -1)
	w := max(hw.Min, min(availW, hw.Nat))
	hv := PreferredSize(p.child, Vertical, w)
	h := max(hv.Min, min(availH, hv.Nat))

	y := r.Y + pad + p.indent()
	if p.centred {
		y = r.Y + pad + (availH-h)/2
	}
	AllocateRegion(p.child, Region{X: r.X + pad + (availW-w)/2, Y: y, Width: w, Height: h})
}

// Frame returns the area covered by the popup's decoration: the child's
// region grown by the padding.
func (p *Popup) Frame() Region {
	if p.child == nil {
		return p.region
	}
	cr := p.child.Base().Region()
	cm := p.child.Base().Margin()
	return Region{
		X:      cr.X - cm.Left - p.padding,
		Y:      cr.Y - cm.Top - p.padding,
		Width:  cr.Width + cm.Horizontal() + 2*p.padding,
		Height: cr.Height + cm.Vertical() + 2*p.padding,
	}
}

// Draw fills the frame, draws the border and title, then the child.
func (p *Popup) Draw(s *Surface) {
	frame := p.Frame()
	s.Fill(frame, ' ', p.background)
	if p.padding > 0 {
		s.DrawBorder(frame, p.border, p.borderStyle)
		s.DrawTitle(frame, p.title, p.borderStyle)
	}
	if p.child != nil {
		Render(p.child, s)
	}
}
