package ui

// ProgressPopup is a modal popup for long-running work: a title, a bouncing
// activity bar and a status line. Every update renders immediately without
// waiting for input.
type ProgressPopup struct {
	root   *Root
	layer  *Layer
	status *Text
	bar    *progressBar
	closed bool
}

// NewProgressPopup pushes the popup onto root and draws it.
func NewProgressPopup(root *Root, title string, width int) *ProgressPopup {
	heading := NewText(title)
	heading.SetStyle(NewStyle().Bold())
	heading.SetAlignSelf(AlignCenter)

	bar := &progressBar{width: max(width, 3)}
	bar.SetMargin(MarginSymmetric(1, 0))

	status := NewText("")
	status.SetEllipsize(true)
	status.SetMaxSize(Size{Width: width, Height: 1})

	body := VBox(heading, bar, status)
	body.SetAlignCross(AlignStretch)

	p := &ProgressPopup{root: root, status: status, bar: bar}
	popup := NewPopup(body, root.PopupOptions()...)
	p.layer = root.PushLayout(popup, KeymapNone)
	root.RenderNow()
	return p
}

// SetStatus replaces the status line.
func (p *ProgressPopup) SetStatus(s string) {
	p.status.SetText(s)
	p.render()
}

// Advance steps the activity bar.
func (p *ProgressPopup) Advance() {
	p.bar.step()
	p.render()
}

// Close pops the popup if it is still the top layer.
func (p *ProgressPopup) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if top := p.root.top(); top != nil && top.generation == p.layer.generation {
		p.root.PopLayout()
	}
	p.root.RenderNow()
}

func (p *ProgressPopup) render() {
	if !p.closed {
		p.root.RenderNow()
	}
}

const progressMarker = 3

// progressBar draws a marker sliding back and forth along a track.
type progressBar struct {
	Node
	width int
	pos   int
}

func (b *progressBar) SizeRequest(dim Direction, _ int) SizeReq {
	if dim == Horizontal {
		return SizeReq{Min: progressMarker, Nat: b.width}
	}
	return SizeReq{Min: 1, Nat: 1}
}

func (b *progressBar) step() {
	b.pos++
	b.QueueRedraw()
}

// offset returns the marker's cell offset for a track of width w.
func (b *progressBar) offset(w int) int {
	span := w - progressMarker
	if span <= 0 {
		return 0
	}
	p := b.pos % (2 * span)
	if p > span {
		p = 2*span - p
	}
	return p
}

func (b *progressBar) Draw(s *Surface) {
	r := b.region
	if r.Empty() {
		return
	}
	track := NewStyle().Dim()
	s.Fill(Region{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, '·', track)
	off := b.offset(r.Width)
	for i := 0; i < progressMarker && off+i < r.Width; i++ {
		s.SetRune(r.X+off+i, r.Y, '█', NewStyle())
	}
}
