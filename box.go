package ui

// Box lays out children in a line along its direction, distributing spare
// main-axis space by flex-grow weight and aligning children on the cross axis.
type Box struct {
	Node
	dir        Direction
	children   []Widget
	alignMain  Align
	alignCross Align
}

// NewBox creates an empty box laid out along dir.
func NewBox(dir Direction) *Box {
	return &Box{dir: dir}
}

// HBox creates a horizontal box holding children.
func HBox(children ...Widget) *Box {
	b := NewBox(Horizontal)
	for _, c := range children {
		b.AddChild(c)
	}
	return b
}

// VBox creates a vertical box holding children.
func VBox(children ...Widget) *Box {
	b := NewBox(Vertical)
	for _, c := range children {
		b.AddChild(c)
	}
	return b
}

// Direction returns the main axis.
func (b *Box) Direction() Direction { return b.dir }

// AddChild appends w.
func (b *Box) AddChild(w Widget) {
	adopt(b, w)
	b.children = append(b.children, w)
}

// RemoveChild detaches w and reports whether it was a child.
func (b *Box) RemoveChild(w Widget) bool {
	var ok bool
	if b.children, ok = removeWidget(b.children, w); ok {
		orphan(w)
	}
	return ok
}

// SetAlignMain sets how leftover main-axis space is used. AlignStretch lets
// children grow past their natural size to fill the box.
func (b *Box) SetAlignMain(a Align) {
	b.alignMain = a
	b.QueueAllocation(true)
}

// SetAlignCross sets the default cross-axis alignment of children.
func (b *Box) SetAlignCross(a Align) {
	b.alignCross = a
	b.QueueAllocation(true)
}

// Children returns the box's children in order.
func (b *Box) Children() []Widget { return b.children }

// ChildAt returns the visible child containing (x, y).
func (b *Box) ChildAt(x, y int) Widget { return hitTest(b.children, x, y) }

// Draw renders every child.
func (b *Box) Draw(s *Surface) {
	for _, c := range b.children {
		Render(c, s)
	}
}

// SizeRequest sums child requests along the main axis and takes the max across it.
func (b *Box) SizeRequest(dim Direction, prospWidth int) SizeReq {
	sr := b.horizontalReqs()
	if dim == Vertical {
		b.verticalReqs(sr, prospWidth)
	}

	var r SizeReq
	onMain := dim == b.dir
	for _, c := range sr {
		if onMain {
			r.Min += c.Min
			r.Nat += c.Nat
		} else {
			r.Min = max(r.Min, c.Min)
			r.Nat = max(r.Nat, c.Nat)
		}
	}
	return r
}

// Layout distributes the main axis by flex grow and aligns children across it.
func (b *Box) Layout() {
	reg := b.region
	sr := b.horizontalReqs()
	cw := b.verticalReqs(sr, reg.Width)

	var ch []int
	if b.dir == Horizontal {
		ch = b.layoutCross(sr, reg.Height)
	} else {
		ch = b.layoutMain(sr, reg.Height)
	}

	mainSizes := cw
	if b.dir == Vertical {
		mainSizes = ch
	}
	used := 0
	for _, s := range mainSizes {
		used += s
	}
	pos := b.alignMain.offset(reg.extent(b.dir), min(used, reg.extent(b.dir)))

	for i, c := range b.children {
		align := b.childAlign(c)
		if b.dir == Horizontal {
			y := reg.Y + align.offset(reg.Height, ch[i])
			AllocateRegion(c, Region{X: reg.X + pos, Y: y, Width: cw[i], Height: ch[i]})
			pos += cw[i]
		} else {
			x := reg.X + align.offset(reg.Width, cw[i])
			AllocateRegion(c, Region{X: x, Y: reg.Y + pos, Width: cw[i], Height: ch[i]})
			pos += ch[i]
		}
	}
}

func (b *Box) horizontalReqs() []SizeReq {
	sr := make([]SizeReq, len(b.children))
	for i, c := range b.children {
		sr[i] = PreferredSize(c, Horizontal, -1)
	}
	return sr
}

// verticalReqs resolves child widths for width, then replaces sr with the
// children's vertical requests at those widths. It returns the widths.
func (b *Box) verticalReqs(sr []SizeReq, width int) []int {
	var cw []int
	if b.dir == Horizontal {
		cw = b.layoutMain(sr, width)
	} else {
		cw = b.layoutCross(sr, width)
	}
	for i, c := range b.children {
		sr[i] = PreferredSize(c, Vertical, cw[i])
	}
	return cw
}

// layoutMain starts every child at its minimum and hands out the remaining
// space by flex-grow weight, never past a child's natural size unless the
// box stretches.
func (b *Box) layoutMain(sr []SizeReq, size int) []int {
	sizes := make([]int, len(sr))
	caps := make([]int, len(sr))
	weights := make([]int, len(sr))
	extra := size
	for i, c := range sr {
		sizes[i] = c.Min
		caps[i] = c.Nat
		if b.alignMain == AlignStretch {
			caps[i] = MaxExtent
		}
		weights[i] = b.children[i].Base().FlexGrow()
		extra -= c.Min
	}
	distribute(sizes, caps, weights, extra)
	return sizes
}

func (b *Box) layoutCross(sr []SizeReq, size int) []int {
	sizes := make([]int, len(sr))
	for i, c := range sr {
		if b.childAlign(b.children[i]) == AlignStretch {
			sizes[i] = max(size, c.Min)
		} else {
			sizes[i] = min(max(c.Min, size), c.Nat)
		}
	}
	return sizes
}

func (b *Box) childAlign(c Widget) Align {
	if a := c.Base().alignSelf; a != AlignUnset {
		return a
	}
	if b.alignCross != AlignUnset {
		return b.alignCross
	}
	return AlignStart
}

// distribute grows sizes toward caps by weight until extra is used up or no
// entry can grow. Integer shares that truncate to nothing are handed out one
// unit at a time in order. It returns the space left over.
func distribute(sizes, caps, weights []int, extra int) int {
	for extra > 0 {
		sum := 0
		for i := range sizes {
			if sizes[i] < caps[i] {
				sum += weights[i]
			}
		}
		if sum == 0 {
			break
		}

		given := 0
		for i := range sizes {
			if sizes[i] >= caps[i] || weights[i] == 0 {
				continue
			}
			share := extra * weights[i] / sum
			take := min(share, caps[i]-sizes[i])
			sizes[i] += take
			given += take
		}
		if given == 0 {
			for i := range sizes {
				if extra-given == 0 {
					break
				}
				if sizes[i] < caps[i] && weights[i] > 0 {
					sizes[i]++
					given++
				}
			}
		}
		extra -= given
	}
	return extra
}
