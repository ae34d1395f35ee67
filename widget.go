package ui

import (
	"fmt"

	"github.com/google/uuid"
)

// Widget is a node of the UI tree. Concrete widgets embed *Node (or Node)
// for default behaviour and override the hooks they need.
//
// The hooks are called by the engine through PreferredSize, AllocateRegion,
// Render and the root's event routing; application code should call those
// wrappers rather than the hooks directly.
type Widget interface {
	// Base returns the shared base state.
	Base() *Node

	// SizeRequest computes the content size on dim, excluding margins.
	// For Vertical, prospWidth is the content width the widget will get.
	SizeRequest(dim Direction, prospWidth int) SizeReq

	// Layout positions children inside Base().Region().
	Layout()

	// Draw paints the widget. The surface is already clipped to the
	// widget's region.
	Draw(s *Surface)

	// HandleEvent processes an event and reports whether it was consumed.
	HandleEvent(ev Event) bool

	// Children returns owned children in insertion order.
	Children() []Widget

	// ChildAt returns the child that should receive pointer events at
	// (x, y), or nil.
	ChildAt(x, y int) Widget
}

// Node is the base state every widget carries.
type Node struct {
	parent Widget
	root   *Root // set on layer roots only

	id        string
	margin    Margin
	minSize   Size
	maxSize   Size
	maxSet    [2]bool
	expand    [2]bool
	shrink    [2]bool
	flexGrow  int
	growSet   bool
	alignSelf Align
	hidden    bool
	focusable bool

	cache       [2]SizeReq
	cacheValid  [2]bool
	cachedWidth int
	allocQueued bool
	region      Region

	handlers   []handlerEntry
	nextHandle int
	hotkeys    []KeyBinding
}

// Base returns n itself so that embedding types satisfy Widget.
func (n *Node) Base() *Node { return n }

// SizeRequest reports {0, 0}.
func (n *Node) SizeRequest(Direction, int) SizeReq { return SizeReq{} }

// Layout does nothing.
func (n *Node) Layout() {}

// Draw does nothing.
func (n *Node) Draw(*Surface) {}

// HandleEvent consumes nothing.
func (n *Node) HandleEvent(Event) bool { return false }

// Children returns nil.
func (n *Node) Children() []Widget { return nil }

// ChildAt returns nil.
func (n *Node) ChildAt(int, int) Widget { return nil }

// Parent returns the owning container, or nil for a layer root.
func (n *Node) Parent() Widget { return n.parent }

// Region returns the last allocated content region.
func (n *Node) Region() Region { return n.region }

// ID returns a stable identifier, generating one on first use.
func (n *Node) ID() string {
	if n.id == "" {
		n.id = uuid.NewString()
	}
	return n.id
}

// SetID overrides the generated identifier.
func (n *Node) SetID(id string) { n.id = id }

// Margin returns the space kept around the widget.
func (n *Node) Margin() Margin { return n.margin }

// SetMargin sets the outer inset.
func (n *Node) SetMargin(m Margin) {
	if n.margin == m {
		return
	}
	n.margin = m
	n.InvalidateSize(true)
}

// SetMinSize sets a lower bound on both dimensions of the content size.
func (n *Node) SetMinSize(s Size) {
	n.minSize = s
	n.InvalidateSize(true)
}

// SetMaxSize sets an upper bound on both dimensions of the content size.
// A negative component removes the bound on that axis.
func (n *Node) SetMaxSize(s Size) {
	n.maxSize = s
	n.maxSet = [2]bool{s.Width >= 0, s.Height >= 0}
	n.InvalidateSize(true)
}

// SetExpand makes the widget report an unbounded natural size on each axis.
func (n *Node) SetExpand(h, v bool) {
	n.expand = [2]bool{h, v}
	n.InvalidateSize(true)
}

// SetShrink makes the widget's natural size equal its minimum on each axis.
func (n *Node) SetShrink(h, v bool) {
	n.shrink = [2]bool{h, v}
	n.InvalidateSize(true)
}

// FlexGrow returns the weight used when distributing extra space. Defaults to 1.
func (n *Node) FlexGrow() int {
	if !n.growSet {
		return 1
	}
	return n.flexGrow
}

// SetFlexGrow sets the widget's share of spare main-axis space in a Box.
func (n *Node) SetFlexGrow(g int) {
	n.flexGrow, n.growSet = max(g, 0), true
	n.QueueAllocation(true)
}

// AlignSelf returns the cross-axis alignment override.
func (n *Node) AlignSelf() Align { return n.alignSelf }

// SetAlignSelf overrides the parent's cross-axis alignment for this widget.
func (n *Node) SetAlignSelf(a Align) {
	n.alignSelf = a
	n.QueueAllocation(true)
}

// Visible reports whether the widget takes part in layout and drawing.
func (n *Node) Visible() bool { return !n.hidden }

// SetVisible shows or hides the widget. Hidden widgets take no space,
// receive no allocation and are not drawn.
func (n *Node) SetVisible(v bool) {
	if n.hidden == !v {
		return
	}
	n.hidden = !v
	n.InvalidateSize(true)
	n.structureChanged()
}

// Focusable reports whether the widget is in the focus order.
func (n *Node) Focusable() bool { return n.focusable }

// SetFocusable includes or excludes the widget from the focus order.
func (n *Node) SetFocusable(f bool) {
	n.focusable = f
	n.structureChanged()
}

// InvalidateSize drops cached size requests on n and every ancestor and
// queues them for reallocation. With immediate set the owning root runs a
// layout pass on its next pump.
func (n *Node) InvalidateSize(immediate bool) {
	for cur := n; cur != nil; cur = cur.parentNode() {
		cur.cacheValid = [2]bool{}
		cur.allocQueued = true
	}
	if immediate {
		n.requestLayout()
	}
}

// QueueAllocation marks n and its ancestors for reallocation without
// touching size caches.
func (n *Node) QueueAllocation(immediate bool) {
	for cur := n; cur != nil; cur = cur.parentNode() {
		cur.allocQueued = true
	}
	if immediate {
		n.requestLayout()
	}
}

// QueueRedraw asks the owning root to render on its next pump.
func (n *Node) QueueRedraw() {
	if r := n.Owner(); r != nil {
		r.needsRender = true
	}
}

// NotifyStateChanged reports a state change to the root's observer.
func (n *Node) NotifyStateChanged() {
	if r := n.Owner(); r != nil {
		r.observer.StateChanged(n.ID())
	}
}

// Owner returns the root managing the layer containing n, or nil.
func (n *Node) Owner() *Root {
	cur := n
	for {
		p := cur.parentNode()
		if p == nil {
			return cur.root
		}
		cur = p
	}
}

func (n *Node) parentNode() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.Base()
}

func (n *Node) requestLayout() {
	if r := n.Owner(); r != nil {
		r.needsLayout = true
	}
}

func (n *Node) structureChanged() {
	if r := n.Owner(); r != nil {
		r.treeChanged()
	}
}

// PreferredSize returns the size request of w on dim including margins.
// For Vertical, prospWidth is the width w would be allocated (margins
// included); it is ignored for Horizontal.
func PreferredSize(w Widget, dim Direction, prospWidth int) SizeReq {
	n := w.Base()
	if n.hidden {
		return SizeReq{}
	}

	if dim == Vertical && n.cacheValid[Vertical] && n.cachedWidth != prospWidth {
		n.cacheValid[Vertical] = false
	}
	if n.cacheValid[dim] {
		return n.cache[dim]
	}

	inner := prospWidth
	if dim == Vertical {
		inner = max(prospWidth-n.margin.Horizontal(), 0)
	}
	ret := w.SizeRequest(dim, inner)
	if ret.Min > ret.Nat {
		panic(fmt.Sprintf("ui: %T reported %s min %d > nat %d", w, dim, ret.Min, ret.Nat))
	}

	var lo, hi int
	if dim == Horizontal {
		lo, hi = n.minSize.Width, n.maxSize.Width
	} else {
		lo, hi = n.minSize.Height, n.maxSize.Height
	}
	ret.Min = max(ret.Min, lo)
	ret.Nat = max(ret.Nat, lo)
	if n.maxSet[dim] {
		ret.Min = min(ret.Min, max(hi, lo))
		ret.Nat = min(ret.Nat, max(hi, lo))
	}

	m := n.margin.along(dim)
	ret.Min += m
	ret.Nat += m

	switch {
	case n.expand[dim]:
		ret.Nat = ExpandSize
	case n.shrink[dim]:
		ret.Nat = ret.Min
	}
	ret.Nat = max(min(ret.Nat, ExpandSize), ret.Min)

	n.cache[dim] = ret
	n.cacheValid[dim] = true
	if dim == Vertical {
		n.cachedWidth = prospWidth
	}
	return ret
}

// AllocateRegion gives w the region r (margins included) and lays it out if
// anything changed. A negative content size panics.
func AllocateRegion(w Widget, r Region) {
	n := w.Base()
	if n.hidden {
		return
	}
	if root := n.Owner(); root != nil && root.restart {
		n.allocQueued = true
		return
	}

	inner := r.Inset(n.margin)
	if inner == n.region && !n.allocQueued {
		return
	}
	if inner.Width < 0 || inner.Height < 0 {
		panic(fmt.Sprintf("ui: negative allocation %+v for %T", inner, w))
	}
	n.region = inner
	n.allocQueued = false
	w.Layout()
}

// Render draws w clipped to its region.
func Render(w Widget, s *Surface) {
	n := w.Base()
	if n.hidden {
		return
	}
	s.PushScissor(n.region)
	w.Draw(s)
	s.PopScissor()
}
