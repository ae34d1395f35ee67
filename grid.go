package ui

import "sort"

// Grid places children on rows and columns. Columns are sized first from
// single-column children, then rows from single-row children at the
// resulting column widths. Children may span several tracks.
type Grid struct {
	Node
	cells       []gridCell // sorted by starting row, insertion order within a row
	tracks      [2][]track // indexed by Direction: columns, rows
	grow        [2]map[int]int
	stretch     [2]bool
	tracksDirty bool
}

type gridCell struct {
	w         Widget
	pos, span [2]int // indexed by Direction
}

type track struct {
	sr     SizeReq
	size   int
	offset int
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{tracksDirty: true}
}

// AddChild places w in column x, row y.
func (g *Grid) AddChild(w Widget, x, y int) {
	g.AddSpanningChild(w, x, y, 1, 1)
}

// AddSpanningChild places w with its top-left at column x, row y, covering
// spanW columns and spanH rows.
func (g *Grid) AddSpanningChild(w Widget, x, y, spanW, spanH int) {
	if x < 0 || y < 0 || spanW < 1 || spanH < 1 {
		panic("ui: invalid grid position or span")
	}
	adopt(g, w)
	cell := gridCell{w: w, pos: [2]int{x, y}, span: [2]int{spanW, spanH}}
	i := sort.Search(len(g.cells), func(i int) bool { return g.cells[i].pos[Vertical] > y })
	g.cells = append(g.cells, gridCell{})
	copy(g.cells[i+1:], g.cells[i:])
	g.cells[i] = cell
	g.tracksDirty = true
}

// RemoveChild detaches w and reports whether it was a child.
func (g *Grid) RemoveChild(w Widget) bool {
	for i, c := range g.cells {
		if c.w == w {
			g.cells = append(g.cells[:i], g.cells[i+1:]...)
			g.tracksDirty = true
			orphan(w)
			return true
		}
	}
	return false
}

// SetColumnFlexGrow sets the growth weight of column i. Defaults to 1.
func (g *Grid) SetColumnFlexGrow(i, weight int) { g.setGrow(Horizontal, i, weight) }

// SetRowFlexGrow sets the growth weight of row i. Defaults to 1.
func (g *Grid) SetRowFlexGrow(i, weight int) { g.setGrow(Vertical, i, weight) }

func (g *Grid) setGrow(dim Direction, i, weight int) {
	if g.grow[dim] == nil {
		g.grow[dim] = make(map[int]int)
	}
	g.grow[dim][i] = max(weight, 0)
	g.InvalidateSize(true)
}

// SetStretch makes tracks on dim absorb all remaining space once their
// natural sizes are reached.
func (g *Grid) SetStretch(dim Direction, on bool) {
	g.stretch[dim] = on
	g.QueueAllocation(true)
}

// TrackOffsets returns the offsets and sizes of the tracks on dim from the
// last layout, relative to the grid's region.
func (g *Grid) TrackOffsets(dim Direction) (offsets, sizes []int) {
	for _, t := range g.tracks[dim] {
		offsets = append(offsets, t.offset)
		sizes = append(sizes, t.size)
	}
	return offsets, sizes
}

// Children returns the cells' widgets ordered by row.
func (g *Grid) Children() []Widget {
	out := make([]Widget, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.w
	}
	return out
}

// ChildAt returns the visible child containing (x, y).
func (g *Grid) ChildAt(x, y int) Widget { return hitTest(g.Children(), x, y) }

func (g *Grid) initTracks() {
	if !g.tracksDirty {
		return
	}
	g.tracksDirty = false
	var n [2]int
	for _, c := range g.cells {
		for d := range n {
			n[d] = max(n[d], c.pos[d]+c.span[d])
		}
	}
	for d := range g.tracks {
		g.tracks[d] = make([]track, n[d])
	}
}

func (g *Grid) weight(dim Direction, i int) int {
	if w, ok := g.grow[dim][i]; ok {
		return w
	}
	return 1
}

// spanExtent returns the summed size of the tracks a cell covers on dim.
func (g *Grid) spanExtent(c gridCell, dim Direction) int {
	ts := g.tracks[dim]
	first, last := c.pos[dim], c.pos[dim]+c.span[dim]-1
	return ts[last].offset + ts[last].size - ts[first].offset
}

// computeTrackReqs sets the size request of each track on dim from the
// children that span exactly one track on that axis.
func (g *Grid) computeTrackReqs(dim Direction) SizeReq {
	ts := g.tracks[dim]
	for i := range ts {
		ts[i].sr = SizeReq{}
	}
	for _, c := range g.cells {
		if c.span[dim] != 1 {
			continue
		}
		prosp := -1
		if dim == Vertical {
			prosp = g.spanExtent(c, Horizontal)
		}
		sr := PreferredSize(c.w, dim, prosp)
		t := &ts[c.pos[dim]]
		t.sr.Min = max(t.sr.Min, sr.Min)
		t.sr.Nat = max(t.sr.Nat, sr.Nat)
	}
	var total SizeReq
	for _, t := range ts {
		total.Min += t.sr.Min
		total.Nat += t.sr.Nat
	}
	return total
}

// layoutTrack sizes the tracks on dim to fill size and recomputes offsets.
func (g *Grid) layoutTrack(dim Direction, size int) {
	ts := g.tracks[dim]
	sizes := make([]int, len(ts))
	caps := make([]int, len(ts))
	weights := make([]int, len(ts))
	extra := size
	for i, t := range ts {
		sizes[i] = t.sr.Min
		caps[i] = t.sr.Nat
		weights[i] = g.weight(dim, i)
		extra -= t.sr.Min
	}
	extra = distribute(sizes, caps, weights, extra)
	if g.stretch[dim] && extra > 0 {
		for i := range caps {
			caps[i] = MaxExtent
		}
		distribute(sizes, caps, weights, extra)
	}

	acc := 0
	for i := range ts {
		ts[i].size = sizes[i]
		ts[i].offset = acc
		acc += sizes[i]
	}
}

// SizeRequest sums the track requests on dim. For Vertical the columns are
// first laid out to prospWidth.
func (g *Grid) SizeRequest(dim Direction, prospWidth int) SizeReq {
	g.initTracks()
	w := g.computeTrackReqs(Horizontal)
	if dim == Horizontal {
		return w
	}
	g.layoutTrack(Horizontal, prospWidth)
	return g.computeTrackReqs(Vertical)
}

// Layout sizes the rows and allocates each child its spanned tracks.
func (g *Grid) Layout() {
	reg := g.region
	g.SizeRequest(Vertical, reg.Width)
	g.layoutTrack(Vertical, reg.Height)

	// Track sizes only account for single-span children, so a spanning
	// child may need more than its tracks add up to. It overflows into the
	// clip region rather than being squeezed below its minimum.
	for _, c := range g.cells {
		col := g.tracks[Horizontal][c.pos[Horizontal]]
		row := g.tracks[Vertical][c.pos[Vertical]]
		w := max(g.spanExtent(c, Horizontal), PreferredSize(c.w, Horizontal, -1).Min)
		h := max(g.spanExtent(c, Vertical), PreferredSize(c.w, Vertical, w).Min)
		AllocateRegion(c.w, Region{
			X:      reg.X + col.offset,
			Y:      reg.Y + row.offset,
			Width:  w,
			Height: h,
		})
	}
}

// Draw renders children whose rows intersect the clip region. Cells are
// ordered by starting row, so the scan stops at the first row below it.
func (g *Grid) Draw(s *Surface) {
	if g.tracksDirty {
		return
	}
	clip := s.Scissor()
	for _, c := range g.cells {
		top := g.region.Y + g.tracks[Vertical][c.pos[Vertical]].offset
		if top >= clip.Bottom() {
			break
		}
		if top+g.spanExtent(c, Vertical) <= clip.Y {
			continue
		}
		Render(c.w, s)
	}
}
