package ui

import "math"

// MaxExtent is the width and height of the unbounded region.
const MaxExtent = math.MaxInt32

// ExpandSize is the natural size reported by widgets flagged to expand.
const ExpandSize = 0xffffff

// Unbounded is the clip region used when no scissor is pushed.
var Unbounded = Region{X: 0, Y: 0, Width: MaxExtent, Height: MaxExtent}

// Region is an axis-aligned rectangle with integer coordinates.
// X and Y are the top-left corner.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a Region with the given position and dimensions.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the region has zero or negative area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the region.
// Top and left edges are inside; right and bottom edges are outside.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two regions. Disjoint regions yield an
// empty region whose width or height is zero.
func (r Region) Intersect(other Region) Region {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	return Region{X: x, Y: y, Width: max(right-x, 0), Height: max(bottom-y, 0)}
}

// Union returns the bounding box of both regions.
func (r Region) Union(other Region) Region {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Region{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inset shrinks the region by m. The result may have negative size.
func (r Region) Inset(m Margin) Region {
	return Region{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
}

// Translate returns the region moved by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// extent returns the size along dim.
func (r Region) extent(dim Direction) int {
	if dim == Horizontal {
		return r.Width
	}
	return r.Height
}

// Margin is a four-sided inset.
type Margin struct {
	Top, Right, Bottom, Left int
}

// MarginAll creates a Margin with the same value on every side.
func MarginAll(n int) Margin {
	return Margin{Top: n, Right: n, Bottom: n, Left: n}
}

// MarginSymmetric creates a Margin from vertical and horizontal values.
func MarginSymmetric(v, h int) Margin {
	return Margin{Top: v, Right: h, Bottom: v, Left: h}
}

// MarginTRBL creates a Margin in top, right, bottom, left order.
func MarginTRBL(t, r, b, l int) Margin {
	return Margin{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (m Margin) Horizontal() int {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom.
func (m Margin) Vertical() int {
	return m.Top + m.Bottom
}

// along returns the summed margin on dim.
func (m Margin) along(dim Direction) int {
	if dim == Horizontal {
		return m.Horizontal()
	}
	return m.Vertical()
}

// Direction selects a layout axis.
type Direction uint8

const (
	// Horizontal is the x axis.
	Horizontal Direction = iota
	// Vertical is the y axis.
	Vertical
)

// String returns "horizontal" or "vertical".
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Cross returns the other axis.
func (d Direction) Cross() Direction {
	return 1 - d
}

// Align positions a child within spare space on one axis.
type Align uint8

const (
	// AlignUnset defers to the container default.
	AlignUnset Align = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignStretch
)

// offset returns the start offset for content of size used inside space.
func (a Align) offset(space, used int) int {
	extra := space - used
	switch a {
	case AlignCenter:
		return extra / 2
	case AlignEnd:
		return extra
	default:
		return 0
	}
}

// SizeReq is the result of a preferred size query.
type SizeReq struct {
	Min int
	Nat int
}

// Size is a width and height pair.
type Size struct {
	Width, Height int
}
