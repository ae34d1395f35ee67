package ui

// ScissorStack is a stack of nested clip regions. Each pushed region is
// intersected with the current top, so the top is always the effective clip.
type ScissorStack struct {
	regions []Region
}

// Push intersects r with the current top and pushes the result.
func (s *ScissorStack) Push(r Region) {
	if len(s.regions) > 0 {
		r = r.Intersect(s.Top())
	}
	s.regions = append(s.regions, r)
}

// Pop removes the top region. Popping an empty stack panics.
func (s *ScissorStack) Pop() {
	if len(s.regions) == 0 {
		panic("ui: pop of empty scissor stack")
	}
	s.regions = s.regions[:len(s.regions)-1]
}

// Top returns the effective clip region, or Unbounded when the stack is empty.
func (s *ScissorStack) Top() Region {
	if len(s.regions) == 0 {
		return Unbounded
	}
	return s.regions[len(s.regions)-1]
}

// Len returns the number of pushed regions.
func (s *ScissorStack) Len() int {
	return len(s.regions)
}
