package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegion(t *testing.T) {
	r := NewRegion(1, 2, 3, 4)

	if r.X != 1 || r.Y != 2 || r.Width != 3 || r.Height != 4 {
		t.Errorf("NewRegion(1, 2, 3, 4) = %+v", r)
	}
	if got := r.Right(); got != 4 {
		t.Errorf("Right() = %d, want 4", got)
	}
	if got := r.Bottom(); got != 6 {
		t.Errorf("Bottom() = %d, want 6", got)
	}
}

func TestRegion_Equality(t *testing.T) {
	if NewRegion(0, 0, 0, 0) == NewRegion(0, 0, 1, 0) {
		t.Error("regions differing in width compared equal")
	}
	if NewRegion(3, 4, 5, 6) != NewRegion(3, 4, 5, 6) {
		t.Error("identical regions compared unequal")
	}
}

func TestRegion_Empty(t *testing.T) {
	type tc struct {
		region Region
		empty  bool
	}

	tests := map[string]tc{
		"unit":            {region: NewRegion(0, 0, 1, 1), empty: false},
		"zero width":      {region: NewRegion(0, 0, 0, 5), empty: true},
		"zero height":     {region: NewRegion(0, 0, 5, 0), empty: true},
		"negative width":  {region: NewRegion(0, 0, -1, 5), empty: true},
		"negative origin": {region: NewRegion(-4, -4, 2, 2), empty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.region.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRegion_IntersectUnion(t *testing.T) {
	type tc struct {
		a, b      Region
		intersect Region
		union     Region
	}

	tests := map[string]tc{
		"overlapping": {
			a:         NewRegion(21, 0, 20, 42),
			b:         NewRegion(-1, 2, 37, 44),
			intersect: NewRegion(21, 2, 15, 40),
			union:     NewRegion(-1, 0, 42, 46),
		},
		"contained": {
			a:         NewRegion(0, 0, 10, 10),
			b:         NewRegion(2, 3, 4, 5),
			intersect: NewRegion(2, 3, 4, 5),
			union:     NewRegion(0, 0, 10, 10),
		},
		"disjoint": {
			a:         NewRegion(0, 0, 2, 2),
			b:         NewRegion(5, 5, 2, 2),
			intersect: NewRegion(5, 5, 0, 0),
			union:     NewRegion(0, 0, 7, 7),
		},
		"touching edges": {
			a:         NewRegion(0, 0, 5, 5),
			b:         NewRegion(5, 0, 5, 5),
			intersect: NewRegion(5, 0, 0, 5),
			union:     NewRegion(0, 0, 10, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.intersect, tt.a.Intersect(tt.b)); diff != "" {
				t.Errorf("Intersect() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.intersect, tt.b.Intersect(tt.a)); diff != "" {
				t.Errorf("Intersect() not commutative (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.union, tt.a.Union(tt.b)); diff != "" {
				t.Errorf("Union() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegion_Contains(t *testing.T) {
	r := NewRegion(-10, -10, 20, 20)

	type tc struct {
		x, y int
		want bool
	}

	tests := map[string]tc{
		"left edge":   {x: -10, y: 0, want: true},
		"right edge":  {x: 10, y: 0, want: false},
		"top edge":    {x: 0, y: -10, want: true},
		"bottom edge": {x: 0, y: 10, want: false},
		"inside":      {x: 9, y: 9, want: true},
		"outside":     {x: -11, y: 0, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRegion_Inset(t *testing.T) {
	got := NewRegion(0, 0, 10, 8).Inset(MarginTRBL(1, 2, 3, 4))
	want := NewRegion(4, 1, 4, 4)
	if got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}
}

func TestRegion_Translate(t *testing.T) {
	got := NewRegion(2, 3, 5, 4).Translate(-2, 6)
	want := NewRegion(0, 9, 5, 4)
	if got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
}

func TestAlign_Offset(t *testing.T) {
	type tc struct {
		align Align
		want  int
	}

	tests := map[string]tc{
		"unset":   {align: AlignUnset, want: 0},
		"start":   {align: AlignStart, want: 0},
		"center":  {align: AlignCenter, want: 3},
		"end":     {align: AlignEnd, want: 7},
		"stretch": {align: AlignStretch, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.align.offset(10, 3); got != tt.want {
				t.Errorf("offset(10, 3) = %d, want %d", got, tt.want)
			}
		})
	}
}
