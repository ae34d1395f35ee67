package ui

import "testing"

func newScrollFixture(rows, height int) (*Scroller, []*fixed) {
	col := VBox()
	kids := make([]*fixed, rows)
	for i := range kids {
		kids[i] = newFixed(string(rune('a'+i)), 1, 1)
		col.AddChild(kids[i])
	}
	s := NewScroller(col)
	AllocateRegion(s, NewRegion(0, 0, 1, height))
	return s, kids
}

func TestScroller_SizeRequest(t *testing.T) {
	s, _ := newScrollFixture(10, 4)
	if got := PreferredSize(s, Vertical, 1); got.Min != 0 || got.Nat != 10 {
		t.Errorf("vertical request = %+v, want {0 10}", got)
	}
	if got := PreferredSize(s, Horizontal, -1); got.Min != 1 {
		t.Errorf("horizontal request = %+v, want min 1", got)
	}
}

func TestScroller_ChildAtNaturalHeight(t *testing.T) {
	s, kids := newScrollFixture(10, 4)
	if got, want := s.Child().Base().Region(), NewRegion(0, 0, 1, 10); got != want {
		t.Errorf("child region = %+v, want %+v", got, want)
	}
	if s.MaxScroll() != 6 {
		t.Errorf("MaxScroll() = %d, want 6", s.MaxScroll())
	}

	s.SetScroll(2)
	AllocateRegion(s, NewRegion(0, 0, 1, 4))
	if got := kids[2].Region().Y; got != 0 {
		t.Errorf("row c at y=%d after scrolling 2, want 0", got)
	}

	s.SetScroll(100)
	AllocateRegion(s, NewRegion(0, 0, 1, 4))
	if s.Scroll() != 6 {
		t.Errorf("Scroll() = %d after overscroll, want clamped 6", s.Scroll())
	}
	s.SetScroll(-3)
	AllocateRegion(s, NewRegion(0, 0, 1, 4))
	if s.Scroll() != 0 {
		t.Errorf("Scroll() = %d after underscroll, want 0", s.Scroll())
	}
}

func TestScroller_Keys(t *testing.T) {
	type tc struct {
		start int
		ev    Event
		want  int
		used  bool
	}

	tests := map[string]tc{
		"page down":        {start: 0, ev: key(KeyPageDown), want: 4, used: true},
		"page down clamps": {start: 14, ev: key(KeyPageDown), want: 16, used: true},
		"page up":          {start: 9, ev: key(KeyPageUp), want: 5, used: true},
		"space pages":      {start: 0, ev: runeKey(' '), want: 4, used: true},
		"minus pages up":   {start: 4, ev: runeKey('-'), want: 0, used: true},
		"down":             {start: 3, ev: key(KeyDown), want: 4, used: true},
		"up at top":        {start: 0, ev: key(KeyUp), want: 0, used: true},
		"home":             {start: 7, ev: key(KeyHome), want: 0, used: true},
		"end":              {start: 0, ev: key(KeyEnd), want: 16, used: true},
		"enter ignored":    {start: 2, ev: key(KeyEnter), want: 2, used: false},
		"letter ignored":   {start: 2, ev: runeKey('x'), want: 2, used: false},
		"wheel down":       {start: 0, ev: MouseEvent{Kind: MouseWheel, WheelDelta: -1}, want: 3, used: true},
		"wheel up":         {start: 10, ev: MouseEvent{Kind: MouseWheel, WheelDelta: 2}, want: 4, used: true},
		"click ignored":    {start: 1, ev: MouseEvent{Kind: MousePress}, want: 1, used: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newScrollFixture(20, 4)
			s.SetScroll(tt.start)
			AllocateRegion(s, NewRegion(0, 0, 1, 4))

			used := s.HandleEvent(tt.ev)
			if used != tt.used {
				t.Errorf("HandleEvent consumed = %v, want %v", used, tt.used)
			}
			if s.Scroll() != tt.want {
				t.Errorf("Scroll() = %d, want %d", s.Scroll(), tt.want)
			}
		})
	}
}

func TestScroller_ClipsContent(t *testing.T) {
	s, _ := newScrollFixture(10, 3)
	s.SetScroll(2)
	AllocateRegion(s, NewRegion(0, 1, 1, 3))

	buf := NewBuffer(1, 5)
	Render(s, NewSurface(buf))
	if got, want := bufferDots(buf), ".\nc\nd\ne\n."; got != want {
		t.Errorf("buffer =\n%s\nwant\n%s", got, want)
	}
}

func TestScroller_UsesRootConfig(t *testing.T) {
	root, _ := newTestRoot(t, WithScrollConfig(ScrollConfig{LineStep: 2, WheelStep: 5}))
	s, _ := newScrollFixture(40, 4)
	root.PushLayout(s, KeymapDefault)
	root.Layout()

	s.HandleEvent(key(KeyDown))
	if s.Scroll() != 2 {
		t.Errorf("Scroll() after Down = %d, want 2", s.Scroll())
	}
	s.HandleEvent(MouseEvent{Kind: MouseWheel, WheelDelta: -1})
	if s.Scroll() != 12 {
		t.Errorf("Scroll() after wheel = %d, want 12", s.Scroll())
	}
}
