package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fixed is a leaf with a constant size request that records events.
type fixed struct {
	Node
	name    string
	h, v    SizeReq
	consume func(Event) bool
	events  []Event
	layouts int
}

func newFixed(name string, w, h int) *fixed {
	return &fixed{name: name, h: SizeReq{Min: w, Nat: w}, v: SizeReq{Min: h, Nat: h}}
}

func newFlex(name string, minW, natW, minH, natH int) *fixed {
	return &fixed{name: name, h: SizeReq{Min: minW, Nat: natW}, v: SizeReq{Min: minH, Nat: natH}}
}

func (f *fixed) String() string { return f.name }

func (f *fixed) SizeRequest(dim Direction, _ int) SizeReq {
	if dim == Horizontal {
		return f.h
	}
	return f.v
}

func (f *fixed) Layout() { f.layouts++ }

func (f *fixed) Draw(s *Surface) {
	s.Fill(f.region, rune(f.name[0]), NewStyle())
}

func (f *fixed) HandleEvent(ev Event) bool {
	f.events = append(f.events, ev)
	if f.consume != nil {
		return f.consume(ev)
	}
	return false
}

// mouseLog renders the enter/leave events a widget saw as "enter"/"leave".
func (f *fixed) mouseLog() []string {
	var out []string
	for _, ev := range f.events {
		if me, ok := ev.(MouseEvent); ok && (me.Kind == MouseEnter || me.Kind == MouseLeave) {
			out = append(out, me.Kind.String())
		}
	}
	return out
}

// keyLog lists the names of the keys a widget saw.
func (f *fixed) keyLog() []string {
	var out []string
	for _, ev := range f.events {
		if ke, ok := ev.(KeyEvent); ok {
			out = append(out, ke.Name())
		}
	}
	return out
}

func (f *fixed) focusLog() []bool {
	var out []bool
	for _, ev := range f.events {
		if fe, ok := ev.(FocusEvent); ok {
			out = append(out, fe.In)
		}
	}
	return out
}

// fakeReader is an EventReader fed from a slice. An empty queue honours
// the timeout so loops do not spin.
type fakeReader struct {
	queue  []Event
	polls  int
	closed bool
	// onPoll runs before each poll, letting tests inject events or state.
	onPoll func(r *fakeReader)
}

func (fr *fakeReader) push(evs ...Event) { fr.queue = append(fr.queue, evs...) }

func (fr *fakeReader) PollEvent(timeout time.Duration) (Event, bool) {
	fr.polls++
	if fr.onPoll != nil {
		fr.onPoll(fr)
	}
	if len(fr.queue) == 0 {
		if timeout > 0 {
			time.Sleep(min(timeout, 2*time.Millisecond))
		}
		return nil, false
	}
	ev := fr.queue[0]
	fr.queue = fr.queue[1:]
	return ev, true
}

func (fr *fakeReader) Close() error {
	fr.closed = true
	return nil
}

// recordingObserver logs notifications as strings.
type recordingObserver struct {
	log []string
}

func (o *recordingObserver) FocusChanged(id string) { o.log = append(o.log, "focus:"+id) }
func (o *recordingObserver) StateChanged(id string) { o.log = append(o.log, "state:"+id) }
func (o *recordingObserver) LayerPushed(gen uint64, km KeymapContext) {
	o.log = append(o.log, fmt.Sprintf("push:%d:%s", gen, km))
}
func (o *recordingObserver) LayerPopped(gen uint64) {
	o.log = append(o.log, fmt.Sprintf("pop:%d", gen))
}

// newTestRoot returns a root over an 80x24 buffer.
func newTestRoot(t *testing.T, opts ...RootOption) (*Root, *Buffer) {
	t.Helper()
	buf := NewBuffer(80, 24)
	r, err := NewRoot(buf, nil, opts...)
	if err != nil {
		t.Fatalf("NewRoot: %v", err)
	}
	return r, buf
}

func key(k Key) KeyEvent      { return KeyEvent{Key: k} }
func runeKey(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

func names(ws []Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		if s, ok := w.(fmt.Stringer); ok {
			out[i] = s.String()
		} else {
			out[i] = fmt.Sprintf("%T", w)
		}
	}
	return out
}

// sameWidget compares widgets by identity instead of walking their state.
var sameWidget = cmp.Comparer(func(a, b Widget) bool { return a == b })
