package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newLoopRoot(t *testing.T, fr *fakeReader, opts ...RootOption) (*Root, *Buffer) {
	t.Helper()
	buf := NewBuffer(20, 6)
	opts = append([]RootOption{WithPollInterval(time.Millisecond)}, opts...)
	r, err := NewRoot(buf, fr, opts...)
	if err != nil {
		t.Fatalf("NewRoot: %v", err)
	}
	return r, buf
}

func TestPumpEvents(t *testing.T) {
	fr := &fakeReader{}
	root, buf := newLoopRoot(t, fr)
	w := newFixed("w", 1, 1)
	root.PushLayout(w, KeymapDefault)

	if root.PumpEvents(0) {
		t.Error("PumpEvents reported events on an empty queue")
	}
	if buf.Shows() != 1 {
		t.Errorf("Shows() = %d after first pump, want 1", buf.Shows())
	}

	fr.push(runeKey('a'), runeKey('b'), runeKey('c'))
	if !root.PumpEvents(0) {
		t.Error("PumpEvents did not report dispatched events")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, w.keyLog()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if len(fr.queue) != 0 {
		t.Errorf("%d events left queued", len(fr.queue))
	}
	if buf.Shows() != 1 {
		t.Errorf("clean pump rendered again: Shows() = %d", buf.Shows())
	}
}

func TestPumpEvents_NoReader(t *testing.T) {
	root, buf := newTestRoot(t)
	root.PushLayout(newFixed("w", 1, 1), KeymapDefault)
	if root.PumpEvents(time.Second) {
		t.Error("PumpEvents without a reader reported events")
	}
	if buf.Shows() != 1 {
		t.Errorf("pending render not flushed: Shows() = %d", buf.Shows())
	}
}

func TestRunLayout(t *testing.T) {
	type tc struct {
		setup     func(root *Root, fr *fakeReader, w *fixed, cancel context.CancelFunc) func() bool
		wantErr   error
		wantDepth int
	}

	tests := map[string]tc{
		"done by key": {
			setup: func(root *Root, fr *fakeReader, w *fixed, _ context.CancelFunc) func() bool {
				quit := false
				w.consume = func(ev Event) bool {
					if ke, ok := ev.(KeyEvent); ok && ke.IsRune('q') {
						quit = true
						return true
					}
					return false
				}
				fr.push(runeKey('x'), runeKey('q'))
				return func() bool { return quit }
			},
			wantDepth: 1,
		},
		"popped from outside": {
			setup: func(root *Root, fr *fakeReader, _ *fixed, _ context.CancelFunc) func() bool {
				fr.onPoll = func(*fakeReader) {
					if root.Depth() == 2 {
						root.PopLayout()
					}
				}
				return func() bool { return false }
			},
			wantErr:   ErrLayerPopped,
			wantDepth: 1,
		},
		"context cancelled": {
			setup: func(_ *Root, fr *fakeReader, _ *fixed, cancel context.CancelFunc) func() bool {
				fr.onPoll = func(r *fakeReader) {
					if r.polls == 3 {
						cancel()
					}
				}
				return func() bool { return false }
			},
			wantErr:   context.Canceled,
			wantDepth: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fr := &fakeReader{}
			root, _ := newLoopRoot(t, fr)
			root.PushLayout(newFixed("base", 1, 1), KeymapDefault)
			w := newFixed("w", 1, 1)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			done := tt.setup(root, fr, w, cancel)

			err := root.RunLayout(ctx, w, done)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RunLayout() = %v, want %v", err, tt.wantErr)
			}
			if root.Depth() != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", root.Depth(), tt.wantDepth)
			}
		})
	}
}

func TestRunLayout_LeavesCoveredLayer(t *testing.T) {
	fr := &fakeReader{}
	root, _ := newLoopRoot(t, fr)
	var cover *fixed
	fr.onPoll = func(*fakeReader) {
		if cover == nil {
			cover = newFixed("cover", 1, 1)
			root.PushLayout(cover, KeymapMenu)
		}
	}
	polls := 0
	done := func() bool {
		polls++
		return polls > 3
	}

	if err := root.RunLayout(context.Background(), newFixed("w", 1, 1), done); err != nil {
		t.Fatalf("RunLayout: %v", err)
	}
	if root.Depth() != 2 || root.TopLayout() != cover {
		t.Errorf("covered layer was popped; depth=%d", root.Depth())
	}
}

func TestRunLayout_NoReader(t *testing.T) {
	root, _ := newTestRoot(t)
	err := root.RunLayout(context.Background(), newFixed("w", 1, 1), func() bool { return true })
	if !errors.Is(err, ErrNoEventSource) {
		t.Errorf("RunLayout() = %v, want ErrNoEventSource", err)
	}
	if root.Depth() != 0 {
		t.Error("layer pushed without an event source")
	}
}

func TestDelay(t *testing.T) {
	fr := &fakeReader{}
	root, _ := newLoopRoot(t, fr)
	w := newFixed("w", 1, 1)
	root.PushLayout(w, KeymapDefault)
	fr.push(runeKey('z'))

	start := time.Now()
	if err := root.Delay(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Delay: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Delay returned after %v", elapsed)
	}
	if diff := cmp.Diff([]string{"z"}, w.keyLog()); diff != "" {
		t.Errorf("keys during delay (-want +got):\n%s", diff)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := root.Delay(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled Delay = %v", err)
	}
}

func TestDelay_NoReader(t *testing.T) {
	root, buf := newTestRoot(t)
	root.PushLayout(newFixed("w", 1, 1), KeymapDefault)
	if err := root.Delay(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("Delay: %v", err)
	}
	if buf.Shows() != 1 {
		t.Errorf("Shows() = %d, want 1", buf.Shows())
	}
}

func TestWaitKey(t *testing.T) {
	remap := RemapFunc(func(ctx KeymapContext, ke KeyEvent) (KeyEvent, bool) {
		if ctx == KeymapTarget && ke.IsRune('h') {
			return KeyEvent{Key: KeyLeft}, true
		}
		if ke.IsRune('#') {
			return ke, false
		}
		return ke, true
	})
	fr := &fakeReader{}
	root, _ := newLoopRoot(t, fr, WithRemapper(remap))
	w := newFixed("w", 1, 1)
	root.PushLayout(w, KeymapDefault)
	fr.push(MouseEvent{Kind: MouseMove}, runeKey('#'), runeKey('h'), runeKey('x'))

	got, err := root.WaitKey(context.Background(), KeymapTarget)
	if err != nil {
		t.Fatalf("WaitKey: %v", err)
	}
	if got.Key != KeyLeft {
		t.Errorf("WaitKey() = %s, want Left", got.Name())
	}
	// The trailing key was drained in the same pump and routed normally.
	if diff := cmp.Diff([]string{"x"}, w.keyLog()); diff != "" {
		t.Errorf("keys reaching the tree (-want +got):\n%s", diff)
	}
	if root.keyTap != nil {
		t.Error("key tap left installed")
	}
}

func TestWaitKey_Cancelled(t *testing.T) {
	fr := &fakeReader{}
	root, _ := newLoopRoot(t, fr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := root.WaitKey(ctx, KeymapDefault); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitKey() = %v, want deadline exceeded", err)
	}
}
