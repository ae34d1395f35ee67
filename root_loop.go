package ui

import (
	"context"
	"time"

	"github.com/grindlemire/go-ui/internal/debug"
)

// PumpEvents runs at most one layout and render pass if either is pending,
// then waits up to timeout for input and dispatches every event available.
// It reports whether any event was dispatched. A negative timeout waits
// indefinitely.
func (r *Root) PumpEvents(timeout time.Duration) bool {
	if r.needsLayout || r.needsRender {
		r.RenderNow()
	}
	if r.reader == nil {
		return false
	}
	ev, ok := r.reader.PollEvent(timeout)
	if !ok {
		return false
	}
	r.Dispatch(ev)
	for {
		ev, ok = r.reader.PollEvent(0)
		if !ok {
			return true
		}
		r.Dispatch(ev)
	}
}

// RunLayout pushes w, pumps events until done reports true and pops the
// layer again. It returns ErrLayerPopped if someone else pops the layer
// first, or the context's error if ctx ends.
func (r *Root) RunLayout(ctx context.Context, w Widget, done func() bool, opts ...PushOption) error {
	if r.reader == nil {
		return ErrNoEventSource
	}
	l := r.PushLayout(w, KeymapDefault, opts...)
	gen := l.generation
	defer func() {
		if top := r.top(); top != nil && top.generation == gen {
			r.PopLayout()
		} else if r.hasGeneration(gen) {
			debug.Errorf("RunLayout: layer %d is no longer on top, leaving it pushed", gen)
		}
	}()

	for !done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.hasGeneration(gen) {
			return ErrLayerPopped
		}
		r.PumpEvents(r.pollInterval)
	}
	return nil
}

// Delay keeps the UI responsive for d: it pumps events with a shrinking
// timeout until the time is up.
func (r *Root) Delay(ctx context.Context, d time.Duration) error {
	deadline := time.Now().Add(d)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		if r.reader == nil {
			r.PumpEvents(0)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(remaining):
				return nil
			}
		}
		r.PumpEvents(min(remaining, r.pollInterval))
	}
}

// WaitKey pumps events until a key arrives and returns it remapped in km.
// The key is not dispatched to the widget tree. Keys the remapper drops
// are skipped.
func (r *Root) WaitKey(ctx context.Context, km KeymapContext) (KeyEvent, error) {
	if r.reader == nil {
		return KeyEvent{}, ErrNoEventSource
	}
	var (
		got  KeyEvent
		have bool
	)
	prev := r.keyTap
	r.keyTap = func(e KeyEvent) bool {
		if have {
			return false
		}
		e = normalizeTab(e)
		if r.remapper != nil {
			var ok bool
			if e, ok = r.remapper.Remap(km, e); !ok {
				return true
			}
		}
		if e.Key == KeyNone {
			return true
		}
		got, have = e, true
		return true
	}
	defer func() { r.keyTap = prev }()

	for !have {
		if err := ctx.Err(); err != nil {
			return KeyEvent{}, err
		}
		r.PumpEvents(r.pollInterval)
	}
	return got, nil
}
