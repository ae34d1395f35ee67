package ui

import "github.com/grindlemire/go-ui/internal/debug"

// Layout runs a layout pass over every layer. Each layer root is offered
// the whole viewport, grown to its minimum if the viewport is smaller.
// A pass aborted with RestartLayout is retried from the top up to the
// configured bound.
func (r *Root) Layout() {
	r.needsLayout = false
	if len(r.layers) == 0 {
		return
	}

	r.inLayout = true
	defer func() {
		r.inLayout = false
		r.restart = false
	}()

	for attempt := 0; ; attempt++ {
		r.restart = false
		for _, l := range r.layers {
			r.layoutLayer(l)
			if r.restart {
				break
			}
		}
		if !r.restart {
			break
		}
		if attempt >= r.maxRestarts {
			debug.Errorf("layout did not stabilise after %d restarts", attempt)
			break
		}
		debug.Log("Root.Layout: restart %d", attempt+1)
		for _, l := range r.layers {
			Walk(l.root, func(w Widget) bool {
				n := w.Base()
				n.cacheValid = [2]bool{}
				n.allocQueued = true
				return true
			})
		}
	}

	r.refreshHover()
	r.needsRender = true
}

func (r *Root) layoutLayer(l *Layer) {
	hr := PreferredSize(l.root, Horizontal, -1)
	w := max(hr.Min, r.width)
	vr := PreferredSize(l.root, Vertical, w)
	h := max(vr.Min, r.height)
	AllocateRegion(l.root, Region{Width: w, Height: h})
}

// RenderNow lays out if needed and draws every layer, bottom first, to the
// canvas.
func (r *Root) RenderNow() {
	if r.needsLayout {
		r.Layout()
	}
	r.needsRender = false
	if r.canvas == nil {
		return
	}
	r.canvas.Clear()
	s := NewSurface(r.canvas)
	for _, l := range r.layers {
		Render(l.root, s)
	}
	r.canvas.Show()
}

// NeedsLayout reports whether a layout pass is pending.
func (r *Root) NeedsLayout() bool { return r.needsLayout }

// NeedsRender reports whether a redraw is pending.
func (r *Root) NeedsRender() bool { return r.needsRender }
