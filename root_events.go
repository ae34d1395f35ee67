package ui

import "github.com/grindlemire/go-ui/internal/debug"

// Dispatch routes one event through the topmost layer and reports whether
// anything consumed it. With no layers pushed only resizes are applied.
func (r *Root) Dispatch(ev Event) bool {
	switch e := ev.(type) {
	case ResizeEvent:
		r.Resize(e.Width, e.Height)
		return true
	case MouseEvent:
		return r.dispatchMouse(e)
	case KeyEvent:
		return r.dispatchKey(e)
	}

	top := r.top()
	if top == nil {
		return false
	}
	if top.filter(ev) {
		return true
	}
	if w := r.FocusedWidget(); w != nil {
		return deliver(w, ev)
	}
	return false
}

func (r *Root) dispatchMouse(e MouseEvent) bool {
	top := r.top()
	if top == nil {
		return false
	}
	if top.filter(e) {
		return true
	}

	switch e.Kind {
	case MouseLeave:
		// Pointer left the viewport.
		r.mouseKnown = false
		r.setHoverPath(nil, e)
		return true
	case MouseEnter:
		r.mouseX, r.mouseY, r.mouseKnown = e.X, e.Y, true
		r.setHoverPath(r.pathAt(top, e.X, e.Y), e)
		return true
	}

	r.mouseX, r.mouseY, r.mouseKnown = e.X, e.Y, true
	r.setHoverPath(r.pathAt(top, e.X, e.Y), e)

	path := append([]Widget(nil), r.hoverPath...)
	if len(path) == 0 {
		return false
	}
	e.Target = path[len(path)-1]
	for i := len(path) - 1; i >= 0; i-- {
		if deliver(path[i], e) {
			return true
		}
	}
	return false
}

// pathAt returns the chain from the layer root to the deepest widget at
// (x, y), or nil if the layer root does not contain the point.
func (r *Root) pathAt(l *Layer, x, y int) []Widget {
	n := l.root.Base()
	if n.hidden || !n.region.Contains(x, y) {
		return nil
	}
	path := []Widget{l.root}
	for cur := l.root; ; {
		c := cur.ChildAt(x, y)
		if c == nil || c.Base().hidden {
			break
		}
		path = append(path, c)
		cur = c
	}
	return path
}

// setHoverPath replaces the hover path. Widgets only on the old path get a
// MouseLeave, deepest first; widgets only on the new path get a MouseEnter,
// shallowest first. Widgets shared by both paths see nothing.
func (r *Root) setHoverPath(path []Widget, at MouseEvent) {
	old := r.hoverPath
	common := 0
	for common < len(old) && common < len(path) && old[common] == path[common] {
		common++
	}
	r.hoverPath = path

	for i := len(old) - 1; i >= common; i-- {
		w := old[i]
		deliver(w, MouseEvent{Kind: MouseLeave, X: at.X, Y: at.Y, Mod: at.Mod, Target: w})
	}
	for i := common; i < len(path); i++ {
		w := path[i]
		deliver(w, MouseEvent{Kind: MouseEnter, X: at.X, Y: at.Y, Mod: at.Mod, Target: w})
	}
	if common != len(old) || common != len(path) {
		r.needsRender = true
	}
}

// refreshHover recomputes the hover path at the last pointer position after
// the tree moved underneath it.
func (r *Root) refreshHover() {
	top := r.top()
	if top == nil {
		r.hoverPath = nil
		return
	}
	if !r.mouseKnown {
		return
	}
	r.setHoverPath(r.pathAt(top, r.mouseX, r.mouseY), MouseEvent{X: r.mouseX, Y: r.mouseY})
}

// HoverPath returns a copy of the current hover path, layer root first.
func (r *Root) HoverPath() []Widget {
	return append([]Widget(nil), r.hoverPath...)
}

// dispatchKey runs the key pipeline: remap, layer filters, hotkeys, the
// focused widget and its ancestors, then focus navigation and activation.
func (r *Root) dispatchKey(e KeyEvent) bool {
	if r.keyTap != nil && r.keyTap(e) {
		return true
	}
	top := r.top()
	if top == nil {
		debug.Log("Root.dispatchKey: no layer, dropping %s", e.Name())
		return false
	}
	if e.Key == KeyNone {
		return false
	}
	e = normalizeTab(e)
	if r.remapper != nil {
		var ok bool
		e, ok = r.remapper.Remap(r.keymap, e)
		if !ok || e.Key == KeyNone {
			debug.Log("Root.dispatchKey: remapper dropped key in %s", r.keymap)
			return false
		}
	}
	if top.filter(e) {
		return true
	}

	r.refreshStructure()
	if r.hotkeys.dispatch(e) {
		return true
	}

	target := r.FocusedWidget()
	if target == nil {
		target = top.root
	}
	e.Target = target
	for cur := target; cur != nil; cur = cur.Base().parent {
		if deliver(cur, e) {
			return true
		}
		if cur == top.root {
			break
		}
	}

	switch e.Key {
	case KeyEscape:
		if r.focus == nil {
			return false
		}
		r.setFocus(nil)
		return true
	case KeyTab:
		r.FocusNext()
		return true
	case KeyBacktab:
		r.FocusPrev()
		return true
	case KeyEnter:
		if f := r.FocusedWidget(); f != nil {
			return deliver(f, ActivateEvent{Target: f})
		}
	}
	return false
}
