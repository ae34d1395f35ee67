package ui

import "github.com/grindlemire/go-ui/internal/debug"

// FocusedWidget returns the widget keys are delivered to: the explicitly
// focused widget, else the top layer's default focus while it is shown,
// else nil.
func (r *Root) FocusedWidget() Widget {
	if r.focus != nil {
		return r.focus
	}
	if top := r.top(); top != nil && top.defaultFocus != nil && isShown(top.defaultFocus) {
		return top.defaultFocus
	}
	return nil
}

// SetFocusedWidget moves focus to w. It does nothing unless w lies inside
// the top layer. A nil w clears focus back to the layer default.
func (r *Root) SetFocusedWidget(w Widget) {
	top := r.top()
	if top == nil {
		return
	}
	if w != nil && !IsDescendant(w, top.root) {
		debug.Log("Root.SetFocusedWidget: %T is not in the top layer, ignoring", w)
		return
	}
	r.setFocus(w)
}

// setFocus installs w as current focus and tells the widgets that lost and
// gained it. Focus events go to exactly those widgets and are not bubbled.
func (r *Root) setFocus(w Widget) {
	old := r.FocusedWidget()
	r.focus = w
	cur := r.FocusedWidget()
	if old == cur {
		return
	}
	debug.Log("Root.setFocus: %T -> %T", old, cur)
	if old != nil {
		deliver(old, FocusEvent{In: false, Target: old})
	}
	if cur != nil {
		deliver(cur, FocusEvent{In: true, Target: cur})
	}
	id := ""
	if cur != nil {
		id = cur.Base().ID()
	}
	r.observer.FocusChanged(id)
	r.needsRender = true
}

// FocusOrder returns the focusable widgets of the top layer in depth-first
// order. Hidden subtrees and the inactive pages of a Switcher are skipped.
func (r *Root) FocusOrder() []Widget {
	r.refreshStructure()
	return r.focusOrder
}

func buildFocusOrder(root Widget) []Widget {
	var order []Widget
	walkShown(root, func(w Widget) {
		if w.Base().focusable {
			order = append(order, w)
		}
	})
	return order
}

// FocusNext moves focus forward in the focus order. At the end it wraps to
// the first widget unless wrapping is disabled.
func (r *Root) FocusNext() { r.cycleFocus(1) }

// FocusPrev moves focus backward in the focus order.
func (r *Root) FocusPrev() { r.cycleFocus(-1) }

func (r *Root) cycleFocus(step int) {
	order := r.FocusOrder()
	if len(order) == 0 {
		return
	}
	idx := -1
	if cur := r.FocusedWidget(); cur != nil {
		for i, w := range order {
			if w == cur {
				idx = i
				break
			}
		}
	}

	var next int
	switch {
	case idx < 0 && step > 0:
		next = 0
	case idx < 0:
		next = len(order) - 1
	default:
		next = idx + step
		if next < 0 || next >= len(order) {
			if !r.tabWraps {
				return
			}
			next = (next + len(order)) % len(order)
		}
	}
	r.setFocus(order[next])
}
