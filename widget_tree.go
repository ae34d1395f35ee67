package ui

import "slices"

// adopt links child under parent. A child may only have one parent.
func adopt(parent, child Widget) {
	cn := child.Base()
	if cn.parent != nil {
		panic("ui: widget already has a parent")
	}
	if cn.root != nil {
		panic("ui: widget is a layer root")
	}
	cn.parent = parent
	cn.QueueAllocation(false)
	parent.Base().InvalidateSize(true)
	parent.Base().structureChanged()
}

// orphan unlinks child from its parent after making the owning root forget
// it as a focus or hover target.
func orphan(child Widget) {
	cn := child.Base()
	p := cn.parent
	if p == nil {
		return
	}
	if r := cn.Owner(); r != nil {
		r.forget(child)
	}
	cn.parent = nil
	p.Base().InvalidateSize(true)
	p.Base().structureChanged()
}

// Release removes w from its parent and tears down the subtree: parent
// links, event handlers and hotkeys are cleared so nothing keeps routing to it.
// A layer root must be popped before it is released.
func Release(w Widget) {
	if w == nil {
		return
	}
	if w.Base().root != nil {
		panic("ui: release of a pushed layer root")
	}
	switch p := w.Base().parent.(type) {
	case interface{ RemoveChild(Widget) bool }:
		p.RemoveChild(w)
	case interface{ SetChild(Widget) }:
		p.SetChild(nil)
	}
	orphan(w)
	Walk(w, func(x Widget) bool {
		n := x.Base()
		n.handlers = nil
		n.hotkeys = nil
		return true
	})
	Walk(w, func(x Widget) bool {
		for _, c := range x.Children() {
			c.Base().parent = nil
		}
		return true
	})
}

// Walk visits w and its descendants depth first in child order. Returning
// false from fn skips the visited widget's children.
func Walk(w Widget, fn func(Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.Children() {
		Walk(c, fn)
	}
}

// IsDescendant reports whether w is ancestor or lies beneath it.
func IsDescendant(w, ancestor Widget) bool {
	for cur := w; cur != nil; cur = cur.Base().parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Ancestors returns the chain from w up to its topmost ancestor, w first.
func Ancestors(w Widget) []Widget {
	var out []Widget
	for cur := w; cur != nil; cur = cur.Base().parent {
		out = append(out, cur)
	}
	return out
}

// hitTest returns the last visible child whose region contains (x, y).
// Later children paint over earlier ones, so they win.
func hitTest(children []Widget, x, y int) Widget {
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		n := c.Base()
		if !n.hidden && n.region.Contains(x, y) {
			return c
		}
	}
	return nil
}

// removeWidget deletes w from list, preserving order.
func removeWidget(list []Widget, w Widget) ([]Widget, bool) {
	for i, c := range list {
		if c == w {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1], true
		}
	}
	return list, false
}

// partialContainer is implemented by containers that show only some of
// their children.
type partialContainer interface {
	shownChildren() []Widget
}

// isShown reports whether w would be visited by walkShown from its layer
// root: no hidden ancestor and no inactive Switcher page on the way up.
func isShown(w Widget) bool {
	for cur := w; cur != nil; cur = cur.Base().parent {
		n := cur.Base()
		if n.hidden {
			return false
		}
		if pc, ok := n.parent.(partialContainer); ok && !slices.Contains(pc.shownChildren(), cur) {
			return false
		}
	}
	return true
}

// walkShown is Walk restricted to visible widgets and, for partial
// containers, the children they currently show.
func walkShown(w Widget, fn func(Widget)) {
	if w.Base().hidden {
		return
	}
	fn(w)
	children := w.Children()
	if pc, ok := w.(partialContainer); ok {
		children = pc.shownChildren()
	}
	for _, c := range children {
		walkShown(c, fn)
	}
}
