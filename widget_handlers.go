package ui

type handlerEntry struct {
	id int
	fn func(Event) bool
}

// Handle identifies a registered event handler.
type Handle struct {
	node *Node
	id   int
}

// Remove unregisters the handler. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.node == nil {
		return
	}
	for i, e := range h.node.handlers {
		if e.id == h.id {
			h.node.handlers = append(h.node.handlers[:i], h.node.handlers[i+1:]...)
			return
		}
	}
}

// On registers fn to see every event delivered to the widget before its
// own HandleEvent. Handlers run in registration order; the first to return
// true consumes the event.
func (n *Node) On(fn func(Event) bool) Handle {
	n.nextHandle++
	n.handlers = append(n.handlers, handlerEntry{id: n.nextHandle, fn: fn})
	return Handle{node: n, id: n.nextHandle}
}

// Listen registers a handler for one event type.
//
//	ui.Listen(btn.Base(), func(ev ui.ActivateEvent) bool { ...; return true })
func Listen[T Event](n *Node, fn func(T) bool) Handle {
	return n.On(func(ev Event) bool {
		if t, ok := ev.(T); ok {
			return fn(t)
		}
		return false
	})
}

// OnHotkey registers a binding consulted before focus routing whenever the
// widget is inside the topmost layer.
func (n *Node) OnHotkey(b KeyBinding) {
	n.hotkeys = append(n.hotkeys, b)
	n.structureChanged()
}

// emit runs registered handlers.
func (n *Node) emit(ev Event) bool {
	// Copy so handlers may remove themselves.
	hs := append([]handlerEntry(nil), n.handlers...)
	for _, h := range hs {
		if h.fn(ev) {
			return true
		}
	}
	return false
}

// deliver gives ev to w: registered handlers first, then w.HandleEvent.
func deliver(w Widget, ev Event) bool {
	if w.Base().emit(ev) {
		return true
	}
	return w.HandleEvent(ev)
}
