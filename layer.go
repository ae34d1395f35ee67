package ui

// Layer is one pushed widget subtree and its routing state.
type Layer struct {
	root         Widget
	keymap       KeymapContext
	defaultFocus Widget
	generation   uint64
	filters      []func(Event) bool
}

// Root returns the layer's root widget.
func (l *Layer) Root() Widget { return l.root }

// Keymap returns the context keys are remapped in while the layer is on top.
func (l *Layer) Keymap() KeymapContext { return l.keymap }

// Generation returns the id assigned at push time. Ids increase
// monotonically and are never reused.
func (l *Layer) Generation() uint64 { return l.generation }

// DefaultFocus returns the widget focused when nothing else is.
func (l *Layer) DefaultFocus() Widget { return l.defaultFocus }

// filter runs the layer's event filters in order.
func (l *Layer) filter(ev Event) bool {
	for _, f := range l.filters {
		if f(ev) {
			return true
		}
	}
	return false
}

// savedState is the caller state stashed by a push and restored by the
// matching pop.
type savedState struct {
	focus  Widget
	keymap KeymapContext
}
