package ui

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-ui/internal/debug"
)

// Root owns the layer stack. It runs layout passes, renders layers bottom
// to top and routes input to the topmost layer. A Root is used from a single
// goroutine.
type Root struct {
	canvas Canvas
	reader EventReader

	layers  []*Layer
	saved   []savedState
	cutoffs []int
	nextGen uint64

	// Current routing state. A nil focus means the top layer's default.
	focus  Widget
	keymap KeymapContext

	width, height int
	needsLayout   bool
	needsRender   bool
	inLayout      bool
	restart       bool
	maxRestarts   int

	structureDirty bool
	focusOrder     []Widget
	hotkeys        *hotkeyTable

	hoverPath  []Widget
	mouseX     int
	mouseY     int
	mouseKnown bool

	observer      Observer
	remapper      Remapper
	scroll        ScrollConfig
	tabWraps      bool
	pollInterval  time.Duration
	popupDefaults []PopupOption

	// keyTap sees raw keys before dispatch while WaitKey is blocked.
	keyTap func(KeyEvent) bool
}

// NewRoot creates a root drawing to canvas and reading from reader. Either
// may be nil: a root without a canvas lays out but does not draw, and one
// without a reader is driven through Dispatch.
func NewRoot(canvas Canvas, reader EventReader, opts ...RootOption) (*Root, error) {
	r := &Root{
		canvas:       canvas,
		reader:       reader,
		keymap:       KeymapNone,
		maxRestarts:  1,
		observer:     NopObserver{},
		scroll:       DefaultScrollConfig,
		tabWraps:     true,
		pollInterval: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("applying root option: %w", err)
		}
	}
	if canvas != nil {
		r.width, r.height = canvas.Size()
	}
	debug.Log("NewRoot: size=%dx%d", r.width, r.height)
	return r, nil
}

// Size returns the viewport size.
func (r *Root) Size() (int, int) { return r.width, r.height }

// Resize updates the viewport size and marks layout dirty.
func (r *Root) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.needsLayout = true
	r.needsRender = true
}

// Keymap returns the keymap context of the top layer, or KeymapNone.
func (r *Root) Keymap() KeymapContext { return r.keymap }

// PopupOptions returns the popup defaults from the applied configuration.
func (r *Root) PopupOptions() []PopupOption {
	return append([]PopupOption(nil), r.popupDefaults...)
}

// PushLayout makes w the root of a new topmost layer. The caller's focus and
// keymap are saved and restored by the matching PopLayout.
func (r *Root) PushLayout(w Widget, km KeymapContext, opts ...PushOption) *Layer {
	n := w.Base()
	if n.parent != nil {
		panic("ui: layer root already has a parent")
	}
	if n.root != nil {
		panic("ui: widget is already a layer root")
	}
	n.root = r
	if p, ok := w.(*Popup); ok {
		p.setDepth(len(r.layers))
	}

	r.nextGen++
	l := &Layer{root: w, keymap: km, generation: r.nextGen}
	for _, opt := range opts {
		opt(l)
	}
	if l.defaultFocus != nil && !IsDescendant(l.defaultFocus, w) {
		debug.Errorf("PushLayout: initial focus %T is outside the layer, ignoring", l.defaultFocus)
		l.defaultFocus = nil
	}

	old := r.FocusedWidget()
	r.saved = append(r.saved, savedState{focus: r.focus, keymap: r.keymap})
	r.layers = append(r.layers, l)
	r.focus = nil
	r.keymap = l.keymap
	r.afterStackChange(old)

	debug.Log("PushLayout: generation=%d keymap=%s depth=%d", l.generation, l.keymap, len(r.layers))
	r.observer.LayerPushed(l.generation, l.keymap)
	return l
}

// PopLayout removes the topmost layer and restores the state saved when it
// was pushed. Popping an empty stack or below the current cutoff panics.
func (r *Root) PopLayout() {
	if len(r.layers) == 0 {
		panic("ui: pop from empty layer stack")
	}
	if len(r.layers) <= r.cutoffBase() {
		panic("ui: pop below layer cutoff")
	}

	old := r.FocusedWidget()
	l := r.layers[len(r.layers)-1]
	r.layers[len(r.layers)-1] = nil
	r.layers = r.layers[:len(r.layers)-1]

	s := r.saved[len(r.saved)-1]
	r.saved = r.saved[:len(r.saved)-1]
	r.focus = s.focus
	r.keymap = s.keymap

	// The popped subtree stops being a hover target without receiving
	// leave events; the new top layer gets enter events after layout.
	r.hoverPath = nil
	l.root.Base().root = nil
	r.afterStackChange(old)

	debug.Log("PopLayout: generation=%d depth=%d", l.generation, len(r.layers))
	r.observer.LayerPopped(l.generation)
}

// afterStackChange schedules a full pass and moves focus events from the
// previously focused widget to the new one.
func (r *Root) afterStackChange(old Widget) {
	r.structureDirty = true
	r.needsLayout = true
	r.needsRender = true

	cur := r.FocusedWidget()
	if old == cur {
		return
	}
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
}

func (r *Root) top() *Layer {
	if len(r.layers) == 0 {
		return nil
	}
	return r.layers[len(r.layers)-1]
}

// TopLayer returns the topmost layer, or nil.
func (r *Root) TopLayer() *Layer { return r.top() }

// TopLayout returns the root widget of the topmost layer, or nil.
func (r *Root) TopLayout() Widget {
	if l := r.top(); l != nil {
		return l.root
	}
	return nil
}

// HasLayout reports whether any layer is pushed above the current cutoff.
func (r *Root) HasLayout() bool { return len(r.layers) > r.cutoffBase() }

// Depth returns the number of pushed layers.
func (r *Root) Depth() int { return len(r.layers) }

func (r *Root) hasGeneration(gen uint64) bool {
	for _, l := range r.layers {
		if l.generation == gen {
			return true
		}
	}
	return false
}

// PushCutoff hides the current layers from HasLayout and protects them from
// PopLayout until the matching PopCutoff.
func (r *Root) PushCutoff() {
	r.cutoffs = append(r.cutoffs, len(r.layers))
}

// PopCutoff removes the innermost cutoff. Every layer pushed since the
// matching PushCutoff must already be popped.
func (r *Root) PopCutoff() {
	if len(r.cutoffs) == 0 {
		panic("ui: pop from empty cutoff stack")
	}
	c := r.cutoffs[len(r.cutoffs)-1]
	if c != len(r.layers) {
		panic(fmt.Sprintf("ui: mismatched cutoff pop: %d layers open, cutoff at %d", len(r.layers), c))
	}
	r.cutoffs = r.cutoffs[:len(r.cutoffs)-1]
}

func (r *Root) cutoffBase() int {
	if len(r.cutoffs) == 0 {
		return 0
	}
	return r.cutoffs[len(r.cutoffs)-1]
}

// RestartLayout aborts the running layout pass; the root retries it from
// the top. Outside a pass it only schedules one.
func (r *Root) RestartLayout() {
	if r.inLayout {
		r.restart = true
	}
	r.needsLayout = true
}

// treeChanged is called when widgets are added, removed, hidden or change
// focusability or hotkeys.
func (r *Root) treeChanged() {
	r.structureDirty = true
	r.needsRender = true
}

// refreshStructure rebuilds the top layer's focus order and hotkey table.
func (r *Root) refreshStructure() {
	if !r.structureDirty {
		return
	}
	r.structureDirty = false
	top := r.top()
	if top == nil {
		r.focusOrder, r.hotkeys = nil, nil
		return
	}
	r.focusOrder = buildFocusOrder(top.root)
	table, err := buildHotkeyTable(top.root)
	if err != nil {
		debug.Errorf("layer %d: %v", top.generation, err)
	}
	r.hotkeys = table

	if r.focus != nil && !isShown(r.focus) {
		debug.Log("Root.refreshStructure: focused %T is no longer shown", r.focus)
		r.setFocus(nil)
	}
}

// forget drops every reference the root keeps into the subtree at w.
// Called before w is detached from its parent.
func (r *Root) forget(w Widget) {
	inside := func(x Widget) bool { return x != nil && IsDescendant(x, w) }

	if inside(r.focus) {
		r.focus = nil
		id := ""
		if cur := r.FocusedWidget(); cur != nil && !inside(cur) {
			id = cur.Base().ID()
		}
		r.observer.FocusChanged(id)
	}
	for _, l := range r.layers {
		if inside(l.defaultFocus) {
			l.defaultFocus = nil
		}
	}
	for i := range r.saved {
		if inside(r.saved[i].focus) {
			r.saved[i].focus = nil
		}
	}
	for i, h := range r.hoverPath {
		if inside(h) {
			r.hoverPath = r.hoverPath[:i]
			break
		}
	}
	r.structureDirty = true
	r.needsRender = true
}
