package ui

import "time"

// Event is implemented by every event delivered through the widget tree.
type Event interface {
	// EventTarget returns the widget the event was routed to. For bubbled
	// events this stays the original target while ancestors are tried.
	EventTarget() Widget
	isEvent()
}

// KeyEvent is a keyboard press.
type KeyEvent struct {
	Key    Key
	Rune   rune
	Mod    Modifier
	Target Widget
}

// EventTarget returns the widget the key was routed to.
func (e KeyEvent) EventTarget() Widget { return e.Target }
func (KeyEvent) isEvent()              {}

// IsRune reports whether the event is the printable character r.
func (e KeyEvent) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Rune == r
}

// Name returns a parseable description of the key.
func (e KeyEvent) Name() string {
	var prefix string
	if e.Mod.Has(ModCtrl) {
		prefix += "ctrl+"
	}
	if e.Mod.Has(ModAlt) {
		prefix += "alt+"
	}
	if e.Mod.Has(ModShift) {
		prefix += "shift+"
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			return prefix + "space"
		}
		return prefix + string(e.Rune)
	}
	return prefix + e.Key.String()
}

// MouseKind distinguishes pointer events.
type MouseKind uint8

const (
	MouseMove MouseKind = iota
	MousePress
	MouseRelease
	MouseWheel
	MouseEnter
	MouseLeave
)

var mouseKindNames = [...]string{"Move", "Press", "Release", "Wheel", "Enter", "Leave"}

// String returns the kind's name.
func (k MouseKind) String() string {
	if int(k) < len(mouseKindNames) {
		return mouseKindNames[k]
	}
	return "Unknown"
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// MouseEvent is a pointer event in screen cells. WheelDelta is positive when
// the wheel moves away from the user.
type MouseEvent struct {
	Kind       MouseKind
	Button     MouseButton
	X, Y       int
	WheelDelta int
	Mod        Modifier
	Target     Widget
}

func (e MouseEvent) EventTarget() Widget { return e.Target }
func (MouseEvent) isEvent()              {}

// FocusEvent is sent to a widget when it gains (In) or loses focus.
// It is never bubbled.
type FocusEvent struct {
	In     bool
	Target Widget
}

func (e FocusEvent) EventTarget() Widget { return e.Target }
func (FocusEvent) isEvent()              {}

// ActivateEvent is sent to the focused widget when Enter goes unhandled.
type ActivateEvent struct {
	Target Widget
}

func (e ActivateEvent) EventTarget() Widget { return e.Target }
func (ActivateEvent) isEvent()              {}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) EventTarget() Widget { return nil }
func (ResizeEvent) isEvent()            {}

// EventReader is the input backend. It translates platform input into
// engine events.
type EventReader interface {
	// PollEvent waits up to timeout for the next event. A zero timeout
	// checks without blocking; a negative timeout blocks indefinitely.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases the backend.
	Close() error
}
