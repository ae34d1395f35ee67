// Package screen adapts a tcell terminal to the ui package: it is both the
// Canvas widgets render onto and the EventReader the root pumps.
package screen

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/debug"
)

// eventBuffer bounds how far the reader goroutine runs ahead of the UI.
const eventBuffer = 64

// Screen is a terminal backed by tcell.
type Screen struct {
	scr    tcell.Screen
	events chan ui.Event
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once

	// owned by the reader goroutine
	buttons tcell.ButtonMask
}

var (
	_ ui.Canvas      = (*Screen)(nil)
	_ ui.EventReader = (*Screen)(nil)
)

// New opens the controlling terminal.
func New() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return NewWith(scr)
}

// NewWith wraps an uninitialised tcell screen, such as a simulation screen
// in tests. It initialises the screen, enables the mouse and starts reading
// input.
func NewWith(scr tcell.Screen) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal: %w", err)
	}
	scr.EnableMouse()
	scr.HideCursor()

	s := &Screen{
		scr:    scr,
		events: make(chan ui.Event, eventBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.read()
	w, h := scr.Size()
	debug.Log("screen.NewWith: %dx%d", w, h)
	return s, nil
}

// Size implements ui.Canvas.
func (s *Screen) Size() (int, int) {
	return s.scr.Size()
}

// SetContent implements ui.Canvas.
func (s *Screen) SetContent(x, y int, r rune, style ui.Style) {
	s.scr.SetContent(x, y, r, nil, convertStyle(style))
}

// Clear implements ui.Canvas.
func (s *Screen) Clear() {
	s.scr.Clear()
}

// Show implements ui.Canvas.
func (s *Screen) Show() {
	s.scr.Show()
}

// PollEvent implements ui.EventReader.
func (s *Screen) PollEvent(timeout time.Duration) (ui.Event, bool) {
	switch {
	case timeout == 0:
		select {
		case ev, ok := <-s.events:
			return ev, ok
		default:
			return nil, false
		}
	case timeout < 0:
		ev, ok := <-s.events
		return ev, ok
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev, ok := <-s.events:
		return ev, ok
	case <-t.C:
		return nil, false
	}
}

// Close restores the terminal and stops the reader. It is safe to call
// more than once.
func (s *Screen) Close() error {
	s.once.Do(func() {
		close(s.quit)
		// Wake the reader in case the backend keeps its queue open.
		_ = s.scr.PostEvent(tcell.NewEventInterrupt(nil))
		s.scr.Fini()
		<-s.done
		debug.Log("screen.Close: terminal restored")
	})
	return nil
}

// read forwards converted tcell events until the screen is finalised.
func (s *Screen) read() {
	defer close(s.done)
	defer close(s.events)
	for {
		tev := s.scr.PollEvent()
		if tev == nil {
			return
		}
		select {
		case <-s.quit:
			return
		default:
		}
		for _, ev := range s.convert(tev) {
			select {
			case s.events <- ev:
			case <-s.quit:
				return
			}
		}
	}
}

func (s *Screen) convert(tev tcell.Event) []ui.Event {
	switch e := tev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return []ui.Event{ui.ResizeEvent{Width: w, Height: h}}
	case *tcell.EventKey:
		if ke, ok := convertKey(e); ok {
			return []ui.Event{ke}
		}
	case *tcell.EventMouse:
		var evs []ui.Event
		evs, s.buttons = convertMouse(e, s.buttons)
		return evs
	}
	return nil
}
