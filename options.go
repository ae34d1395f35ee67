package ui

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-ui/internal/config"
	"github.com/grindlemire/go-ui/internal/debug"
)

// RootOption configures a Root.
type RootOption func(*Root) error

// WithObserver installs an observer. A nil observer restores the no-op one.
func WithObserver(o Observer) RootOption {
	return func(r *Root) error {
		if o == nil {
			o = NopObserver{}
		}
		r.observer = o
		return nil
	}
}

// WithRemapper installs the key remapper applied before dispatch.
func WithRemapper(m Remapper) RootOption {
	return func(r *Root) error {
		r.remapper = m
		return nil
	}
}

// WithScrollConfig sets scroller step sizes.
func WithScrollConfig(c ScrollConfig) RootOption {
	return func(r *Root) error {
		if c.LineStep < 1 || c.WheelStep < 1 {
			return fmt.Errorf("scroll steps must be at least 1, got line=%d wheel=%d", c.LineStep, c.WheelStep)
		}
		r.scroll = c
		return nil
	}
}

// WithMaxLayoutRestarts bounds how often one layout pass may be restarted.
// Default is 1.
func WithMaxLayoutRestarts(n int) RootOption {
	return func(r *Root) error {
		if n < 0 {
			return fmt.Errorf("max layout restarts must be >= 0, got %d", n)
		}
		r.maxRestarts = n
		return nil
	}
}

// WithTabWrap controls whether Tab wraps from the last focusable widget to
// the first. Default is true.
func WithTabWrap(wrap bool) RootOption {
	return func(r *Root) error {
		r.tabWraps = wrap
		return nil
	}
}

// WithPollInterval sets how long blocking helpers wait per pump so that
// context cancellation is noticed. Default is 50ms.
func WithPollInterval(d time.Duration) RootOption {
	return func(r *Root) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got %s", d)
		}
		r.pollInterval = d
		return nil
	}
}

// WithConfig applies a loaded configuration: scroll steps, tab wrapping,
// restart bound, popup defaults, the keymap remap tables and debug logging.
func WithConfig(c *config.Config) RootOption {
	return func(r *Root) error {
		if err := c.Validate(); err != nil {
			return err
		}
		r.scroll = ScrollConfig{LineStep: c.Input.LineStep, WheelStep: c.Input.WheelStep}
		r.tabWraps = c.Input.TabWraps
		r.maxRestarts = c.Layout.MaxRestarts

		border, err := ParseBorderStyle(c.Popup.Border)
		if err != nil {
			return err
		}
		r.popupDefaults = []PopupOption{
			WithPadding(c.Popup.Padding),
			WithDepthIndent(c.Popup.DepthIndent),
			WithCentred(c.Popup.Centred),
			WithBorder(border, NewStyle()),
		}

		if len(c.Keymaps) > 0 {
			km, err := NewKeyRemap(c.Keymaps)
			if err != nil {
				return err
			}
			r.remapper = km
		}

		if c.Debug.File != "" {
			if err := debug.Init(debug.Config{
				File:       c.Debug.File,
				Level:      c.Debug.Level,
				MaxSizeMB:  c.Debug.MaxSizeMB,
				MaxBackups: c.Debug.MaxBackups,
			}); err != nil {
				return err
			}
		}
		return nil
	}
}

// PushOption configures a layer at push time.
type PushOption func(*Layer)

// WithInitialFocus sets the layer's default focus widget. It must be inside
// the pushed subtree.
func WithInitialFocus(w Widget) PushOption {
	return func(l *Layer) {
		l.defaultFocus = w
	}
}

// WithKeymap overrides the layer's keymap context. RunLayout pushes with
// KeymapDefault unless this is given.
func WithKeymap(km KeymapContext) PushOption {
	return func(l *Layer) {
		l.keymap = km
	}
}

// WithEventFilter adds a filter that sees every event routed to the layer
// before normal dispatch. Returning true consumes the event.
func WithEventFilter(fn func(Event) bool) PushOption {
	return func(l *Layer) {
		l.filters = append(l.filters, fn)
	}
}
