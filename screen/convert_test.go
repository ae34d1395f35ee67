package screen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	ui "github.com/grindlemire/go-ui"
)

func TestConvertKey(t *testing.T) {
	type tc struct {
		in     *tcell.EventKey
		want   ui.KeyEvent
		wantOK bool
	}

	tests := map[string]tc{
		"rune":        {in: tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyRune, Rune: 'a'}, wantOK: true},
		"alt rune":    {in: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), want: ui.KeyEvent{Key: ui.KeyRune, Rune: 'x', Mod: ui.ModAlt}, wantOK: true},
		"meta as alt": {in: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModMeta), want: ui.KeyEvent{Key: ui.KeyRune, Rune: 'x', Mod: ui.ModAlt}, wantOK: true},
		"enter":       {in: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyEnter}, wantOK: true},
		"tab":         {in: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyTab}, wantOK: true},
		"backtab":     {in: tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyBacktab}, wantOK: true},
		"backspace":   {in: tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyBackspace}, wantOK: true},
		"page down":   {in: tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyPageDown}, wantOK: true},
		"shift up":    {in: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), want: ui.KeyEvent{Key: ui.KeyUp, Mod: ui.ModShift}, wantOK: true},
		"f12":         {in: tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), want: ui.KeyEvent{Key: ui.KeyF12}, wantOK: true},
		"ctrl letter": {in: tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), want: ui.KeyEvent{Key: ui.KeyCtrlW}, wantOK: true},
		"ctrl space":  {in: tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), want: ui.KeyEvent{Key: ui.KeyCtrlSpace}, wantOK: true},
		"unsupported": {in: tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := convertKey(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("convertKey mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertMouse(t *testing.T) {
	type tc struct {
		prev     tcell.ButtonMask
		buttons  tcell.ButtonMask
		want     []ui.Event
		wantHeld tcell.ButtonMask
	}

	tests := map[string]tc{
		"move": {
			want: []ui.Event{ui.MouseEvent{Kind: ui.MouseMove, X: 2, Y: 3}},
		},
		"press": {
			buttons:  tcell.ButtonPrimary,
			want:     []ui.Event{ui.MouseEvent{Kind: ui.MousePress, Button: ui.MouseLeft, X: 2, Y: 3}},
			wantHeld: tcell.ButtonPrimary,
		},
		"drag": {
			prev:     tcell.ButtonPrimary,
			buttons:  tcell.ButtonPrimary,
			want:     []ui.Event{ui.MouseEvent{Kind: ui.MouseMove, X: 2, Y: 3}},
			wantHeld: tcell.ButtonPrimary,
		},
		"release": {
			prev: tcell.ButtonSecondary,
			want: []ui.Event{ui.MouseEvent{Kind: ui.MouseRelease, Button: ui.MouseRight, X: 2, Y: 3}},
		},
		"wheel up": {
			buttons: tcell.WheelUp,
			want:    []ui.Event{ui.MouseEvent{Kind: ui.MouseWheel, X: 2, Y: 3, WheelDelta: 1}},
		},
		"wheel down while held": {
			prev:     tcell.ButtonMiddle,
			buttons:  tcell.ButtonMiddle | tcell.WheelDown,
			want:     []ui.Event{ui.MouseEvent{Kind: ui.MouseWheel, X: 2, Y: 3, WheelDelta: -1}},
			wantHeld: tcell.ButtonMiddle,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, held := convertMouse(tcell.NewEventMouse(2, 3, tt.buttons, tcell.ModNone), tt.prev)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantHeld, held)
		})
	}
}

func TestConvertStyle(t *testing.T) {
	st := ui.NewStyle().Foreground(ui.Red).Background(ui.RGBColor(1, 2, 3)).Bold().Reverse()
	fg, bg, attrs := convertStyle(st).Decompose()

	assert.Equal(t, tcell.PaletteColor(1), fg)
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrReverse)
	assert.Zero(t, attrs&tcell.AttrDim)

	fg, bg, _ = convertStyle(ui.NewStyle()).Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.ColorDefault, bg)
}
