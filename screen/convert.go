package screen

import (
	"github.com/gdamore/tcell/v2"

	ui "github.com/grindlemire/go-ui"
)

var namedKeys = map[tcell.Key]ui.Key{
	tcell.KeyEnter:      ui.KeyEnter,
	tcell.KeyTab:        ui.KeyTab,
	tcell.KeyBacktab:    ui.KeyBacktab,
	tcell.KeyEscape:     ui.KeyEscape,
	tcell.KeyBackspace:  ui.KeyBackspace,
	tcell.KeyBackspace2: ui.KeyBackspace,
	tcell.KeyDelete:     ui.KeyDelete,
	tcell.KeyInsert:     ui.KeyInsert,
	tcell.KeyUp:         ui.KeyUp,
	tcell.KeyDown:       ui.KeyDown,
	tcell.KeyLeft:       ui.KeyLeft,
	tcell.KeyRight:      ui.KeyRight,
	tcell.KeyHome:       ui.KeyHome,
	tcell.KeyEnd:        ui.KeyEnd,
	tcell.KeyPgUp:       ui.KeyPageUp,
	tcell.KeyPgDn:       ui.KeyPageDown,
	tcell.KeyCtrlSpace:  ui.KeyCtrlSpace,
}

func convertMods(m tcell.ModMask) ui.Modifier {
	var out ui.Modifier
	if m&tcell.ModCtrl != 0 {
		out |= ui.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= ui.ModAlt
	}
	if m&tcell.ModShift != 0 {
		out |= ui.ModShift
	}
	return out
}

// convertKey maps a tcell key. Control letters carry the modifier in the
// key itself, so ModCtrl is dropped for them. Keys with no equivalent
// report false.
func convertKey(e *tcell.EventKey) (ui.KeyEvent, bool) {
	mods := convertMods(e.Modifiers())
	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		return ui.KeyEvent{Key: ui.KeyRune, Rune: e.Rune(), Mod: mods}, true
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return ui.KeyEvent{Key: ui.KeyF1 + ui.Key(k-tcell.KeyF1), Mod: mods}, true
	}
	if uk, ok := namedKeys[k]; ok {
		if uk == ui.KeyCtrlSpace {
			mods &^= ui.ModCtrl
		}
		return ui.KeyEvent{Key: uk, Mod: mods}, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return ui.KeyEvent{Key: ui.KeyCtrlA + ui.Key(k-tcell.KeyCtrlA), Mod: mods &^ ui.ModCtrl}, true
	}
	return ui.KeyEvent{}, false
}

var buttonMap = []struct {
	mask tcell.ButtonMask
	btn  ui.MouseButton
}{
	{tcell.ButtonPrimary, ui.MouseLeft},
	{tcell.ButtonMiddle, ui.MouseMiddle},
	{tcell.ButtonSecondary, ui.MouseRight},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// convertMouse turns one tcell mouse report into engine events. tcell
// reports the held button set, so presses and releases are found by
// comparing against prev. It returns the events and the new held set.
func convertMouse(e *tcell.EventMouse, prev tcell.ButtonMask) ([]ui.Event, tcell.ButtonMask) {
	x, y := e.Position()
	mods := convertMods(e.Modifiers())
	btns := e.Buttons()
	held := btns &^ wheelMask

	var out []ui.Event
	for _, b := range buttonMap {
		was, is := prev&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, ui.MouseEvent{Kind: ui.MousePress, Button: b.btn, X: x, Y: y, Mod: mods})
		case was && !is:
			out = append(out, ui.MouseEvent{Kind: ui.MouseRelease, Button: b.btn, X: x, Y: y, Mod: mods})
		}
	}

	switch {
	case btns&tcell.WheelUp != 0:
		out = append(out, ui.MouseEvent{Kind: ui.MouseWheel, X: x, Y: y, WheelDelta: 1, Mod: mods})
	case btns&tcell.WheelDown != 0:
		out = append(out, ui.MouseEvent{Kind: ui.MouseWheel, X: x, Y: y, WheelDelta: -1, Mod: mods})
	}

	if len(out) == 0 {
		out = append(out, ui.MouseEvent{Kind: ui.MouseMove, X: x, Y: y, Mod: mods})
	}
	return out, held
}

func convertColor(c ui.Color) tcell.Color {
	switch c.Type() {
	case ui.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ui.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func convertStyle(s ui.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Fg)).
		Background(convertColor(s.Bg)).
		Bold(s.HasAttr(ui.AttrBold)).
		Dim(s.HasAttr(ui.AttrDim)).
		Italic(s.HasAttr(ui.AttrItalic)).
		Underline(s.HasAttr(ui.AttrUnderline)).
		Blink(s.HasAttr(ui.AttrBlink)).
		Reverse(s.HasAttr(ui.AttrReverse))
}
