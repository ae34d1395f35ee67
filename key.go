package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key identifies a keyboard key. Printable characters use KeyRune with the
// character in KeyEvent.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlSpace
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlSpace: "Ctrl+Space",
}

func init() {
	for i := 0; i < 12; i++ {
		keyNames[KeyF1+Key(i)] = fmt.Sprintf("F%d", i+1)
	}
	for i := 0; i < 26; i++ {
		keyNames[KeyCtrlA+Key(i)] = "Ctrl+" + string(rune('A'+i))
	}
}

// String returns a human-readable key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// Modifier is a set of modifier flags.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether mod is set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns modifiers joined with "+".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"pagedown":  KeyPageDown,
	"pageup":    KeyPageUp,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"bs":        KeyBackspace,
	"backtab":   KeyBacktab,
	"ctrlspace": KeyCtrlSpace,
}

// ParseKey parses a key description such as "ctrl+c", "shift+tab", "pgdn"
// or "j" into a KeyEvent. Names are case-insensitive except single runes.
func ParseKey(name string) (KeyEvent, error) {
	if name == "" {
		return KeyEvent{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return KeyEvent{Key: KeyRune, Rune: r}, nil
	}

	var mod Modifier
	parts := strings.Split(name, "+")
	base := parts[len(parts)-1]
	if base == "" && len(parts) > 1 {
		// "ctrl++" style: the key itself is '+'.
		base = "+"
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl", "c":
			mod |= ModCtrl
		case "alt", "meta", "m":
			mod |= ModAlt
		case "shift", "s":
			mod |= ModShift
		case "":
		default:
			return KeyEvent{}, fmt.Errorf("unknown modifier %q in %q", p, name)
		}
	}

	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		if mod == ModCtrl && r >= 'a' && r <= 'z' {
			return KeyEvent{Key: KeyCtrlA + Key(r-'a')}, nil
		}
		if mod == ModCtrl && r >= 'A' && r <= 'Z' {
			return KeyEvent{Key: KeyCtrlA + Key(r-'A')}, nil
		}
		return KeyEvent{Key: KeyRune, Rune: r, Mod: mod}, nil
	}

	lower := strings.ToLower(base)
	if mod == ModCtrl && lower == "space" {
		return KeyEvent{Key: KeyCtrlSpace}, nil
	}
	if lower == "space" {
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: mod}, nil
	}
	if k, ok := keyAliases[lower]; ok {
		return normalizeTab(KeyEvent{Key: k, Mod: mod}), nil
	}
	for k := KeyEscape; k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], base) {
			return normalizeTab(KeyEvent{Key: k, Mod: mod}), nil
		}
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", name)
}

// normalizeTab folds shift+tab into KeyBacktab.
func normalizeTab(ke KeyEvent) KeyEvent {
	if ke.Key == KeyTab && ke.Mod.Has(ModShift) {
		ke.Key = KeyBacktab
		ke.Mod &^= ModShift
	}
	return ke
}
