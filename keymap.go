package ui

import (
	"fmt"
	"sort"
)

// KeyBinding associates a key pattern with a hotkey handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // consume the key and skip later bindings
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key
	Rune          rune
	AnyRune       bool
	Mod           Modifier // when non-zero, the event must carry exactly these
	RequireNoMods bool
}

// OnKey creates a broadcast binding: it fires but does not consume.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop creates a binding that consumes the key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

// OnRune creates a broadcast binding for one printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

// OnRuneStop creates a consuming binding for one printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler, Stop: true}
}

// matches reports whether ke satisfies p.
func (p KeyPattern) matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}
	switch {
	case p.AnyRune:
		return ke.Key == KeyRune
	case p.Rune != 0:
		return ke.Key == KeyRune && ke.Rune == p.Rune
	case p.Key != 0:
		return ke.Key == p.Key
	}
	return false
}

// KeymapContext tags a layer with the input mode its keys are remapped in.
type KeymapContext string

const (
	KeymapDefault KeymapContext = "default"
	KeymapMenu    KeymapContext = "menu"
	KeymapTarget  KeymapContext = "target"
	KeymapLevelUp KeymapContext = "levelup"
	KeymapNone    KeymapContext = "none"
)

// Remapper rewrites raw keys before dispatch. Returning false drops the key.
type Remapper interface {
	Remap(ctx KeymapContext, ke KeyEvent) (KeyEvent, bool)
}

// RemapFunc adapts a function to Remapper.
type RemapFunc func(ctx KeymapContext, ke KeyEvent) (KeyEvent, bool)

// Remap calls f.
func (f RemapFunc) Remap(ctx KeymapContext, ke KeyEvent) (KeyEvent, bool) {
	return f(ctx, ke)
}

type keyID struct {
	key  Key
	r    rune
	mods Modifier
}

func idOf(ke KeyEvent) keyID {
	return keyID{key: ke.Key, r: ke.Rune, mods: ke.Mod}
}

// KeyRemap is a table-driven Remapper. Unlisted keys pass through unchanged.
type KeyRemap struct {
	tables map[KeymapContext]map[keyID]KeyEvent
}

// NewKeyRemap builds a remapper from context -> from -> to key names, as
// produced by the keymaps section of the config file.
func NewKeyRemap(names map[string]map[string]string) (*KeyRemap, error) {
	km := &KeyRemap{tables: make(map[KeymapContext]map[keyID]KeyEvent)}
	ctxs := make([]string, 0, len(names))
	for c := range names {
		ctxs = append(ctxs, c)
	}
	sort.Strings(ctxs)
	for _, c := range ctxs {
		for from, to := range names[c] {
			if err := km.Add(KeymapContext(c), from, to); err != nil {
				return nil, err
			}
		}
	}
	return km, nil
}

// Add maps the key named from to the key named to within ctx.
func (km *KeyRemap) Add(ctx KeymapContext, from, to string) error {
	src, err := ParseKey(from)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", ctx, err)
	}
	dst, err := ParseKey(to)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", ctx, err)
	}
	t := km.tables[ctx]
	if t == nil {
		t = make(map[keyID]KeyEvent)
		km.tables[ctx] = t
	}
	t[idOf(src)] = dst
	return nil
}

// Remap implements Remapper.
func (km *KeyRemap) Remap(ctx KeymapContext, ke KeyEvent) (KeyEvent, bool) {
	if ke.Key == KeyNone {
		return ke, false
	}
	if dst, ok := km.tables[ctx][idOf(ke)]; ok {
		dst.Target = ke.Target
		return dst, true
	}
	return ke, true
}
