package ui

import "fmt"

// hotkeyEntry is a binding with its tree position for ordering.
type hotkeyEntry struct {
	binding  KeyBinding
	position int // DFS index of the owning widget
}

// hotkeyTable holds every hotkey of one layer in tree order.
type hotkeyTable struct {
	entries []hotkeyEntry
}

// buildHotkeyTable walks the visible part of the tree under root and
// collects OnHotkey bindings. The table is always returned; a non-nil error
// reports two consuming bindings for the same pattern.
func buildHotkeyTable(root Widget) (*hotkeyTable, error) {
	table := &hotkeyTable{}
	position := 0
	walkShown(root, func(w Widget) {
		for _, b := range w.Base().hotkeys {
			table.entries = append(table.entries, hotkeyEntry{binding: b, position: position})
		}
		position++
	})
	return table, table.validate()
}

// dispatch fires matching handlers in tree order and reports whether a
// consuming binding fired.
func (t *hotkeyTable) dispatch(ke KeyEvent) bool {
	if t == nil {
		return false
	}
	for _, e := range t.entries {
		if !e.binding.Pattern.matches(ke) {
			continue
		}
		e.binding.Handler(ke)
		if e.binding.Stop {
			return true
		}
	}
	return false
}

// validate rejects two Stop bindings on one pattern; it is ambiguous which
// should win. A Stop binding alongside broadcast bindings is fine.
func (t *hotkeyTable) validate() error {
	seen := make(map[KeyPattern]int)
	for _, e := range t.entries {
		if !e.binding.Stop {
			continue
		}
		if pos, dup := seen[e.binding.Pattern]; dup {
			return fmt.Errorf("conflicting stop hotkeys for pattern %+v at tree positions %d and %d",
				e.binding.Pattern, pos, e.position)
		}
		seen[e.binding.Pattern] = e.position
	}
	return nil
}
