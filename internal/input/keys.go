package input

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// KeyEvent is one key-down from a frontend. Key is the lower-case key name
// ("esc", "enter", "space", "backspace", "tab", "up", "a", "-").
type KeyEvent struct {
	Key    string
	Ctrl   bool
	Shift  bool
	Repeat bool
}

// Name is the canonical binding name, e.g. "ctrl+s" or "shift+tab". Single
// letters ignore shift so "I" and "i" bind alike.
func (e KeyEvent) Name() string {
	key := e.Key
	if key == " " {
		key = "space"
	}
	key = strings.ToLower(strings.TrimSpace(key))
	var b strings.Builder
	if e.Ctrl {
		b.WriteString("ctrl+")
	}
	if e.Shift && utf8.RuneCountInString(key) > 1 {
		b.WriteString("shift+")
	}
	b.WriteString(key)
	return b.String()
}

// KeyTable maps canonical key names to actions.
var KeyTable = map[string]Action{
	"esc":       ActionSystem,
	"i":         ActionInventory,
	"q":         ActionQuests,
	"f":         ActionForge,
	"-":         ActionLog,
	"ctrl+s":    ActionLog,
	"enter":     ActionConfirm,
	"space":     ActionConfirm,
	"backspace": ActionBack,
	"up":        ActionUp,
	"w":         ActionUp,
	"down":      ActionDown,
	"s":         ActionDown,
	"left":      ActionLeft,
	"a":         ActionLeft,
	"right":     ActionRight,
	"d":         ActionRight,
}

// KeyAction looks up the action bound to ev.
func KeyAction(ev KeyEvent) (Action, bool) {
	a, ok := KeyTable[ev.Name()]
	return a, ok
}

// KeysFor lists the key names bound to a, sorted for display.
func KeysFor(a Action) []string {
	var keys []string
	for name, bound := range KeyTable {
		if bound == a {
			keys = append(keys, name)
		}
	}
	slices.SortFunc(keys, keyOrder)
	return keys
}

// keyOrder puts named keys before letters so "up, w" reads naturally.
func keyOrder(a, b string) int {
	if named := len(a) > 1; named != (len(b) > 1) {
		if named {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
