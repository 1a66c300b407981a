package input

import (
	"slices"
	"testing"
)

func TestKeyEventName(t *testing.T) {
	cases := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Key: "I"}, "i"},
		{KeyEvent{Key: "S", Ctrl: true}, "ctrl+s"},
		{KeyEvent{Key: " "}, "space"},
		{KeyEvent{Key: "tab", Shift: true}, "shift+tab"},
		{KeyEvent{Key: "Q", Shift: true}, "q"},
	}
	for _, tc := range cases {
		if got := tc.ev.Name(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestKeyTableMatchesActions(t *testing.T) {
	cases := map[string]Action{
		"esc":       ActionSystem,
		"i":         ActionInventory,
		"q":         ActionQuests,
		"f":         ActionForge,
		"-":         ActionLog,
		"ctrl+s":    ActionLog,
		"enter":     ActionConfirm,
		"backspace": ActionBack,
		"w":         ActionUp,
		"right":     ActionRight,
	}
	for key, want := range cases {
		got, ok := KeyTable[key]
		if !ok || got != want {
			t.Fatalf("expected %s for %q, got %s", want, key, got)
		}
	}
}

func TestKeysForListsNamedKeysFirst(t *testing.T) {
	got := KeysFor(ActionUp)
	if !slices.Equal(got, []string{"up", "w"}) {
		t.Fatalf("expected [up w], got %v", got)
	}
}

func TestParseActionRoundTripsNames(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("expected %s to parse back, got %s", a, got)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Fatalf("expected unknown action to fail")
	}
}
