package screen

import (
	"testing"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/input"
)

func TestMergeLogSortsStably(t *testing.T) {
	got := MergeLog(
		[]catalog.LogEntry{{Year: 1, Entry: "a"}, {Year: 4, Entry: "b"}},
		[]catalog.LogEntry{{Year: 4, Entry: "c"}, {Year: 2, Entry: "d"}},
	)
	want := []string{"a", "d", "b", "c"}
	for i, e := range got {
		if e.Entry != want[i] {
			t.Fatalf("expected %v, got %+v", want, got)
		}
	}
}

func TestLogIncludesJournal(t *testing.T) {
	env, _ := testEnv()
	variant := catalog.Item{Name: "Swift Hylian Shield", Revision: "Rev B"}
	env.Journal.RecordForge(variant, "I-002", env.Dataset.LastYear())

	l := NewLog(env)
	entries := l.Entries()
	last := entries[len(entries)-1]
	if last.Year != 8 || last.Entry != "Forged Swift Hylian Shield → Rev B." {
		t.Fatalf("expected journaled entry last, got %+v", last)
	}
	if c := l.Changes(); len(c) != 1 || c[0].AffectedItem != "I-002" {
		t.Fatalf("expected one journaled change, got %+v", c)
	}
	press(l, input.ActionDown)
	if l.Focus().Index != 1 {
		t.Fatalf("expected down to scroll, got %d", l.Focus().Index)
	}
}

func TestHomeMenuOpensScreen(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	s.Router().Dispatch(input.ActionDown)
	s.Router().Dispatch(input.ActionConfirm)
	if s.Current() != input.ScreenQuests {
		t.Fatalf("expected quests, got %s", s.Current())
	}
}
