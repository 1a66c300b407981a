package screen

import (
	"slices"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/input"
)

const AreaEntries = "entries"

// Log is the adventure log: the dataset's entries merged with journaled
// ones, oldest year first, and the journaled changes.
type Log struct {
	entries []catalog.LogEntry
	changes []catalog.Change
	focus   *focus.Machine
}

func NewLog(env Env) *Log {
	l := &Log{
		entries: MergeLog(env.Dataset.AdventureLog, env.Journal.Log()),
		changes: env.Journal.Changes(),
	}
	l.focus = focus.New(focus.Zone{
		Name:    AreaEntries,
		Count:   func() int { return len(l.entries) },
		Columns: 1,
	})
	return l
}

// MergeLog concatenates and sorts by year; entries of the same year keep
// their order.
func MergeLog(base, extra []catalog.LogEntry) []catalog.LogEntry {
	out := make([]catalog.LogEntry, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	slices.SortStableFunc(out, func(a, b catalog.LogEntry) int { return a.Year - b.Year })
	return out
}

func (l *Log) Screen() input.Screen { return input.ScreenLog }

func (l *Log) Focus() focus.State { return l.focus.State() }

func (l *Log) Entries() []catalog.LogEntry { return slices.Clone(l.entries) }

func (l *Log) Changes() []catalog.Change { return slices.Clone(l.changes) }

func (l *Log) HandleAction(a input.Action) { l.focus.Handle(a) }

func (l *Log) Update(time.Time) {}
