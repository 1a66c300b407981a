// Package journal records forged variants as changes and adventure log
// entries. Writes are best effort: failures are logged and never reach the
// caller.
package journal

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
)

const (
	NamespaceChanges = "changes"
	NamespaceLog     = "log"

	forgeRationale = "Forged in ritual"
	noRevision     = "—"
	statusDone     = "Completed"
)

type Journal struct {
	store Store
}

func New(store Store) *Journal {
	return &Journal{store: store}
}

func (j *Journal) log() *logrus.Entry {
	return logger.Log.WithField("component", "journal")
}

// Changes returns recorded changes, newest first. Unreadable data reads as
// no changes; unreadable records are skipped.
func (j *Journal) Changes() []catalog.Change {
	out := readAll[catalog.Change](j, NamespaceChanges)
	slices.Reverse(out)
	return out
}

// Log returns recorded adventure log entries in the order written.
func (j *Journal) Log() []catalog.LogEntry {
	return readAll[catalog.LogEntry](j, NamespaceLog)
}

func readAll[T any](j *Journal, ns string) []T {
	raws, err := j.store.ReadAll(ns)
	if err != nil {
		j.log().WithError(err).WithField("namespace", ns).Warn("journal unreadable")
		return nil
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			j.log().WithError(err).WithField("namespace", ns).Debug("skipping record")
			continue
		}
		out = append(out, v)
	}
	return out
}

// NewChangeID returns a short change identifier of the form V1A2B3C.
func NewChangeID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "V" + strings.ToUpper(id[:6])
}

// RecordForge writes the change and log entry for a forged variant.
// datasetYear is the latest year in the bundled log; the new entry goes one
// year past both it and anything already journaled.
func (j *Journal) RecordForge(variant catalog.Item, baseID string, datasetYear int) (catalog.Change, catalog.LogEntry) {
	change := catalog.Change{
		ID:           NewChangeID(),
		Type:         catalog.ChangeVariant,
		Title:        variant.Name,
		Description:  variant.Description,
		AffectedItem: baseID,
		FromRev:      noRevision,
		ToRev:        variant.Revision,
		Rationale:    forgeRationale,
		Status:       statusDone,
	}
	if err := j.store.Append(NamespaceChanges, change); err != nil {
		j.log().WithError(err).WithField("change", change.ID).Warn("change not saved")
	}

	year := max(0, datasetYear)
	for _, e := range j.Log() {
		year = max(year, e.Year)
	}
	entry := catalog.LogEntry{
		Year:  year + 1,
		Entry: fmt.Sprintf("Forged %s → %s.", variant.Name, variant.Revision),
	}
	if err := j.store.Append(NamespaceLog, entry); err != nil {
		j.log().WithError(err).WithField("year", entry.Year).Warn("log entry not saved")
	}
	return change, entry
}
