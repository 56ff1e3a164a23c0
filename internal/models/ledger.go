package models

import (
	"fmt"

	"github.com/mwhitford/tick/internal/dayid"
)

// Ledger is the entire durable state of the application: the ordered activity
// list, the status snapshot, and the reconciliation cursor. It is persisted as
// a single JSON document and replaced wholesale on every write.
type Ledger struct {
	Activities   []Activity `json:"activities"`
	StatusByDate Snapshot   `json:"statusByDate"`
	// LastClosed is the most recent day through which missed-backfill has
	// run. Empty means no reconciliation has ever completed (first run).
	LastClosed dayid.DayID `json:"lastClosedISO,omitempty"`
}

// NewLedger returns an empty ledger with initialized containers.
func NewLedger() Ledger {
	return Ledger{
		Activities:   []Activity{},
		StatusByDate: make(Snapshot),
	}
}

// Normalize ensures containers are non-nil after deserialization.
func (l *Ledger) Normalize() {
	if l.Activities == nil {
		l.Activities = []Activity{}
	}
	if l.StatusByDate == nil {
		l.StatusByDate = make(Snapshot)
	}
}

// Validate checks every day identifier in the ledger. A failure means the
// persisted document is corrupt; the error unwraps to *dayid.MalformedDateError.
func (l Ledger) Validate() error {
	if l.LastClosed != "" {
		if _, err := dayid.Parse(string(l.LastClosed)); err != nil {
			return fmt.Errorf("ledger cursor: %w", err)
		}
	}
	for id, days := range l.StatusByDate {
		for day, st := range days {
			if _, err := dayid.Parse(string(day)); err != nil {
				return fmt.Errorf("ledger entry for activity %s: %w", id, err)
			}
			if st != StatusDone && st != StatusMissed {
				return fmt.Errorf("ledger entry for activity %s on %s has unknown status %q", id, day, st)
			}
		}
	}
	return nil
}

// FindActivity returns the activity with the given ID and whether it exists.
func (l Ledger) FindActivity(id string) (Activity, bool) {
	for _, a := range l.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// FindActivityByName returns the first activity with the given display name.
func (l Ledger) FindActivityByName(name string) (Activity, bool) {
	for _, a := range l.Activities {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// OrphanedIDs returns snapshot keys whose owning activity is no longer in the
// active list. Their history is retained so past counts never shrink.
func (l Ledger) OrphanedIDs() []string {
	live := make(map[string]struct{}, len(l.Activities))
	for _, a := range l.Activities {
		live[a.ID] = struct{}{}
	}
	var orphans []string
	for id := range l.StatusByDate {
		if _, ok := live[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	return orphans
}
