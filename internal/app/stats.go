package app

import (
	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/models"
)

// ActivityStats summarizes one activity's history.
type ActivityStats struct {
	Activity models.Activity
	Done     int
	Missed   int
	// Streak is the run of consecutive done days ending today, or ending
	// yesterday when today is still unmarked.
	Streak int
}

// Stats returns per-activity totals for the active list, ordered as the list
// is. Orphaned history is not included here; OrphanedEntryCount reports it.
func (a *App) Stats() []ActivityStats {
	today := a.todayFn()
	out := make([]ActivityStats, 0, len(a.ledger.Activities))
	for _, act := range a.ledger.Activities {
		st := ActivityStats{Activity: act}
		for _, status := range a.ledger.StatusByDate[act.ID] {
			switch status {
			case models.StatusDone:
				st.Done++
			case models.StatusMissed:
				st.Missed++
			}
		}
		st.Streak = streak(a.ledger.StatusByDate, act.ID, today)
		out = append(out, st)
	}
	return out
}

// OrphanedEntryCount returns the number of status entries whose owning
// activity has been deleted. They are retained indefinitely; there is no
// garbage collection.
func (a *App) OrphanedEntryCount() int {
	n := 0
	for _, id := range a.ledger.OrphanedIDs() {
		n += len(a.ledger.StatusByDate[id])
	}
	return n
}

func streak(snap models.Snapshot, activityID string, today dayid.DayID) int {
	day := today
	if st, ok := snap.Get(activityID, day); !ok || st != models.StatusDone {
		// Today is still open; an unmarked today does not break the run.
		day = dayid.AddDays(day, -1)
	}
	n := 0
	for {
		st, ok := snap.Get(activityID, day)
		if !ok || st != models.StatusDone {
			break
		}
		n++
		day = dayid.AddDays(day, -1)
	}
	return n
}
