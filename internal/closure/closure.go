// Package closure implements the day-closure engine: it brings the
// reconciliation cursor up to today, backfilling a missed status for every
// activity on every elapsed day that has no record.
package closure

import (
	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/models"
)

// Result is the outcome of a reconciliation pass.
type Result struct {
	Snapshot   models.Snapshot
	LastClosed dayid.DayID
	// Backfilled is the number of missed entries written.
	Backfilled int
}

// Changed reports whether the pass wrote entries or moved the cursor.
func (r Result) Changed(prevCursor dayid.DayID) bool {
	return r.Backfilled > 0 || r.LastClosed != prevCursor
}

// Reconcile closes every day strictly between lastClosed and today, writing a
// missed entry for each activity that has no record for that day. Today is
// never closed; it stays open for the user to mark. Existing entries are never
// overwritten, so the pass is idempotent for a fixed today.
//
// An empty lastClosed means no reconciliation has ever run: the snapshot is
// returned unchanged and the cursor jumps to today with zero writes. A
// non-positive elapsed span (clock went backward, or same day) is a full
// no-op; the cursor never rewinds.
//
// The input snapshot is never mutated; when backfill occurs the result holds a
// fresh copy. Activities are backfilled uniformly across the elapsed range
// regardless of when they were created.
func Reconcile(activities []models.Activity, snapshot models.Snapshot, lastClosed, today dayid.DayID) Result {
	if lastClosed == "" {
		return Result{Snapshot: snapshot, LastClosed: today}
	}

	elapsed := dayid.DaysBetween(lastClosed, today)
	if elapsed <= 0 {
		return Result{Snapshot: snapshot, LastClosed: lastClosed}
	}

	next := snapshot.Clone()
	written := 0
	for i := 1; i <= elapsed; i++ {
		day := dayid.AddDays(lastClosed, i)
		if day == today {
			break
		}
		for _, a := range activities {
			if _, ok := next.Get(a.ID, day); !ok {
				next.Set(a.ID, day, models.StatusMissed)
				written++
			}
		}
	}

	return Result{Snapshot: next, LastClosed: today, Backfilled: written}
}
