package closure

import (
	"testing"

	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/models"
)

func activity(id string) models.Activity {
	return models.Activity{ID: id, Name: "activity " + id}
}

func TestReconcileBackfillsElapsedDays(t *testing.T) {
	acts := []models.Activity{activity("x")}
	snap := make(models.Snapshot)

	res := Reconcile(acts, snap, "2024-01-01", "2024-01-04")

	if res.LastClosed != "2024-01-04" {
		t.Errorf("cursor = %s, want 2024-01-04", res.LastClosed)
	}
	for _, day := range []dayid.DayID{"2024-01-02", "2024-01-03"} {
		st, ok := res.Snapshot.Get("x", day)
		if !ok || st != models.StatusMissed {
			t.Errorf("day %s: status = %q, %v; want missed", day, st, ok)
		}
	}
	if _, ok := res.Snapshot.Get("x", "2024-01-04"); ok {
		t.Error("today must never be auto-closed")
	}
	if _, ok := res.Snapshot.Get("x", "2024-01-01"); ok {
		t.Error("lastClosed itself must not be re-closed")
	}
	if res.Backfilled != 2 {
		t.Errorf("backfilled = %d, want 2", res.Backfilled)
	}
}

func TestReconcilePreservesDoneMarks(t *testing.T) {
	acts := []models.Activity{activity("x")}
	snap := make(models.Snapshot)
	snap.Set("x", "2024-01-02", models.StatusDone)

	res := Reconcile(acts, snap, "2024-01-01", "2024-01-04")

	if st, _ := res.Snapshot.Get("x", "2024-01-02"); st != models.StatusDone {
		t.Errorf("done mark overwritten: got %q", st)
	}
	if st, _ := res.Snapshot.Get("x", "2024-01-03"); st != models.StatusMissed {
		t.Errorf("unmarked day: got %q, want missed", st)
	}
}

func TestReconcileFirstRun(t *testing.T) {
	acts := []models.Activity{activity("x")}
	snap := make(models.Snapshot)

	res := Reconcile(acts, snap, "", "2024-03-15")

	if res.LastClosed != "2024-03-15" {
		t.Errorf("cursor = %s, want 2024-03-15", res.LastClosed)
	}
	if res.Backfilled != 0 {
		t.Errorf("first run wrote %d entries, want 0", res.Backfilled)
	}
	if len(res.Snapshot) != 0 {
		t.Error("first run must leave the snapshot unchanged")
	}
}

func TestReconcileClockWentBackward(t *testing.T) {
	acts := []models.Activity{activity("x")}
	snap := make(models.Snapshot)
	snap.Set("x", "2024-01-09", models.StatusDone)

	res := Reconcile(acts, snap, "2024-01-10", "2024-01-08")

	if res.LastClosed != "2024-01-10" {
		t.Errorf("cursor rewound to %s", res.LastClosed)
	}
	if res.Backfilled != 0 {
		t.Errorf("backfilled = %d, want 0", res.Backfilled)
	}
}

func TestReconcileSameDayNoOp(t *testing.T) {
	acts := []models.Activity{activity("x")}
	res := Reconcile(acts, make(models.Snapshot), "2024-01-10", "2024-01-10")
	if res.Backfilled != 0 || res.LastClosed != "2024-01-10" {
		t.Errorf("same-day pass changed state: %+v", res)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	acts := []models.Activity{activity("x"), activity("y")}
	snap := make(models.Snapshot)
	snap.Set("x", "2024-01-02", models.StatusDone)

	first := Reconcile(acts, snap, "2024-01-01", "2024-01-05")
	second := Reconcile(acts, first.Snapshot, first.LastClosed, "2024-01-05")

	if second.Backfilled != 0 {
		t.Errorf("second pass wrote %d entries", second.Backfilled)
	}
	if second.LastClosed != first.LastClosed {
		t.Errorf("second pass moved cursor to %s", second.LastClosed)
	}
	for id, days := range first.Snapshot {
		for day, st := range days {
			if got, _ := second.Snapshot.Get(id, day); got != st {
				t.Errorf("second pass changed (%s, %s): %q -> %q", id, day, st, got)
			}
		}
	}
}

func TestReconcileNoFutureWrites(t *testing.T) {
	acts := []models.Activity{activity("x")}
	today := dayid.DayID("2024-06-10")

	res := Reconcile(acts, make(models.Snapshot), "2024-06-01", today)

	for _, days := range res.Snapshot {
		for day, st := range days {
			if !day.Before(today) && st == models.StatusMissed {
				t.Errorf("missed entry on %s, on or after today %s", day, today)
			}
		}
	}
}

func TestReconcileBackfillCompleteness(t *testing.T) {
	acts := []models.Activity{activity("a"), activity("b"), activity("c")}
	snap := make(models.Snapshot)
	snap.Set("b", "2024-02-03", models.StatusDone)

	lastClosed, today := dayid.DayID("2024-02-01"), dayid.DayID("2024-02-06")
	res := Reconcile(acts, snap, lastClosed, today)

	for d := dayid.AddDays(lastClosed, 1); d.Before(today); d = dayid.AddDays(d, 1) {
		for _, a := range acts {
			if _, ok := res.Snapshot.Get(a.ID, d); !ok {
				t.Errorf("(%s, %s) absent after reconciliation", a.ID, d)
			}
		}
	}
}

func TestReconcileEmptyActivityListAdvancesCursor(t *testing.T) {
	res := Reconcile(nil, make(models.Snapshot), "2024-01-01", "2024-01-10")
	if res.LastClosed != "2024-01-10" {
		t.Errorf("cursor = %s, want 2024-01-10", res.LastClosed)
	}
	if res.Backfilled != 0 || len(res.Snapshot) != 0 {
		t.Errorf("empty activity list wrote entries: %+v", res)
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	acts := []models.Activity{activity("x")}
	snap := make(models.Snapshot)
	snap.Set("x", "2024-01-02", models.StatusDone)

	Reconcile(acts, snap, "2024-01-01", "2024-01-05")

	if len(snap["x"]) != 1 {
		t.Errorf("input snapshot mutated: %v", snap)
	}
}

func TestReconcileBackfillsActivitiesCreatedMidRange(t *testing.T) {
	// The engine has no notion of creation date: an activity present at
	// reconciliation time is backfilled across the whole elapsed range.
	acts := []models.Activity{activity("new")}
	res := Reconcile(acts, make(models.Snapshot), "2024-01-01", "2024-01-04")
	if st, _ := res.Snapshot.Get("new", "2024-01-02"); st != models.StatusMissed {
		t.Errorf("mid-range activity not backfilled: %q", st)
	}
}
