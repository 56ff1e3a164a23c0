// Package app is the stateful shell around the pure reconciliation pipeline.
// It owns the single mutable ledger reference; every mutation flows through it
// and is followed by a save of the latest in-memory value.
package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitford/tick/internal/closure"
	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/logger"
	"github.com/mwhitford/tick/internal/models"
	"github.com/mwhitford/tick/internal/series"
	"github.com/mwhitford/tick/internal/storage"
)

type App struct {
	store   storage.Provider
	loc     *time.Location
	todayFn func() dayid.DayID

	ledger  models.Ledger
	loaded  bool
	saveErr error
}

func New(store storage.Provider, loc *time.Location) *App {
	if loc == nil {
		loc = time.Local
	}
	a := &App{store: store, loc: loc, ledger: models.NewLedger()}
	a.todayFn = func() dayid.DayID { return dayid.Today(a.loc) }
	return a
}

// Today returns the current calendar day in the configured timezone.
func (a *App) Today() dayid.DayID { return a.todayFn() }

// Ledger returns the current in-memory state.
func (a *App) Ledger() models.Ledger { return a.ledger }

// SaveError returns the most recent persistence failure, or nil when the last
// save succeeded. Persistence faults never stop the in-memory pipeline.
func (a *App) SaveError() error { return a.saveErr }

// Refresh re-reads persisted state and runs the day-closure engine against
// today. It is the single reconciliation trigger, invoked on cold start, on
// the terminal regaining focus, and on re-entry into the activities view. The
// re-read matters: the persisted document may have changed out-of-band, for
// example after a backup restore.
func (a *App) Refresh() error {
	led, err := a.store.LoadLedger()
	switch {
	case err == nil:
		a.ledger = led
	case errors.Is(err, storage.ErrUnavailable) && a.loaded:
		// Degrade gracefully: keep reconciling the in-memory copy.
		logger.Warn("Storage unavailable, continuing on in-memory state", "error", err)
	default:
		return err
	}

	prev := a.ledger.LastClosed
	res := closure.Reconcile(a.ledger.Activities, a.ledger.StatusByDate, prev, a.todayFn())
	if res.Changed(prev) {
		a.ledger.StatusByDate = res.Snapshot
		a.ledger.LastClosed = res.LastClosed
		logger.Debug("Reconciled elapsed days", "backfilled", res.Backfilled, "cursor", res.LastClosed)
		a.persist()
	}
	a.loaded = true
	return nil
}

// AddActivity prepends a new activity. Empty or whitespace-only names are
// silently rejected.
func (a *App) AddActivity(name string) (models.Activity, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Activity{}, false
	}

	act := models.Activity{ID: uuid.New().String(), Name: name}
	a.ledger.Activities = append([]models.Activity{act}, a.ledger.Activities...)
	a.persist()
	return act, true
}

// DeleteActivity removes the activity from the active list. Its historical
// snapshot entries are retained; past counts never shrink.
func (a *App) DeleteActivity(id string) bool {
	for i, act := range a.ledger.Activities {
		if act.ID == id {
			a.ledger.Activities = append(a.ledger.Activities[:i:i], a.ledger.Activities[i+1:]...)
			a.persist()
			return true
		}
	}
	return false
}

// Toggle flips today's cell for the activity: done becomes absent, absent
// becomes done. Any other day is read-only, and a missed cell is never touched
// by user action. It reports whether a change was made.
func (a *App) Toggle(activityID string, day dayid.DayID) bool {
	if day != a.todayFn() {
		return false
	}
	if _, ok := a.ledger.FindActivity(activityID); !ok {
		return false
	}

	st, ok := a.ledger.StatusByDate.Get(activityID, day)
	switch {
	case !ok:
		a.ledger.StatusByDate.Set(activityID, day, models.StatusDone)
	case st == models.StatusDone:
		a.ledger.StatusByDate.Remove(activityID, day)
	default:
		return false
	}

	a.persist()
	return true
}

// MonthSeries aggregates the month's completion counts for display.
func (a *App) MonthSeries(year int, month time.Month) series.Series {
	return series.BuildMonth(year, month, a.ledger.StatusByDate, a.todayFn())
}

func (a *App) persist() {
	if err := a.store.SaveLedger(a.ledger); err != nil {
		a.saveErr = err
		logger.Warn("Failed to persist ledger", "error", err)
		return
	}
	a.saveErr = nil
}
