package models

import (
	"github.com/mwhitford/tick/internal/dayid"
)

// Activity represents a tracked practice
type Activity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Status is the recorded state of an (activity, day) pair. A pair with no
// record is "absent", which is never persisted; lookups make the distinction
// explicit via the second return of Snapshot.Get.
type Status string

const (
	StatusDone   Status = "done"
	StatusMissed Status = "missed"
)

// Snapshot maps activity ID to day to status. Only done and missed are ever
// stored; missed entries are written exclusively by the closure engine.
type Snapshot map[string]map[dayid.DayID]Status

// Get returns the status for the pair and whether a record exists.
func (s Snapshot) Get(activityID string, day dayid.DayID) (Status, bool) {
	days, ok := s[activityID]
	if !ok {
		return "", false
	}
	st, ok := days[day]
	return st, ok
}

// Set records a status, allocating the inner map as needed.
func (s Snapshot) Set(activityID string, day dayid.DayID, st Status) {
	days, ok := s[activityID]
	if !ok {
		days = make(map[dayid.DayID]Status)
		s[activityID] = days
	}
	days[day] = st
}

// Remove deletes the record for the pair, if any.
func (s Snapshot) Remove(activityID string, day dayid.DayID) {
	if days, ok := s[activityID]; ok {
		delete(days, day)
		if len(days) == 0 {
			delete(s, activityID)
		}
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for id, days := range s {
		cp := make(map[dayid.DayID]Status, len(days))
		for d, st := range days {
			cp[d] = st
		}
		out[id] = cp
	}
	return out
}
