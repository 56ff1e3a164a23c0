// Package dayid implements the calendar-day codec: conversion between
// wall-clock instants and canonical YYYY-MM-DD day identifiers, plus day
// arithmetic. All arithmetic normalizes to midnight UTC first, so daylight
// saving transitions can never shift a day count.
package dayid

import (
	"fmt"
	"time"

	"github.com/mwhitford/tick/internal/constants"
)

// DayID is a timezone-free local calendar date in canonical YYYY-MM-DD form.
// The fixed-width form makes lexical order equal to calendar order.
type DayID string

// MalformedDateError reports a day-identifier string that is not a valid
// YYYY-MM-DD calendar date. It typically indicates corrupt persisted data.
type MalformedDateError struct {
	Input string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed day identifier %q (expected YYYY-MM-DD)", e.Input)
}

// Parse validates s strictly and returns it as a DayID. Each component must be
// numeric and in range; out-of-range days such as 2023-02-29 are rejected.
func Parse(s string) (DayID, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return "", &MalformedDateError{Input: s}
	}
	// time.Parse tolerates some non-canonical inputs; require an exact
	// round trip so only the canonical form is accepted.
	if t.Format(constants.DateFormat) != s {
		return "", &MalformedDateError{Input: s}
	}
	return DayID(s), nil
}

// FromTime returns the calendar day of t in t's own location, discarding
// time-of-day.
func FromTime(t time.Time) DayID {
	return DayID(t.Format(constants.DateFormat))
}

// FromParts builds a DayID from calendar components. Out-of-range parts are
// normalized the way time.Date normalizes them.
func FromParts(year int, month time.Month, day int) DayID {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today derives the current calendar day from the host clock in loc.
func Today(loc *time.Location) DayID {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

func (d DayID) String() string { return string(d) }

// Time returns the day at midnight UTC. The UTC anchor is what keeps day
// arithmetic exact across DST boundaries.
func (d DayID) Time() time.Time {
	t, err := time.Parse(constants.DateFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether d is strictly earlier than other.
func (d DayID) Before(other DayID) bool { return d < other }

// After reports whether d is strictly later than other.
func (d DayID) After(other DayID) bool { return d > other }

// AddDays returns the day n calendar days after d (before, for negative n),
// with correct month and year rollover.
func AddDays(d DayID, n int) DayID {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysBetween returns the signed count of calendar days from a to b, positive
// when b is later. Both days are anchored at midnight UTC before differencing;
// dividing a raw wall-clock delta by 24h would be off by one across DST
// transitions.
func DaysBetween(a, b DayID) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// StartOfWeek returns the Monday on or before d.
func StartOfWeek(d DayID) DayID {
	// ISO numbering: Mon=1 .. Sun=7.
	wd := int(d.Time().Weekday())
	if wd == 0 {
		wd = 7
	}
	return AddDays(d, -(wd - 1))
}

// DaysInMonth returns the number of days in the given month (28-31).
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
