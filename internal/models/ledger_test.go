package models

import (
	"errors"
	"testing"

	"github.com/mwhitford/tick/internal/dayid"
)

func TestSnapshotGetDistinguishesAbsent(t *testing.T) {
	snap := make(Snapshot)
	snap.Set("a", "2024-01-02", StatusDone)

	if st, ok := snap.Get("a", "2024-01-02"); !ok || st != StatusDone {
		t.Errorf("Get = %q, %v", st, ok)
	}
	if _, ok := snap.Get("a", "2024-01-03"); ok {
		t.Error("absent day reported as present")
	}
	if _, ok := snap.Get("b", "2024-01-02"); ok {
		t.Error("absent activity reported as present")
	}
}

func TestSnapshotRemoveCleansEmptyMaps(t *testing.T) {
	snap := make(Snapshot)
	snap.Set("a", "2024-01-02", StatusDone)
	snap.Remove("a", "2024-01-02")

	if len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	snap := make(Snapshot)
	snap.Set("a", "2024-01-02", StatusDone)

	cp := snap.Clone()
	cp.Set("a", "2024-01-03", StatusMissed)

	if _, ok := snap.Get("a", "2024-01-03"); ok {
		t.Error("mutating the clone affected the original")
	}
}

func TestLedgerValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() Ledger
		wantErr bool
	}{
		{
			name: "valid ledger",
			build: func() Ledger {
				l := NewLedger()
				l.LastClosed = "2024-01-04"
				l.StatusByDate.Set("a", "2024-01-02", StatusDone)
				return l
			},
		},
		{
			name:  "empty cursor is first-run, not corrupt",
			build: NewLedger,
		},
		{
			name: "malformed cursor",
			build: func() Ledger {
				l := NewLedger()
				l.LastClosed = "2024-1-4"
				return l
			},
			wantErr: true,
		},
		{
			name: "malformed entry day",
			build: func() Ledger {
				l := NewLedger()
				l.StatusByDate.Set("a", "not-a-day", StatusDone)
				return l
			},
			wantErr: true,
		},
		{
			name: "unknown status",
			build: func() Ledger {
				l := NewLedger()
				l.StatusByDate.Set("a", "2024-01-02", Status("skipped"))
				return l
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLedgerValidateErrorType(t *testing.T) {
	l := NewLedger()
	l.LastClosed = "2024-13-01"

	var malformed *dayid.MalformedDateError
	if !errors.As(l.Validate(), &malformed) {
		t.Error("malformed cursor should unwrap to *dayid.MalformedDateError")
	}
}

func TestOrphanedIDs(t *testing.T) {
	l := NewLedger()
	l.Activities = []Activity{{ID: "live", Name: "live"}}
	l.StatusByDate.Set("live", "2024-01-02", StatusDone)
	l.StatusByDate.Set("gone", "2024-01-02", StatusDone)

	orphans := l.OrphanedIDs()
	if len(orphans) != 1 || orphans[0] != "gone" {
		t.Errorf("orphans = %v", orphans)
	}
}
