package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/mwhitford/tick/internal/models"
	"github.com/mwhitford/tick/internal/series"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		arg       string
		year      int
		month     time.Month
		wantError bool
	}{
		{arg: "2024-03", year: 2024, month: time.March},
		{arg: "1999-12", year: 1999, month: time.December},
		{arg: "2024-1", wantError: true},
		{arg: "2024-13", wantError: true},
		{arg: "2024-03-02", wantError: true},
		{arg: "24-03", wantError: true},
		{arg: "garbage", wantError: true},
	}

	for _, tc := range tests {
		year, month, err := parseMonth(tc.arg)
		if tc.wantError {
			if err == nil {
				t.Errorf("parseMonth(%q) accepted non-canonical input", tc.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMonth(%q) = %v", tc.arg, err)
			continue
		}
		if year != tc.year || month != tc.month {
			t.Errorf("parseMonth(%q) = %d %v, want %d %v", tc.arg, year, month, tc.year, tc.month)
		}
	}
}

func TestRenderMonth(t *testing.T) {
	snap := make(models.Snapshot)
	snap.Set("a", "2024-03-02", models.StatusDone)
	snap.Set("b", "2024-03-02", models.StatusDone)

	s := series.BuildMonth(2024, time.March, snap, "2024-03-03")
	out := RenderMonth(s)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one row per calendar day.
	if len(lines) != 32 {
		t.Fatalf("line count = %d, want 32", len(lines))
	}
	if !strings.Contains(lines[0], "scale max 4") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "██ 2") {
		t.Errorf("day 2 row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "0") {
		t.Errorf("day 3 row = %q, want explicit zero", lines[3])
	}
	if !strings.Contains(lines[4], "·") {
		t.Errorf("day 4 row = %q, want gap marker for future day", lines[4])
	}
}
