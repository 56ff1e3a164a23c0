package dayid

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-15", wantErr: false},
		{name: "leap day on leap year", input: "2024-02-29", wantErr: false},
		{name: "leap day on non-leap year", input: "2023-02-29", wantErr: true},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "month zero", input: "2024-00-10", wantErr: true},
		{name: "non-numeric component", input: "2024-ab-01", wantErr: true},
		{name: "missing padding", input: "2024-1-5", wantErr: true},
		{name: "time suffix", input: "2024-01-05T00:00:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "slashes", input: "2024/01/05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var malformed *MalformedDateError
				if !errors.As(err, &malformed) {
					t.Errorf("Parse(%q) error type = %T, want *MalformedDateError", tt.input, err)
				}
				return
			}
			if string(d) != tt.input {
				t.Errorf("Parse(%q) = %q", tt.input, d)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  DayID
		n    int
		want DayID
	}{
		{name: "month rollover", day: "2024-01-31", n: 1, want: "2024-02-01"},
		{name: "year rollover", day: "2023-12-31", n: 1, want: "2024-01-01"},
		{name: "leap february", day: "2024-02-28", n: 1, want: "2024-02-29"},
		{name: "non-leap february", day: "2023-02-28", n: 1, want: "2023-03-01"},
		{name: "backward across month", day: "2024-03-01", n: -1, want: "2024-02-29"},
		{name: "zero", day: "2024-06-15", n: 0, want: "2024-06-15"},
		{name: "large span", day: "2024-01-01", n: 366, want: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.day, tt.n); got != tt.want {
				t.Errorf("AddDays(%s, %d) = %s, want %s", tt.day, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b DayID
		want int
	}{
		{name: "same day", a: "2024-01-04", b: "2024-01-04", want: 0},
		{name: "forward", a: "2024-01-01", b: "2024-01-04", want: 3},
		{name: "backward", a: "2024-01-04", b: "2024-01-01", want: -3},
		{name: "across leap day", a: "2024-02-28", b: "2024-03-01", want: 2},
		{name: "spring DST boundary", a: "2024-03-09", b: "2024-03-11", want: 2},
		{name: "fall DST boundary", a: "2024-11-02", b: "2024-11-04", want: 2},
		{name: "full year", a: "2024-01-01", b: "2025-01-01", want: 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		day  DayID
		want DayID
	}{
		{name: "monday maps to itself", day: "2024-01-15", want: "2024-01-15"},
		{name: "wednesday", day: "2024-01-17", want: "2024-01-15"},
		{name: "sunday maps to prior monday", day: "2024-01-21", want: "2024-01-15"},
		{name: "week spanning month boundary", day: "2024-03-02", want: "2024-02-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.day); got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.day, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2100, time.February, 28}, // century non-leap
		{2000, time.February, 29}, // 400-year leap
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestOrdering(t *testing.T) {
	a, b := DayID("2024-01-31"), DayID("2024-02-01")
	if !a.Before(b) || !b.After(a) {
		t.Errorf("expected %s < %s", a, b)
	}
}

func TestTodayDiscardsTimeOfDay(t *testing.T) {
	d := Today(time.UTC)
	if _, err := Parse(string(d)); err != nil {
		t.Fatalf("Today produced non-canonical day: %v", err)
	}
}
