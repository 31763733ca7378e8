package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tm := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.Local)
	if got := DayKey(tm); got != "2025-03-09" {
		t.Errorf("DayKey() = %q, want %q", got, "2025-03-09")
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{
			name: "forward one day",
			day:  "2025-03-09",
			n:    1,
			want: "2025-03-10",
		},
		{
			name: "backward one day",
			day:  "2025-03-01",
			n:    -1,
			want: "2025-02-28",
		},
		{
			name: "across a year boundary",
			day:  "2025-01-01",
			n:    -1,
			want: "2024-12-31",
		},
		{
			name: "leap day",
			day:  "2024-02-28",
			n:    1,
			want: "2024-02-29",
		},
		{
			name: "zero offset",
			day:  "2025-03-09",
			n:    0,
			want: "2025-03-09",
		},
		{
			name: "malformed input returned unchanged",
			day:  "not-a-date",
			n:    3,
			want: "not-a-date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.day, tt.n); got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		day  string
		want time.Weekday
	}{
		{"2025-03-09", time.Sunday},
		{"2025-03-10", time.Monday},
		{"2025-03-15", time.Saturday},
	}

	for _, tt := range tests {
		if got := WeekdayOf(tt.day); got != tt.want {
			t.Errorf("WeekdayOf(%q) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestValidDay(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2025-03-09", true},
		{"2025-3-9", false},
		{"03-09-2025", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDay(tt.day); got != tt.want {
			t.Errorf("ValidDay(%q) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestTodayIsCanonical(t *testing.T) {
	if !ValidDay(Today()) {
		t.Errorf("Today() = %q is not a canonical day key", Today())
	}
}
