package utils

import (
	"time"

	"github.com/streakmate/streakmate/internal/constants"
)

// Today returns the canonical day key (YYYY-MM-DD) for the current date in the
// local timezone.
func Today() string {
	return DayKey(time.Now())
}

// DayKey normalizes a time to its canonical day key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a canonical day key back into a time at midnight local time.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// AddDays returns the day key n days after day (n may be negative). The input
// must be a canonical day key; malformed input is returned unchanged.
func AddDays(day string, n int) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// WeekdayOf returns the weekday (Sunday=0) of a canonical day key.
func WeekdayOf(day string) time.Weekday {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// ValidDay reports whether day is a well-formed canonical day key.
func ValidDay(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}
