package models

import "time"

type HabitCategory string

const (
	CategoryHealth      HabitCategory = "Health"
	CategoryStudy       HabitCategory = "Study"
	CategoryWork        HabitCategory = "Work"
	CategoryPersonal    HabitCategory = "Personal"
	CategoryMindfulness HabitCategory = "Mindfulness"
	CategoryFinance     HabitCategory = "Finance"
	CategoryCreative    HabitCategory = "Creative"
)

// CheckStatus is the recorded outcome for a habit on a single day. A day with
// no log entry has no record at all, which is distinct from any explicit status.
type CheckStatus string

const (
	StatusDone    CheckStatus = "done"
	StatusMissed  CheckStatus = "missed"
	StatusSkipped CheckStatus = "skipped"
)

// Habit represents a recurring practice tracked day by day.
//
// CurrentStreak and LongestStreak are caches maintained on every check-in:
// CurrentStreak always equals the streak computed from Log relative to today,
// and LongestStreak >= CurrentStreak holds after every mutation.
type Habit struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	Category      HabitCategory          `json:"category"`
	StartDate     string                 `json:"start_date"` // YYYY-MM-DD format
	Active        bool                   `json:"active"`
	Frequency     []time.Weekday         `json:"frequency"` // scheduled weekdays, Sunday=0
	Log           map[string]CheckStatus `json:"log"`       // day key -> status
	CurrentStreak int                    `json:"current_streak"`
	LongestStreak int                    `json:"longest_streak"`
}
