// Package validation checks user input at the presentation boundary. The
// tracker itself trusts its callers, so every CLI and TUI entry point runs
// these checks before mutating state.
package validation

import (
	"fmt"
	"strings"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

// HabitName checks a habit display name.
func HabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	return nil
}

// Category checks that a habit category is one of the known values.
func Category(c models.HabitCategory) error {
	switch c {
	case models.CategoryHealth, models.CategoryStudy, models.CategoryWork,
		models.CategoryPersonal, models.CategoryMindfulness,
		models.CategoryFinance, models.CategoryCreative:
		return nil
	}
	return fmt.Errorf("unknown category %q", c)
}

// CheckStatus checks a habit log status. The empty string is valid and means
// "clear the day".
func CheckStatus(s models.CheckStatus) error {
	switch s {
	case "", models.StatusDone, models.StatusMissed, models.StatusSkipped:
		return nil
	}
	return fmt.Errorf("unknown check status %q", s)
}

// TaskTitle checks a task title.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title must not be empty")
	}
	return nil
}

// Priority checks that a task priority is one of the known tiers.
func Priority(p models.TaskPriority) error {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	}
	return fmt.Errorf("unknown priority %q", p)
}

// TaskStatus checks that a task status is one of the known values.
func TaskStatus(s models.TaskStatus) error {
	switch s {
	case models.TaskPending, models.TaskInProgress, models.TaskCompleted:
		return nil
	}
	return fmt.Errorf("unknown task status %q", s)
}

// Mood checks that a journal mood is one of the known values.
func Mood(m models.Mood) error {
	switch m {
	case models.MoodHappy, models.MoodNeutral, models.MoodSad, models.MoodExcited,
		models.MoodStressed, models.MoodGrateful, models.MoodTired:
		return nil
	}
	return fmt.Errorf("unknown mood %q", m)
}

// BookStatus checks that a book status is one of the known values.
func BookStatus(s models.BookStatus) error {
	switch s {
	case models.BookToRead, models.BookReading, models.BookCompleted:
		return nil
	}
	return fmt.Errorf("unknown book status %q", s)
}

// BookTitle checks a book title.
func BookTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("book title must not be empty")
	}
	return nil
}

// TotalPages checks a book page count.
func TotalPages(pages int) error {
	if pages <= 0 {
		return fmt.Errorf("total pages must be positive, got %d", pages)
	}
	return nil
}

// Date checks a YYYY-MM-DD day key.
func Date(day string) error {
	if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", day)
	}
	return nil
}
