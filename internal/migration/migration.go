// Package migration decodes persisted collections into their current shape.
// Legacy records are upgraded once at load time so default-coalescing never
// leaks into business logic.
package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streakmate/streakmate/internal/models"
)

// taskRecord tolerates the legacy task shape, which carried a completed
// boolean instead of a status field.
type taskRecord struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status,omitempty"`
	DueDate     string              `json:"due_date,omitempty"`
	CreatedAt   string              `json:"created_at"`
	Completed   *bool               `json:"completed,omitempty"`
}

// habitRecord tolerates habits persisted before the frequency field existed.
type habitRecord struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Description   string                        `json:"description,omitempty"`
	Category      models.HabitCategory          `json:"category"`
	StartDate     string                        `json:"start_date"`
	Active        bool                          `json:"active"`
	Frequency     []time.Weekday                `json:"frequency,omitempty"`
	Log           map[string]models.CheckStatus `json:"log"`
	CurrentStreak int                           `json:"current_streak"`
	LongestStreak int                           `json:"longest_streak"`
}

// Tasks decodes a stored task collection. A record without a status field is
// interpreted as completed if its legacy completed flag was true, else pending.
func Tasks(data []byte) ([]models.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		status := r.Status
		if status == "" {
			status = models.TaskPending
			if r.Completed != nil && *r.Completed {
				status = models.TaskCompleted
			}
		}
		tasks = append(tasks, models.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
			Status:      status,
			DueDate:     r.DueDate,
			CreatedAt:   r.CreatedAt,
		})
	}
	return tasks, nil
}

// Habits decodes a stored habit collection. A habit without a frequency
// defaults to all seven days; a nil log becomes an empty one.
func Habits(data []byte) ([]models.Habit, error) {
	var records []habitRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse habits: %w", err)
	}

	habits := make([]models.Habit, 0, len(records))
	for _, r := range records {
		freq := r.Frequency
		if len(freq) == 0 {
			freq = AllWeekdays()
		}
		log := r.Log
		if log == nil {
			log = make(map[string]models.CheckStatus)
		}
		habits = append(habits, models.Habit{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			Category:      r.Category,
			StartDate:     r.StartDate,
			Active:        r.Active,
			Frequency:     freq,
			Log:           log,
			CurrentStreak: r.CurrentStreak,
			LongestStreak: r.LongestStreak,
		})
	}
	return habits, nil
}

// Journal decodes a stored journal collection.
func Journal(data []byte) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse journal: %w", err)
	}
	return entries, nil
}

// Books decodes a stored book collection, ensuring quote slices are non-nil.
func Books(data []byte) ([]models.Book, error) {
	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse books: %w", err)
	}
	for i := range books {
		if books[i].Quotes == nil {
			books[i].Quotes = []models.Quote{}
		}
	}
	return books, nil
}

// Profile decodes the stored user profile.
func Profile(data []byte) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return profile, nil
}

// AllWeekdays returns the full weekly frequency (Sunday through Saturday).
func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
