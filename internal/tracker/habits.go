package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/streak"
)

// HabitUpdate carries the fields of a habit that may be merged by UpdateHabit.
// Nil fields are left untouched; the log and streak caches are never updated
// through this path.
type HabitUpdate struct {
	Name        *string
	Description *string
	Category    *models.HabitCategory
	Frequency   *[]time.Weekday
	Active      *bool
}

// AddHabit creates a habit starting today with an empty log and zero streaks.
// Name validation is the caller's concern.
func (a *App) AddHabit(name, description string, category models.HabitCategory, frequency []time.Weekday) (models.Habit, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		StartDate:   a.today(),
		Active:      true,
		Frequency:   frequency,
		Log:         make(map[string]models.CheckStatus),
	}
	a.Habits = append(a.Habits, habit)
	return habit, a.saveHabits()
}

// UpdateHabit merges the provided fields into an existing habit. An unknown id
// is a silent no-op.
func (a *App) UpdateHabit(id string, upd HabitUpdate) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.habitIndex(id)
	if i < 0 {
		return nil
	}
	h := &a.Habits[i]
	if upd.Name != nil {
		h.Name = *upd.Name
	}
	if upd.Description != nil {
		h.Description = *upd.Description
	}
	if upd.Category != nil {
		h.Category = *upd.Category
	}
	if upd.Frequency != nil {
		h.Frequency = *upd.Frequency
	}
	if upd.Active != nil {
		h.Active = *upd.Active
	}
	return a.saveHabits()
}

// CheckIn records a status for a habit on a day; an empty status clears the
// day's record. The XP delta is +15 when the day becomes done and -15 when it
// stops being done. The streak is recomputed against today, never against the
// edited day, and the longest streak only ever grows here. An unknown id is a
// silent no-op.
func (a *App) CheckIn(id, date string, status models.CheckStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.habitIndex(id)
	if i < 0 {
		return nil
	}
	h := &a.Habits[i]
	if h.Log == nil {
		h.Log = make(map[string]models.CheckStatus)
	}

	prev := h.Log[date]
	if status == "" {
		delete(h.Log, date)
	} else {
		h.Log[date] = status
	}

	delta := 0
	if status == models.StatusDone && prev != models.StatusDone {
		delta = constants.XPHabitDone
	} else if status != models.StatusDone && prev == models.StatusDone {
		delta = -constants.XPHabitDone
	}

	h.CurrentStreak = streak.Compute(h.Log, a.today())
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}

	if delta != 0 {
		a.applyXP(delta)
		if err := a.saveProfile(); err != nil {
			return err
		}
	}
	return a.saveHabits()
}

// DeleteHabit removes a habit entirely. XP already granted for its history is
// not revoked. An unknown id is a silent no-op.
func (a *App) DeleteHabit(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.habitIndex(id)
	if i < 0 {
		return nil
	}
	a.Habits = append(a.Habits[:i], a.Habits[i+1:]...)
	return a.saveHabits()
}

// HabitByID returns a copy of the habit and whether it exists.
func (a *App) HabitByID(id string) (models.Habit, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return a.Habits[i], true
}

func (a *App) habitIndex(id string) int {
	for i := range a.Habits {
		if a.Habits[i].ID == id {
			return i
		}
	}
	return -1
}
