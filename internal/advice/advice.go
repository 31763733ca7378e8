// Package advice turns tracked history into coaching: a daily motivation line
// for the dashboard and per-habit suggestions derived from the recent log.
package advice

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

// SuggestionType represents the type of habit adjustment suggested
type SuggestionType string

const (
	SuggestionReduceFrequency SuggestionType = "reduce_frequency"
	SuggestionRestartStreak   SuggestionType = "restart_streak"
	SuggestionKeepGoing       SuggestionType = "keep_going"
	SuggestionScheduleTime    SuggestionType = "schedule_time"
)

// Suggestion represents a suggested adjustment for a habit
type Suggestion struct {
	HabitID   string         `json:"habit_id"`
	HabitName string         `json:"habit_name"`
	Type      SuggestionType `json:"type"`
	Reason    string         `json:"reason"`
}

// Provider produces coaching text. Implementations may call out to remote
// services, so every method takes a context.
type Provider interface {
	Motivation(ctx context.Context, name string, habits []models.Habit, tasks []models.Task) (string, error)
	HabitAdvice(ctx context.Context, habit models.Habit, today string) ([]Suggestion, error)
}

var motivationLines = []string{
	"Small steps every day add up to big change, %s.",
	"Discipline is choosing what you want most over what you want now. Keep at it, %s.",
	"You don't have to be perfect today, %s. You just have to show up.",
	"Streaks are built one honest check-in at a time, %s.",
	"Progress over perfection, %s. Yesterday is logged; today is open.",
}

// Static is a Provider that works entirely from local state.
type Static struct {
	rand *rand.Rand
}

// NewStatic creates a Static advisor. A nil source uses the shared global one.
func NewStatic(src rand.Source) *Static {
	if src == nil {
		return &Static{}
	}
	return &Static{rand: rand.New(src)}
}

func (s *Static) intn(n int) int {
	if s.rand != nil {
		return s.rand.Intn(n)
	}
	return rand.Intn(n)
}

// Motivation returns a short encouragement line. When everything is already
// done for the day it celebrates instead of nudging.
func (s *Static) Motivation(ctx context.Context, name string, habits []models.Habit, tasks []models.Task) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		name = "friend"
	}

	pendingTasks := 0
	for _, t := range tasks {
		if t.Status != models.TaskCompleted {
			pendingTasks++
		}
	}
	if len(habits) > 0 && pendingTasks == 0 {
		allDone := true
		for _, h := range habits {
			if h.Active && h.Log[utils.Today()] != models.StatusDone {
				allDone = false
				break
			}
		}
		if allDone {
			return fmt.Sprintf("Everything is done for today, %s. Enjoy the rest of your day.", name), nil
		}
	}

	return fmt.Sprintf(motivationLines[s.intn(len(motivationLines))], name), nil
}

// HabitAdvice inspects the trailing two weeks of a habit's log and suggests
// adjustments. A habit with no history gets a scheduling nudge.
func (s *Static) HabitAdvice(ctx context.Context, habit models.Habit, today string) ([]Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done, missed := 0, 0
	for offset := 0; offset < 14; offset++ {
		switch habit.Log[utils.AddDays(today, -offset)] {
		case models.StatusDone:
			done++
		case models.StatusMissed:
			missed++
		}
	}

	recorded := done + missed
	if recorded == 0 {
		return []Suggestion{{
			HabitID:   habit.ID,
			HabitName: habit.Name,
			Type:      SuggestionScheduleTime,
			Reason:    "No check-ins in the last two weeks. Pick a fixed time of day and anchor the habit to it.",
		}}, nil
	}

	var suggestions []Suggestion

	missedPercent := float64(missed) / float64(recorded) * 100
	if missedPercent > 50 {
		suggestions = append(suggestions, Suggestion{
			HabitID:   habit.ID,
			HabitName: habit.Name,
			Type:      SuggestionReduceFrequency,
			Reason: fmt.Sprintf("Missed %d of %d recorded days recently. Fewer scheduled days you can actually hit beat a schedule you keep breaking.",
				missed, recorded),
		})
	}

	if habit.CurrentStreak == 0 && habit.LongestStreak >= 3 {
		suggestions = append(suggestions, Suggestion{
			HabitID:   habit.ID,
			HabitName: habit.Name,
			Type:      SuggestionRestartStreak,
			Reason: fmt.Sprintf("You've held a %d-day streak before. Mark today done and start the next one.",
				habit.LongestStreak),
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			HabitID:   habit.ID,
			HabitName: habit.Name,
			Type:      SuggestionKeepGoing,
			Reason:    fmt.Sprintf("%d done in the last two weeks with a current streak of %d. Keep going.", done, habit.CurrentStreak),
		})
	}

	return suggestions, nil
}
