package tracker

import (
	"time"

	"github.com/streakmate/streakmate/internal/migration"
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

// The demonstration dataset shown on first run, before the user has saved
// anything. Dates are generated relative to today so streaks and charts look
// alive immediately.

func seedProfile() models.UserProfile {
	return models.UserProfile{
		Name:  "Achiever",
		XP:    150,
		Level: 2,
		Theme: models.ThemeDark,
	}
}

func (a *App) seedHabits() []models.Habit {
	day := func(offset int) string {
		return utils.AddDays(a.today(), -offset)
	}

	return []models.Habit{
		{
			ID:            "h1",
			Name:          "Read Bhagavad Gita",
			Description:   "Read one chapter daily for spiritual wisdom.",
			Category:      models.CategoryStudy,
			StartDate:     day(30),
			Active:        true,
			Frequency:     migration.AllWeekdays(),
			CurrentStreak: 4,
			LongestStreak: 12,
			Log: map[string]models.CheckStatus{
				day(1):  models.StatusDone,
				day(2):  models.StatusDone,
				day(3):  models.StatusDone,
				day(4):  models.StatusDone,
				day(5):  models.StatusSkipped,
				day(6):  models.StatusDone,
				day(7):  models.StatusDone,
				day(8):  models.StatusMissed,
				day(9):  models.StatusDone,
				day(10): models.StatusDone,
			},
		},
		{
			ID:            "h2",
			Name:          "Morning Jog (5km)",
			Description:   "Run in the park to stay fit.",
			Category:      models.CategoryHealth,
			StartDate:     day(15),
			Active:        true,
			Frequency:     []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			CurrentStreak: 2,
			LongestStreak: 5,
			Log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusDone,
				day(3): models.StatusDone,
				day(5): models.StatusDone,
			},
		},
		{
			ID:          "h3",
			Name:        "Deep Work (2 Hours)",
			Description: "Focus block for coding.",
			Category:    models.CategoryWork,
			StartDate:   day(10),
			Active:      true,
			Frequency: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
			},
			CurrentStreak: 8,
			LongestStreak: 8,
			Log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusDone,
				day(2): models.StatusDone,
				day(3): models.StatusDone,
				day(4): models.StatusDone,
				day(5): models.StatusDone,
				day(6): models.StatusDone,
				day(7): models.StatusDone,
			},
		},
		{
			ID:            "h4",
			Name:          "Drink 3L Water",
			Description:   "Hydration is key.",
			Category:      models.CategoryHealth,
			StartDate:     day(5),
			Active:        true,
			Frequency:     migration.AllWeekdays(),
			CurrentStreak: 1,
			LongestStreak: 3,
			Log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(2): models.StatusMissed,
				day(3): models.StatusDone,
			},
		},
	}
}

func (a *App) seedTasks() []models.Task {
	day := func(offset int) string {
		return utils.AddDays(a.today(), -offset)
	}

	return []models.Task{
		{
			ID:          "t1",
			Title:       "Complete Project Documentation",
			Description: "Finish the README and API docs.",
			Priority:    models.PriorityHigh,
			Status:      models.TaskInProgress,
			DueDate:     day(-2),
			CreatedAt:   day(2),
		},
		{
			ID:          "t2",
			Title:       "Grocery Shopping",
			Description: "Buy fruits, milk, and eggs.",
			Priority:    models.PriorityMedium,
			Status:      models.TaskPending,
			DueDate:     day(-1),
			CreatedAt:   day(1),
		},
		{
			ID:        "t3",
			Title:     "Review PRs",
			Priority:  models.PriorityHigh,
			Status:    models.TaskCompleted,
			CreatedAt: day(3),
		},
		{
			ID:        "t4",
			Title:     "Call Parents",
			Priority:  models.PriorityLow,
			Status:    models.TaskPending,
			DueDate:   day(0),
			CreatedAt: day(5),
		},
	}
}

func (a *App) seedJournal() []models.DiaryEntry {
	day := func(offset int) string {
		return utils.AddDays(a.today(), -offset)
	}

	return []models.DiaryEntry{
		{
			ID:        "d1",
			Date:      day(0),
			Mood:      models.MoodGrateful,
			Content:   "Today was a productive day. I managed to finish the core features and had a great run in the morning. Feeling thankful for the energy.",
			CreatedAt: time.Now(),
		},
		{
			ID:        "d2",
			Date:      day(1),
			Mood:      models.MoodStressed,
			Content:   "Had a bit of a rough start with some bugs in the code, but eventually figured it out. Need to sleep earlier tonight.",
			CreatedAt: time.Now(),
		},
	}
}

func (a *App) seedBooks() []models.Book {
	day := func(offset int) string {
		return utils.AddDays(a.today(), -offset)
	}

	const sampleText = `Chapter 1: The Fundamentals

Success is the product of daily habits, not once-in-a-lifetime transformations. What matters is whether your habits are putting you on the path toward success. You should be far more concerned with your current trajectory than with your current results.

(This is sample text to demonstrate the reader feature. You can load your own .txt files.)
`

	return []models.Book{
		{
			ID:          "b1",
			Title:       "Atomic Habits",
			Author:      "James Clear",
			Topic:       "Self-Improvement",
			TotalPages:  320,
			CurrentPage: 150,
			Status:      models.BookReading,
			Cover:       "orange",
			Quotes: []models.Quote{
				{
					ID:        "q1",
					Text:      "You do not rise to the level of your goals. You fall to the level of your systems.",
					Page:      "27",
					CreatedAt: day(5),
				},
			},
			StartDate: day(10),
			Content:   sampleText,
		},
		{
			ID:          "b2",
			Title:       "Deep Work",
			Author:      "Cal Newport",
			Topic:       "Productivity",
			TotalPages:  296,
			CurrentPage: 296,
			Status:      models.BookCompleted,
			Cover:       "yellow",
			Quotes: []models.Quote{
				{
					ID:        "q2",
					Text:      "Clarity about what matters provides clarity about what does not.",
					Page:      "102",
					CreatedAt: day(20),
				},
			},
			StartDate:     day(30),
			CompletedDate: day(2),
			Content:       sampleText,
		},
	}
}
