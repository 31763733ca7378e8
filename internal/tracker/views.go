package tracker

import (
	"time"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

// DayCount is one day of the weekly consistency series.
type DayCount struct {
	Day     string
	Weekday time.Weekday
	Count   int
}

// HeatmapCell is one day of the rolling activity heatmap.
type HeatmapCell struct {
	Day   string
	Score int
}

// WeeklySeries returns the trailing seven days ending today, oldest first,
// with the number of habits marked done on each day.
func (a *App) WeeklySeries() []DayCount {
	a.mu.Lock()
	defer a.mu.Unlock()

	today := a.today()
	series := make([]DayCount, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := utils.AddDays(today, -offset)
		series = append(series, DayCount{
			Day:     day,
			Weekday: utils.WeekdayOf(day),
			Count:   a.doneCount(day),
		})
	}
	return series
}

// Heatmap returns the trailing thirty days ending today, oldest first, with
// each day's completion score (habits marked done that day).
func (a *App) Heatmap() []HeatmapCell {
	a.mu.Lock()
	defer a.mu.Unlock()

	today := a.today()
	cells := make([]HeatmapCell, 0, 30)
	for offset := 29; offset >= 0; offset-- {
		day := utils.AddDays(today, -offset)
		cells = append(cells, HeatmapCell{Day: day, Score: a.doneCount(day)})
	}
	return cells
}

// doneCount counts habits with a done record for the day. Callers hold a.mu.
func (a *App) doneCount(day string) int {
	count := 0
	for i := range a.Habits {
		if a.Habits[i].Log[day] == models.StatusDone {
			count++
		}
	}
	return count
}
