// Package streak computes consecutive-day streaks from a habit's check log.
package streak

import (
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

// Compute returns the length of the streak ending at or adjacent to today.
//
// Today counts one if it is done. The walk then steps backward one day at a
// time: a done day extends the streak, a skipped day preserves it without
// counting, and anything else (missed or no record) ends it. The walk is
// bounded only by the log history, never by a fixed window.
func Compute(log map[string]models.CheckStatus, today string) int {
	streak := 0
	if log[today] == models.StatusDone {
		streak++
	}

	day := utils.AddDays(today, -1)
	for {
		switch log[day] {
		case models.StatusDone:
			streak++
		case models.StatusSkipped:
			// Skip preserves the streak without adding to it.
		default:
			return streak
		}
		day = utils.AddDays(day, -1)
	}
}
