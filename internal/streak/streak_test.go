package streak

import (
	"testing"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/utils"
)

const today = "2025-03-09"

// day returns the day key offset days before the fixed test "today".
func day(offset int) string {
	return utils.AddDays(today, -offset)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		log  map[string]models.CheckStatus
		want int
	}{
		{
			name: "empty log",
			log:  map[string]models.CheckStatus{},
			want: 0,
		},
		{
			name: "three consecutive done days",
			log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusDone,
				day(2): models.StatusDone,
			},
			want: 3,
		},
		{
			name: "skip preserves but does not add",
			log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusSkipped,
				day(2): models.StatusDone,
			},
			want: 2,
		},
		{
			name: "missed breaks the streak",
			log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusMissed,
				day(2): models.StatusDone,
			},
			want: 1,
		},
		{
			name: "gap breaks the streak",
			log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(2): models.StatusDone,
			},
			want: 1,
		},
		{
			name: "today unset still counts the run ending yesterday",
			log: map[string]models.CheckStatus{
				day(1): models.StatusDone,
				day(2): models.StatusDone,
			},
			want: 2,
		},
		{
			name: "today missed still counts the run ending yesterday",
			log: map[string]models.CheckStatus{
				day(0): models.StatusMissed,
				day(1): models.StatusDone,
			},
			want: 1,
		},
		{
			name: "today skipped only",
			log: map[string]models.CheckStatus{
				day(0): models.StatusSkipped,
			},
			want: 0,
		},
		{
			name: "leading skips before a done run",
			log: map[string]models.CheckStatus{
				day(0): models.StatusDone,
				day(1): models.StatusSkipped,
				day(2): models.StatusSkipped,
				day(3): models.StatusDone,
				day(4): models.StatusDone,
			},
			want: 3,
		},
		{
			name: "long unbroken run",
			log: func() map[string]models.CheckStatus {
				log := make(map[string]models.CheckStatus)
				for i := 0; i < 120; i++ {
					log[day(i)] = models.StatusDone
				}
				return log
			}(),
			want: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.log, today); got != tt.want {
				t.Errorf("Compute() = %d, want %d", got, tt.want)
			}
		})
	}
}
