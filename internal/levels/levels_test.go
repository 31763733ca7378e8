package levels

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{150, 2},
		{199, 2},
		{200, 3},
		{449, 3},
		{450, 4},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelBoundsConsistency(t *testing.T) {
	for level := 1; level <= 50; level++ {
		if got := Level(Floor(level)); got != level {
			t.Errorf("Level(Floor(%d)) = %d, want %d", level, got, level)
		}
		if got := Level(Ceil(level) - 1); got != level {
			t.Errorf("Level(Ceil(%d)-1) = %d, want %d", level, got, level)
		}
		if Floor(level+1) != Ceil(level) {
			t.Errorf("Floor(%d) = %d, want Ceil(%d) = %d", level+1, Floor(level+1), level, Ceil(level))
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want float64
	}{
		{
			name: "start of level",
			xp:   50,
			want: 0,
		},
		{
			name: "midway through level 1",
			xp:   25,
			want: 0.5,
		},
		{
			name: "negative xp clamps to zero",
			xp:   -5,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.xp); got != tt.want {
				t.Errorf("Progress(%d) = %v, want %v", tt.xp, got, tt.want)
			}
		})
	}
}

func TestProgressRange(t *testing.T) {
	for xp := 0; xp <= 2000; xp += 7 {
		p := Progress(xp)
		if p < 0 || p > 1 {
			t.Fatalf("Progress(%d) = %v, out of [0,1]", xp, p)
		}
	}
}
