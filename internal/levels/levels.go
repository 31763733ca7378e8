// Package levels maps accumulated experience points to levels and back.
package levels

import "math"

// Level returns the level for an XP total. Levels start at 1 and follow
// floor(sqrt(xp/50)) + 1, so level boundaries sit at 0, 50, 200, 450, ...
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Sqrt(float64(xp)/50)) + 1
}

// Floor returns the XP total at which the given level begins.
func Floor(level int) int {
	return (level - 1) * (level - 1) * 50
}

// Ceil returns the XP total at which the next level begins.
func Ceil(level int) int {
	return level * level * 50
}

// Progress returns the fraction of the current level completed, clamped to
// [0, 1], for progress-bar display.
func Progress(xp int) float64 {
	level := Level(xp)
	span := Ceil(level) - Floor(level)
	p := float64(xp-Floor(level)) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
