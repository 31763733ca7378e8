package models

import "time"

type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodNeutral  Mood = "Neutral"
	MoodSad      Mood = "Sad"
	MoodExcited  Mood = "Excited"
	MoodStressed Mood = "Stressed"
	MoodGrateful Mood = "Grateful"
	MoodTired    Mood = "Tired"
)

// DiaryEntry is a single day's journal record. At most one entry exists per
// date; writing to an existing date updates it in place.
type DiaryEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}
