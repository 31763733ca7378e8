package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserProfile is the single process-wide user record. Level is derived from
// XP and recomputed on every XP change; XP never drops below zero.
type UserProfile struct {
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
	Theme Theme  `json:"theme"`
}
