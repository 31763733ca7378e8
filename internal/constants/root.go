package constants

const (
	AppName            = "streakmate"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/streakmate/streakmate.db"
	Version            = "v0.3.0"

	// Collection names used by the persistence adapter. One serialized
	// record set is stored per collection.
	CollectionProfile = "profile"
	CollectionHabits  = "habits"
	CollectionTasks   = "tasks"
	CollectionJournal = "journal"
	CollectionBooks   = "books"

	// XP awards
	XPHabitDone     = 15
	XPTaskLow       = 20
	XPTaskMedium    = 35
	XPTaskHigh      = 50
	XPBookCompleted = 100
	XPDiaryEntry    = 10
)
