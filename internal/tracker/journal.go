package tracker

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/models"
)

// UpsertEntry writes the journal entry for a date. If an entry already exists
// for that date its content and mood are updated in place with no XP and no
// new id; otherwise a new entry is created, the flat journal XP is awarded,
// and the collection is re-sorted by date descending.
func (a *App) UpsertEntry(date, content string, mood models.Mood) (models.DiaryEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.Journal {
		if a.Journal[i].Date == date {
			a.Journal[i].Content = content
			a.Journal[i].Mood = mood
			return a.Journal[i], a.saveJournal()
		}
	}

	entry := models.DiaryEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Content:   content,
		Mood:      mood,
		CreatedAt: time.Now(),
	}
	a.Journal = append(a.Journal, entry)
	sort.Slice(a.Journal, func(i, j int) bool {
		return a.Journal[i].Date > a.Journal[j].Date
	})

	a.applyXP(constants.XPDiaryEntry)
	if err := a.saveProfile(); err != nil {
		return entry, err
	}
	return entry, a.saveJournal()
}

// UpdateEntry edits an entry by id with no XP effect. An unknown id is a
// silent no-op.
func (a *App) UpdateEntry(id, content string, mood models.Mood) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.Journal {
		if a.Journal[i].ID == id {
			a.Journal[i].Content = content
			a.Journal[i].Mood = mood
			return a.saveJournal()
		}
	}
	return nil
}

// DeleteEntry removes an entry with no XP reconciliation. An unknown id is a
// silent no-op.
func (a *App) DeleteEntry(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.Journal {
		if a.Journal[i].ID == id {
			a.Journal = append(a.Journal[:i], a.Journal[i+1:]...)
			return a.saveJournal()
		}
	}
	return nil
}

// EntryByDate returns the entry for a date and whether one exists.
func (a *App) EntryByDate(date string) (models.DiaryEntry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.Journal {
		if a.Journal[i].Date == date {
			return a.Journal[i], true
		}
	}
	return models.DiaryEntry{}, false
}
