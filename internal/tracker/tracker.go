// Package tracker holds the application state and the engines that mutate it:
// the habit check-in engine, the task, journal and library stores, and the
// reward ledger that turns mutations into experience points.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/levels"
	"github.com/streakmate/streakmate/internal/logger"
	"github.com/streakmate/streakmate/internal/migration"
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/storage"
	"github.com/streakmate/streakmate/internal/utils"
)

// App is the explicit application-state handle. All collections live here and
// every mutation goes through its methods; there is no ambient shared state.
//
// Mutations are serialized by a single mutex so XP application is always an
// atomic read-modify-write. Each mutation persists the collections it touched
// before returning.
type App struct {
	mu    sync.Mutex
	store storage.Provider
	today func() string // injectable clock for tests

	Profile models.UserProfile
	Habits  []models.Habit
	Tasks   []models.Task
	Journal []models.DiaryEntry
	Books   []models.Book
}

func New(store storage.Provider) *App {
	return &App{
		store: store,
		today: utils.Today,
	}
}

// Today returns the canonical day key the tracker considers current.
func (a *App) Today() string {
	return a.today()
}

// Load reads every collection from the persistence adapter. Absent or empty
// collections are seeded with the demonstration dataset; malformed data is
// surfaced as an error rather than silently replaced.
func (a *App) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := a.store.Load(constants.CollectionProfile)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.Profile = seedProfile()
		if err := a.saveProfile(); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if a.Profile, err = migration.Profile(data); err != nil {
			return err
		}
	}

	if a.Habits, err = loadCollection(a.store, constants.CollectionHabits, migration.Habits, a.seedHabits); err != nil {
		return err
	}
	if a.Tasks, err = loadCollection(a.store, constants.CollectionTasks, migration.Tasks, a.seedTasks); err != nil {
		return err
	}
	if a.Journal, err = loadCollection(a.store, constants.CollectionJournal, migration.Journal, a.seedJournal); err != nil {
		return err
	}
	if a.Books, err = loadCollection(a.store, constants.CollectionBooks, migration.Books, a.seedBooks); err != nil {
		return err
	}

	return a.saveAll()
}

// loadCollection loads one record set, falling back to its seed when the
// collection is absent or has been persisted empty.
func loadCollection[T any](store storage.Provider, name string, decode func([]byte) ([]T, error), seed func() []T) ([]T, error) {
	data, err := store.Load(name)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Info("Seeding collection", "collection", name)
		return seed(), nil
	}
	if err != nil {
		return nil, err
	}
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", name, err)
	}
	if len(records) == 0 {
		logger.Info("Seeding empty collection", "collection", name)
		return seed(), nil
	}
	return records, nil
}

// applyXP applies a signed XP delta to the profile, flooring total XP at zero
// and recomputing the level unconditionally. Callers must hold a.mu and must
// call it exactly once per XP-bearing event.
func (a *App) applyXP(delta int) {
	xp := a.Profile.XP + delta
	if xp < 0 {
		xp = 0
	}
	a.Profile.XP = xp
	a.Profile.Level = levels.Level(xp)
	logger.Debug("Applied XP delta", "delta", delta, "xp", xp, "level", a.Profile.Level)
}

// SetName updates the profile display name.
func (a *App) SetName(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Profile.Name = name
	return a.saveProfile()
}

// ToggleTheme flips the profile theme preference.
func (a *App) ToggleTheme() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Profile.Theme == models.ThemeLight {
		a.Profile.Theme = models.ThemeDark
	} else {
		a.Profile.Theme = models.ThemeLight
	}
	return a.saveProfile()
}

func (a *App) saveAll() error {
	for _, save := range []func() error{
		a.saveProfile, a.saveHabits, a.saveTasks, a.saveJournal, a.saveBooks,
	} {
		if err := save(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) saveProfile() error {
	return saveCollection(a.store, constants.CollectionProfile, a.Profile)
}

func (a *App) saveHabits() error {
	return saveCollection(a.store, constants.CollectionHabits, a.Habits)
}

func (a *App) saveTasks() error {
	return saveCollection(a.store, constants.CollectionTasks, a.Tasks)
}

func (a *App) saveJournal() error {
	return saveCollection(a.store, constants.CollectionJournal, a.Journal)
}

func (a *App) saveBooks() error {
	return saveCollection(a.store, constants.CollectionBooks, a.Books)
}

func saveCollection(store storage.Provider, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}
	return store.Save(name, data)
}
