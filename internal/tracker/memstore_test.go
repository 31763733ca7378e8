package tracker

import (
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/storage"
	"github.com/streakmate/streakmate/internal/utils"
)

// testToday pins the tracker clock so streak and view windows are stable.
const testToday = "2025-03-09"

// memStore is an in-memory persistence adapter for tests.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Init() error { return nil }

func (m *memStore) Load(collection string) ([]byte, error) {
	data, ok := m.data[collection]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Save(collection string, data []byte) error {
	m.data[collection] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Close() error       { return nil }
func (m *memStore) ConfigPath() string { return "memory" }

// newTestApp returns an app with a pinned clock, a fresh profile and empty
// collections, bypassing the first-run seed.
func newTestApp() *App {
	a := New(newMemStore())
	a.today = func() string { return testToday }
	a.Profile = models.UserProfile{Name: "Tester", XP: 0, Level: 1, Theme: models.ThemeDark}
	return a
}

// day returns the day key offset days before the pinned test "today".
func day(offset int) string {
	return utils.AddDays(testToday, -offset)
}
