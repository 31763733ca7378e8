package tracker

import (
	"testing"

	"github.com/streakmate/streakmate/internal/models"
)

func TestUpsertEntryAwardsXPOnce(t *testing.T) {
	a := newTestApp()

	first, err := a.UpsertEntry(testToday, "slow morning", models.MoodTired)
	if err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}
	if a.Profile.XP != 10 {
		t.Errorf("XP after first entry = %d, want 10", a.Profile.XP)
	}

	second, err := a.UpsertEntry(testToday, "better by evening", models.MoodHappy)
	if err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}

	if len(a.Journal) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(a.Journal))
	}
	if second.ID != first.ID {
		t.Error("upsert on an existing date created a new id")
	}
	if a.Journal[0].Content != "better by evening" || a.Journal[0].Mood != models.MoodHappy {
		t.Errorf("entry = %q/%q, want updated content and mood", a.Journal[0].Content, a.Journal[0].Mood)
	}
	if a.Profile.XP != 10 {
		t.Errorf("XP after upsert = %d, want 10 (no second award)", a.Profile.XP)
	}
}

func TestJournalSortedByDateDescending(t *testing.T) {
	a := newTestApp()

	a.UpsertEntry(day(2), "two days ago", models.MoodNeutral)
	a.UpsertEntry(day(0), "today", models.MoodHappy)
	a.UpsertEntry(day(1), "yesterday", models.MoodSad)

	want := []string{day(0), day(1), day(2)}
	for i, entry := range a.Journal {
		if entry.Date != want[i] {
			t.Errorf("Journal[%d].Date = %q, want %q", i, entry.Date, want[i])
		}
	}
}

func TestUpdateEntryCarriesNoXP(t *testing.T) {
	a := newTestApp()
	entry, _ := a.UpsertEntry(testToday, "draft", models.MoodNeutral)

	if err := a.UpdateEntry(entry.ID, "final", models.MoodGrateful); err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if a.Journal[0].Content != "final" || a.Journal[0].Mood != models.MoodGrateful {
		t.Error("UpdateEntry() did not apply the edit")
	}
	if a.Profile.XP != 10 {
		t.Errorf("XP = %d, want 10 (edits are free)", a.Profile.XP)
	}
}

func TestDeleteEntry(t *testing.T) {
	a := newTestApp()
	entry, _ := a.UpsertEntry(testToday, "gone soon", models.MoodNeutral)

	if err := a.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if len(a.Journal) != 0 {
		t.Errorf("journal has %d entries, want 0", len(a.Journal))
	}
	if a.Profile.XP != 10 {
		t.Errorf("XP = %d after delete, want 10 (no reconciliation)", a.Profile.XP)
	}

	if err := a.DeleteEntry("missing"); err != nil {
		t.Errorf("DeleteEntry(missing) error = %v, want nil", err)
	}
}

func TestEntryByDate(t *testing.T) {
	a := newTestApp()
	a.UpsertEntry(testToday, "found", models.MoodHappy)

	if _, ok := a.EntryByDate(testToday); !ok {
		t.Error("EntryByDate(today) not found")
	}
	if _, ok := a.EntryByDate(day(3)); ok {
		t.Error("EntryByDate(unwritten day) found an entry")
	}
}
