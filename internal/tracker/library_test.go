package tracker

import (
	"testing"

	"github.com/streakmate/streakmate/internal/models"
)

func TestSetBookProgressCompletionAwardsOnce(t *testing.T) {
	a := newTestApp()
	book, _ := a.AddBook("Deep Work", "Cal Newport", "Productivity", 296, "yellow", "")

	if err := a.SetBookProgress(book.ID, 296); err != nil {
		t.Fatalf("SetBookProgress() error = %v", err)
	}
	got, _ := a.BookByID(book.ID)
	if got.Status != models.BookCompleted {
		t.Errorf("Status = %q, want Completed", got.Status)
	}
	if got.CompletedDate != testToday {
		t.Errorf("CompletedDate = %q, want %q", got.CompletedDate, testToday)
	}
	if a.Profile.XP != 100 {
		t.Errorf("XP = %d, want 100", a.Profile.XP)
	}

	// Saving the same page again is a no-op XP-wise.
	if err := a.SetBookProgress(book.ID, 296); err != nil {
		t.Fatalf("SetBookProgress() error = %v", err)
	}
	if a.Profile.XP != 100 {
		t.Errorf("XP after re-save = %d, want 100", a.Profile.XP)
	}

	// Sliding back below the max and up again never re-awards.
	a.SetBookProgress(book.ID, 100)
	a.SetBookProgress(book.ID, 296)
	if a.Profile.XP != 100 {
		t.Errorf("XP after slider round-trip = %d, want 100", a.Profile.XP)
	}
	got, _ = a.BookByID(book.ID)
	if got.Status != models.BookCompleted {
		t.Errorf("Status = %q, want Completed to stick", got.Status)
	}
}

func TestSetBookProgressClamps(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantPage int
	}{
		{
			name:     "negative clamps to zero",
			page:     -10,
			wantPage: 0,
		},
		{
			name:     "beyond total clamps to total",
			page:     9999,
			wantPage: 296,
		},
		{
			name:     "in range is kept",
			page:     150,
			wantPage: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp()
			book, _ := a.AddBook("Deep Work", "Cal Newport", "", 296, "", "")
			if err := a.SetBookProgress(book.ID, tt.page); err != nil {
				t.Fatalf("SetBookProgress() error = %v", err)
			}
			got, _ := a.BookByID(book.ID)
			if got.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tt.wantPage)
			}
		})
	}
}

func TestSetBookProgressStartsReading(t *testing.T) {
	a := newTestApp()
	book, _ := a.AddBook("Deep Work", "Cal Newport", "", 296, "", "")

	if err := a.SetBookProgress(book.ID, 10); err != nil {
		t.Fatalf("SetBookProgress() error = %v", err)
	}
	got, _ := a.BookByID(book.ID)
	if got.Status != models.BookReading {
		t.Errorf("Status = %q, want Reading", got.Status)
	}
	if a.Profile.XP != 0 {
		t.Errorf("XP = %d, want 0", a.Profile.XP)
	}

	// Further progress within the book leaves the status alone.
	a.SetBookProgress(book.ID, 20)
	got, _ = a.BookByID(book.ID)
	if got.Status != models.BookReading {
		t.Errorf("Status = %q, want Reading", got.Status)
	}
}

func TestSetBookStatusIsDirectOverride(t *testing.T) {
	a := newTestApp()
	book, _ := a.AddBook("Deep Work", "Cal Newport", "", 296, "", "")

	if err := a.SetBookStatus(book.ID, models.BookCompleted); err != nil {
		t.Fatalf("SetBookStatus() error = %v", err)
	}
	got, _ := a.BookByID(book.ID)
	if got.Status != models.BookCompleted {
		t.Errorf("Status = %q, want Completed", got.Status)
	}
	if a.Profile.XP != 0 {
		t.Errorf("XP = %d, want 0 (override carries no XP)", a.Profile.XP)
	}
}

func TestQuotes(t *testing.T) {
	a := newTestApp()
	book, _ := a.AddBook("Atomic Habits", "James Clear", "", 320, "", "")

	quote, err := a.AddQuote(book.ID, "You fall to the level of your systems.", "27")
	if err != nil {
		t.Fatalf("AddQuote() error = %v", err)
	}
	if quote.ID == "" {
		t.Fatal("AddQuote() assigned no id")
	}
	got, _ := a.BookByID(book.ID)
	if len(got.Quotes) != 1 {
		t.Fatalf("book has %d quotes, want 1", len(got.Quotes))
	}

	if err := a.DeleteQuote(book.ID, quote.ID); err != nil {
		t.Fatalf("DeleteQuote() error = %v", err)
	}
	got, _ = a.BookByID(book.ID)
	if len(got.Quotes) != 0 {
		t.Errorf("book has %d quotes after delete, want 0", len(got.Quotes))
	}

	if err := a.DeleteQuote(book.ID, "missing"); err != nil {
		t.Errorf("DeleteQuote(missing) error = %v, want nil", err)
	}
}

func TestDeleteBook(t *testing.T) {
	a := newTestApp()
	book, _ := a.AddBook("Atomic Habits", "James Clear", "", 320, "", "")
	a.AddQuote(book.ID, "quoted", "")
	a.SetBookProgress(book.ID, 320)

	if err := a.DeleteBook(book.ID); err != nil {
		t.Fatalf("DeleteBook() error = %v", err)
	}
	if len(a.Books) != 0 {
		t.Errorf("library has %d books, want 0", len(a.Books))
	}
	if a.Profile.XP != 100 {
		t.Errorf("XP = %d after delete, want 100 (no reconciliation)", a.Profile.XP)
	}
}

func TestNewBooksGoToFront(t *testing.T) {
	a := newTestApp()
	a.AddBook("First", "A", "", 100, "", "")
	a.AddBook("Second", "B", "", 100, "", "")

	if a.Books[0].Title != "Second" {
		t.Errorf("Books[0] = %q, want the newest book first", a.Books[0].Title)
	}
}

func TestBookOperationsOnUnknownIDAreNoops(t *testing.T) {
	a := newTestApp()

	if err := a.SetBookProgress("missing", 10); err != nil {
		t.Errorf("SetBookProgress(missing) error = %v, want nil", err)
	}
	if err := a.SetBookStatus("missing", models.BookReading); err != nil {
		t.Errorf("SetBookStatus(missing) error = %v, want nil", err)
	}
	if err := a.DeleteBook("missing"); err != nil {
		t.Errorf("DeleteBook(missing) error = %v, want nil", err)
	}
	if a.Profile.XP != 0 {
		t.Errorf("XP = %d, want 0", a.Profile.XP)
	}
}
