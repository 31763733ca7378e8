package tracker

import (
	"github.com/google/uuid"

	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/models"
)

// AddBook adds a book to the front of the library with zero progress.
func (a *App) AddBook(title, author, topic string, totalPages int, cover, content string) (models.Book, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	book := models.Book{
		ID:         uuid.New().String(),
		Title:      title,
		Author:     author,
		Topic:      topic,
		TotalPages: totalPages,
		Status:     models.BookToRead,
		Cover:      cover,
		Quotes:     []models.Quote{},
		StartDate:  a.today(),
		Content:    content,
	}
	a.Books = append([]models.Book{book}, a.Books...)
	return book, a.saveBooks()
}

// SetBookProgress moves the reading position, clamped to [0, TotalPages].
// Reaching the last page while the book was not already Completed marks it
// Completed, stamps the completion date and awards the completion bonus
// exactly once; the prior-status guard means re-saving the same page or
// sliding back and forth never re-awards. A first step from page zero marks
// the book Reading. An unknown id is a silent no-op.
func (a *App) SetBookProgress(id string, page int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(id)
	if i < 0 {
		return nil
	}
	b := &a.Books[i]

	if page < 0 {
		page = 0
	}
	if page > b.TotalPages {
		page = b.TotalPages
	}

	delta := 0
	if page == b.TotalPages && b.Status != models.BookCompleted {
		b.Status = models.BookCompleted
		b.CompletedDate = a.today()
		delta = constants.XPBookCompleted
	} else if b.CurrentPage == 0 && page > 0 && b.Status != models.BookCompleted {
		b.Status = models.BookReading
	}
	b.CurrentPage = page

	if delta != 0 {
		a.applyXP(delta)
		if err := a.saveProfile(); err != nil {
			return err
		}
	}
	return a.saveBooks()
}

// SetBookStatus overrides the shelf status directly with no XP effect. An
// unknown id is a silent no-op.
func (a *App) SetBookStatus(id string, status models.BookStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(id)
	if i < 0 {
		return nil
	}
	a.Books[i].Status = status
	return a.saveBooks()
}

// AddQuote appends a quote to a book. An unknown book id is a silent no-op and
// returns a zero quote.
func (a *App) AddQuote(bookID, text, page string) (models.Quote, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(bookID)
	if i < 0 {
		return models.Quote{}, nil
	}
	quote := models.Quote{
		ID:        uuid.New().String(),
		Text:      text,
		Page:      page,
		CreatedAt: a.today(),
	}
	a.Books[i].Quotes = append(a.Books[i].Quotes, quote)
	return quote, a.saveBooks()
}

// DeleteQuote removes a quote from a book. Unknown ids are silent no-ops.
func (a *App) DeleteQuote(bookID, quoteID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(bookID)
	if i < 0 {
		return nil
	}
	quotes := a.Books[i].Quotes
	for j := range quotes {
		if quotes[j].ID == quoteID {
			a.Books[i].Quotes = append(quotes[:j], quotes[j+1:]...)
			return a.saveBooks()
		}
	}
	return nil
}

// DeleteBook removes a book and all its quotes. An unknown id is a silent
// no-op.
func (a *App) DeleteBook(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(id)
	if i < 0 {
		return nil
	}
	a.Books = append(a.Books[:i], a.Books[i+1:]...)
	return a.saveBooks()
}

// BookByID returns a copy of the book and whether it exists.
func (a *App) BookByID(id string) (models.Book, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.bookIndex(id)
	if i < 0 {
		return models.Book{}, false
	}
	return a.Books[i], true
}

func (a *App) bookIndex(id string) int {
	for i := range a.Books {
		if a.Books[i].ID == id {
			return i
		}
	}
	return -1
}
