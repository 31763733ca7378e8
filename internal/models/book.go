package models

type BookStatus string

const (
	BookToRead    BookStatus = "To Read"
	BookReading   BookStatus = "Reading"
	BookCompleted BookStatus = "Completed"
)

// Quote is a saved passage owned by a single book.
type Quote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Page      string `json:"page,omitempty"`
	CreatedAt string `json:"created_at"` // YYYY-MM-DD format
}

// Book tracks reading progress. Status becomes Completed when CurrentPage
// reaches TotalPages; the completion bonus is awarded exactly once, guarded by
// the prior status rather than the page value.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Topic         string     `json:"topic,omitempty"`
	TotalPages    int        `json:"total_pages"`
	CurrentPage   int        `json:"current_page"`
	Status        BookStatus `json:"status"`
	Cover         string     `json:"cover,omitempty"`
	Quotes        []Quote    `json:"quotes"`
	StartDate     string     `json:"start_date,omitempty"`     // YYYY-MM-DD format
	CompletedDate string     `json:"completed_date,omitempty"` // YYYY-MM-DD format
	Content       string     `json:"content,omitempty"`        // optional full text for the reader
}
