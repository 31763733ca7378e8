package cli

import (
	"fmt"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/validation"
)

type BookCmd struct {
	Add      BookAddCmd      `cmd:"" help:"Add a book to the library."`
	List     BookListCmd     `cmd:"" help:"List books."`
	Progress BookProgressCmd `cmd:"" help:"Update reading progress."`
	Status   BookStatusCmd   `cmd:"" help:"Set a book's status directly."`
	Quote    BookQuoteCmd    `cmd:"" help:"Save a quote from a book."`
	Delete   BookDeleteCmd   `cmd:"" help:"Remove a book from the library."`
}

type BookAddCmd struct {
	Title  string `arg:"" help:"Book title."`
	Author string `help:"Author name." default:""`
	Topic  string `help:"Topic or genre." default:""`
	Pages  int    `help:"Total page count." required:""`
	Cover  string `help:"Cover color name." default:""`
}

func (c *BookAddCmd) Run(ctx *Context) error {
	if err := validation.BookTitle(c.Title); err != nil {
		return err
	}
	if err := validation.TotalPages(c.Pages); err != nil {
		return err
	}

	book, err := ctx.App.AddBook(c.Title, c.Author, c.Topic, c.Pages, c.Cover, "")
	if err != nil {
		return err
	}

	fmt.Printf("Added book: %s (%d pages)\n", book.Title, book.TotalPages)
	return nil
}

type BookListCmd struct{}

func (c *BookListCmd) Run(ctx *Context) error {
	if len(ctx.App.Books) == 0 {
		fmt.Println("Your library is empty.")
		return nil
	}

	for _, b := range ctx.App.Books {
		percent := 0
		if b.TotalPages > 0 {
			percent = b.CurrentPage * 100 / b.TotalPages
		}
		fmt.Printf("%-35s %-20s %-10s %3d%% (%d/%d)\n",
			b.Title, b.Author, b.Status, percent, b.CurrentPage, b.TotalPages)
	}
	return nil
}

type BookProgressCmd struct {
	Title string `arg:"" help:"Book title."`
	Page  int    `arg:"" help:"Current page."`
}

func (c *BookProgressCmd) Run(ctx *Context) error {
	book, ok := bookByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("book %q not found", c.Title)
	}

	before := ctx.App.Profile.XP
	if err := ctx.App.SetBookProgress(book.ID, c.Page); err != nil {
		return err
	}

	updated, _ := ctx.App.BookByID(book.ID)
	fmt.Printf("%s: page %d of %d (%s)\n", updated.Title, updated.CurrentPage, updated.TotalPages, updated.Status)
	if delta := ctx.App.Profile.XP - before; delta != 0 {
		fmt.Printf("Finished! XP %+d (total %d, level %d)\n", delta, ctx.App.Profile.XP, ctx.App.Profile.Level)
	}
	return nil
}

type BookStatusCmd struct {
	Title  string `arg:"" help:"Book title."`
	Status string `arg:"" help:"To Read, Reading, or Completed."`
}

func (c *BookStatusCmd) Run(ctx *Context) error {
	status := models.BookStatus(c.Status)
	if err := validation.BookStatus(status); err != nil {
		return err
	}

	book, ok := bookByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("book %q not found", c.Title)
	}
	if err := ctx.App.SetBookStatus(book.ID, status); err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", book.Title, status)
	return nil
}

type BookQuoteCmd struct {
	Title string `arg:"" help:"Book title."`
	Text  string `arg:"" help:"Quote text."`
	Page  string `help:"Page reference." default:""`
}

func (c *BookQuoteCmd) Run(ctx *Context) error {
	book, ok := bookByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("book %q not found", c.Title)
	}
	if _, err := ctx.App.AddQuote(book.ID, c.Text, c.Page); err != nil {
		return err
	}
	fmt.Printf("Saved quote from %s\n", book.Title)
	return nil
}

type BookDeleteCmd struct {
	Title string `arg:"" help:"Book title to delete."`
}

func (c *BookDeleteCmd) Run(ctx *Context) error {
	book, ok := bookByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("book %q not found", c.Title)
	}
	if err := ctx.App.DeleteBook(book.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted book: %s\n", book.Title)
	return nil
}

func bookByTitle(ctx *Context, title string) (models.Book, bool) {
	for _, b := range ctx.App.Books {
		if b.Title == title {
			return b, true
		}
	}
	return models.Book{}, false
}
