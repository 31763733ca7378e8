package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/validation"
)

type JournalCmd struct {
	Write  JournalWriteCmd  `cmd:"" help:"Write or update a diary entry."`
	List   JournalListCmd   `cmd:"" help:"List diary entries, newest first."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a diary entry."`
}

type JournalWriteCmd struct {
	Content string `arg:"" optional:"" help:"Entry text. Omit to fill in a form."`
	Mood    string `help:"Mood for the entry." default:"Neutral"`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	content := c.Content
	mood := c.Mood

	if content == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().Title("How was your day?").Value(&content),
				huh.NewSelect[string]().
					Title("Mood").
					Options(
						huh.NewOption("Happy", "Happy"),
						huh.NewOption("Neutral", "Neutral"),
						huh.NewOption("Sad", "Sad"),
						huh.NewOption("Excited", "Excited"),
						huh.NewOption("Stressed", "Stressed"),
						huh.NewOption("Grateful", "Grateful"),
						huh.NewOption("Tired", "Tired"),
					).
					Value(&mood),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}
	if err := validation.Mood(models.Mood(mood)); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.App.Today()
	}
	if err := validation.Date(day); err != nil {
		return err
	}

	_, exists := ctx.App.EntryByDate(day)
	if _, err := ctx.App.UpsertEntry(day, content, models.Mood(mood)); err != nil {
		return err
	}

	if exists {
		fmt.Printf("Updated entry for %s\n", day)
	} else {
		fmt.Printf("Saved entry for %s (feeling %s)\n", day, mood)
	}
	return nil
}

type JournalListCmd struct {
	Limit int `help:"Maximum entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	if len(ctx.App.Journal) == 0 {
		fmt.Println("No diary entries yet.")
		return nil
	}

	for i, e := range ctx.App.Journal {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		preview := e.Content
		if len(preview) > 60 {
			preview = preview[:57] + "..."
		}
		fmt.Printf("%s  %-9s %s\n", e.Date, e.Mood, preview)
	}
	return nil
}

type JournalDeleteCmd struct {
	Date string `arg:"" help:"Date of the entry to delete (YYYY-MM-DD)."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	entry, ok := ctx.App.EntryByDate(c.Date)
	if !ok {
		return fmt.Errorf("no entry found for %s", c.Date)
	}
	if err := ctx.App.DeleteEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted entry for %s\n", c.Date)
	return nil
}
