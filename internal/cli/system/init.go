package system

import (
	"fmt"
	"os"

	"github.com/streakmate/streakmate/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.ConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed the demonstration dataset so the first launch has something to show.
	if err := ctx.App.Load(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at: %s\n", ctx.Store.ConfigPath())
	fmt.Printf("Seeded %d habits, %d tasks, %d diary entries, %d books.\n",
		len(ctx.App.Habits), len(ctx.App.Tasks), len(ctx.App.Journal), len(ctx.App.Books))
	return nil
}
