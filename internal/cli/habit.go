package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/streakmate/streakmate/internal/migration"
	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks."`
	Check  HabitCheckCmd  `cmd:"" help:"Record a habit status for a day."`
	Advice HabitAdviceCmd `cmd:"" help:"Get coaching suggestions for a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit to fill in a form."`
	Description string `help:"Habit description." default:""`
	Category    string `help:"Habit category." default:"Personal"`
	Days        string `help:"Comma-separated weekday schedule (default: every day)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name := c.Name
	category := c.Category
	description := c.Description

	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Habit name").Value(&name),
				huh.NewInput().Title("Description").Value(&description),
				huh.NewSelect[string]().
					Title("Category").
					Options(
						huh.NewOption("Health", "Health"),
						huh.NewOption("Study", "Study"),
						huh.NewOption("Work", "Work"),
						huh.NewOption("Personal", "Personal"),
						huh.NewOption("Mindfulness", "Mindfulness"),
						huh.NewOption("Finance", "Finance"),
						huh.NewOption("Creative", "Creative"),
					).
					Value(&category),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.HabitName(name); err != nil {
		return err
	}
	if err := validation.Category(models.HabitCategory(category)); err != nil {
		return err
	}

	frequency := migration.AllWeekdays()
	if c.Days != "" {
		var err error
		if frequency, err = ParseWeekdays(c.Days); err != nil {
			return err
		}
	}

	habit, err := ctx.App.AddHabit(name, description, models.HabitCategory(category), frequency)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s)\n", habit.Name, habit.Category, FormatFrequency(habit.Frequency))
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include inactive habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if len(ctx.App.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.App.Today()
	for _, h := range ctx.App.Habits {
		if !h.Active && !c.All {
			continue
		}
		marker := "[ ]"
		switch h.Log[today] {
		case models.StatusDone:
			marker = "[x]"
		case models.StatusMissed:
			marker = "[!]"
		case models.StatusSkipped:
			marker = "[-]"
		}
		status := ""
		if !h.Active {
			status = " [INACTIVE]"
		}
		fmt.Printf("%s %-30s %-12s streak %d (best %d)%s\n",
			marker, h.Name, FormatFrequency(h.Frequency), h.CurrentStreak, h.LongestStreak, status)
	}
	return nil
}

type HabitCheckCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Status string `arg:"" optional:"" help:"done, missed, skipped, or clear (default: done)." default:"done"`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	habit, ok := habitByName(ctx, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = ctx.App.Today()
	}
	if err := validation.Date(day); err != nil {
		return err
	}

	status := models.CheckStatus(c.Status)
	if c.Status == "clear" {
		status = ""
	}
	if err := validation.CheckStatus(status); err != nil {
		return err
	}

	if err := ctx.App.CheckIn(habit.ID, day, status); err != nil {
		return err
	}

	updated, _ := ctx.App.HabitByID(habit.ID)
	if status == "" {
		fmt.Printf("Cleared %q for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Recorded %q as %s for %s (streak: %d)\n", habit.Name, status, day, updated.CurrentStreak)
	}
	return nil
}

type HabitAdviceCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAdviceCmd) Run(ctx *Context) error {
	habit, ok := habitByName(ctx, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	suggestions, err := ctx.Advisor.HabitAdvice(context.Background(), habit, ctx.App.Today())
	if err != nil {
		return err
	}

	fmt.Printf("Advice for %q:\n\n", habit.Name)
	for _, s := range suggestions {
		fmt.Printf("- %s\n", s.Reason)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, ok := habitByName(ctx, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.App.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

func habitByName(ctx *Context, name string) (models.Habit, bool) {
	for _, h := range ctx.App.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}
