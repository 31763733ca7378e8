package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/streakmate/streakmate/internal/models"
)

type DashboardCmd struct{}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	motivationStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	heatStyles      = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}
)

func (c *DashboardCmd) Run(ctx *Context) error {
	app := ctx.App

	fmt.Println(titleStyle.Render(fmt.Sprintf("Hello, %s (level %d, %d XP)", app.Profile.Name, app.Profile.Level, app.Profile.XP)))
	fmt.Println(xpBar(app.Profile.XP, 40))
	fmt.Println()

	msg, err := ctx.Advisor.Motivation(context.Background(), app.Profile.Name, app.Habits, app.Tasks)
	if err == nil && msg != "" {
		fmt.Println(motivationStyle.Render(msg))
		fmt.Println()
	}

	fmt.Println(titleStyle.Render("This week"))
	for _, dc := range app.WeeklySeries() {
		bar := strings.Repeat("■", dc.Count)
		if dc.Count == 0 {
			bar = "·"
		}
		fmt.Printf("%s %s  %s\n", dc.Weekday.String()[:3], dc.Day, bar)
	}
	fmt.Println()

	fmt.Println(titleStyle.Render("Last 30 days"))
	cells := app.Heatmap()
	var row strings.Builder
	for i, cell := range cells {
		level := cell.Score
		if level >= len(heatStyles) {
			level = len(heatStyles) - 1
		}
		row.WriteString(heatStyles[level].Render("■"))
		row.WriteString(" ")
		if (i+1)%10 == 0 {
			row.WriteString("\n")
		}
	}
	fmt.Println(row.String())

	pending := 0
	for _, t := range app.Tasks {
		if t.Status != models.TaskCompleted {
			pending++
		}
	}
	fmt.Printf("Open tasks: %d  |  diary entries: %d  |  books: %d\n",
		pending, len(app.Journal), len(app.Books))
	return nil
}
