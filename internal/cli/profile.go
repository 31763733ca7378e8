package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/streakmate/streakmate/internal/levels"
)

type ProfileCmd struct {
	Name        string `help:"Set the display name." default:""`
	ToggleTheme bool   `help:"Flip the light/dark theme preference."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if c.Name != "" {
		if err := ctx.App.SetName(c.Name); err != nil {
			return err
		}
	}
	if c.ToggleTheme {
		if err := ctx.App.ToggleTheme(); err != nil {
			return err
		}
	}

	p := ctx.App.Profile
	fmt.Printf("%s\n", p.Name)
	fmt.Printf("Level %d  (%d XP)\n", p.Level, p.XP)
	fmt.Printf("%s\n", xpBar(p.XP, 30))
	fmt.Printf("%d XP to level %d  |  theme: %s\n", levels.Ceil(p.Level)-p.XP, p.Level+1, p.Theme)
	return nil
}

var (
	xpFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	xpEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// xpBar renders progress through the current level as a fixed-width bar.
func xpBar(xp, width int) string {
	filled := int(levels.Progress(xp) * float64(width))
	if filled > width {
		filled = width
	}
	return xpFilledStyle.Render(strings.Repeat("█", filled)) +
		xpEmptyStyle.Render(strings.Repeat("░", width-filled))
}
