package tui

import (
	"fmt"
	"strings"

	"github.com/streakmate/streakmate/internal/levels"
	"github.com/streakmate/streakmate/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.state {
	case viewHabits:
		b.WriteString(m.habitsView())
	case viewTasks:
		b.WriteString(m.tasksView())
	case viewJournal:
		b.WriteString(m.journalView())
	case viewBooks:
		b.WriteString(m.booksView())
	}

	b.WriteString("\n")
	if m.state == viewHabits {
		b.WriteString(m.heatmapView())
		b.WriteString("\n")
	}

	if m.motivation != "" {
		b.WriteString(motivationStyle.Render(m.motivation))
		b.WriteString("\n")
	}
	if m.statusErr != "" {
		b.WriteString(dangerStyle.Render("Error: " + m.statusErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) headerView() string {
	var tabs []string
	for v := view(0); v < viewCount; v++ {
		if v == m.state {
			tabs = append(tabs, activeTabStyle.Render(viewNames[v]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(viewNames[v]))
		}
	}

	p := m.app.Profile
	status := fmt.Sprintf("%s · Level %d · %d XP %s", p.Name, p.Level, p.XP, xpBar(p.XP, 20))
	return strings.Join(tabs, " ") + "\n" + status
}

func (m Model) habitsView() string {
	if len(m.app.Habits) == 0 {
		return "No habits yet. Add one with 'streakmate habit add'."
	}

	today := m.app.Today()
	var b strings.Builder
	for i, h := range m.app.Habits {
		marker := "[ ]"
		switch h.Log[today] {
		case models.StatusDone:
			marker = doneStyle.Render("[x]")
		case models.StatusMissed:
			marker = missedStyle.Render("[!]")
		case models.StatusSkipped:
			marker = skippedStyle.Render("[-]")
		}
		line := fmt.Sprintf("%s %-30s streak %d (best %d)", marker, h.Name, h.CurrentStreak, h.LongestStreak)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) tasksView() string {
	if len(m.app.Tasks) == 0 {
		return "No tasks yet."
	}

	var b strings.Builder
	for i, t := range m.app.Tasks {
		marker := "[ ]"
		switch t.Status {
		case models.TaskCompleted:
			marker = doneStyle.Render("[x]")
		case models.TaskInProgress:
			marker = skippedStyle.Render("[>]")
		}
		due := ""
		if t.DueDate != "" {
			due = "  due " + t.DueDate
		}
		line := fmt.Sprintf("%s %-40s %-6s%s", marker, t.Title, t.Priority, due)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) journalView() string {
	if len(m.app.Journal) == 0 {
		return "No diary entries yet."
	}

	var b strings.Builder
	for i, e := range m.app.Journal {
		preview := e.Content
		if len(preview) > 60 {
			preview = preview[:57] + "..."
		}
		line := fmt.Sprintf("%s  %-9s %s", e.Date, e.Mood, preview)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) booksView() string {
	if len(m.app.Books) == 0 {
		return "Your library is empty."
	}

	var b strings.Builder
	for i, book := range m.app.Books {
		percent := 0
		if book.TotalPages > 0 {
			percent = book.CurrentPage * 100 / book.TotalPages
		}
		line := fmt.Sprintf("%-35s %-10s %3d%%", book.Title, book.Status, percent)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) heatmapView() string {
	cells := m.app.Heatmap()
	var b strings.Builder
	b.WriteString("Last 30 days\n")
	for i, cell := range cells {
		level := cell.Score
		if level >= len(heatStyles) {
			level = len(heatStyles) - 1
		}
		b.WriteString(heatStyles[level].Render("■"))
		b.WriteString(" ")
		if (i+1)%10 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// xpBar renders progress through the current level as a fixed-width bar.
func xpBar(xp, width int) string {
	filled := int(levels.Progress(xp) * float64(width))
	if filled > width {
		filled = width
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
