package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/streakmate/streakmate/internal/advice"
	"github.com/streakmate/streakmate/internal/tracker"
)

type view int

const (
	viewHabits view = iota
	viewTasks
	viewJournal
	viewBooks
	viewCount
)

var viewNames = [viewCount]string{"Habits", "Tasks", "Journal", "Books"}

// motivationMsg delivers the advisor's line once it resolves. Only the latest
// request's result is shown; earlier in-flight results are simply overwritten.
type motivationMsg struct {
	text string
}

type errMsg struct {
	err error
}

type Model struct {
	app     *tracker.App
	advisor advice.Provider

	state      view
	keys       KeyMap
	help       help.Model
	cursor     int
	motivation string
	statusErr  string
	quitting   bool
	width      int
	height     int
}

func NewModel(app *tracker.App, advisor advice.Provider) Model {
	return Model{
		app:     app,
		advisor: advisor,
		state:   viewHabits,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetchMotivation()
}

func (m Model) fetchMotivation() tea.Cmd {
	app, advisor := m.app, m.advisor
	return func() tea.Msg {
		msg, err := advisor.Motivation(context.Background(), app.Profile.Name, app.Habits, app.Tasks)
		if err != nil {
			return errMsg{err}
		}
		return motivationMsg{msg}
	}
}

// rowCount returns how many rows the active view has.
func (m Model) rowCount() int {
	switch m.state {
	case viewHabits:
		return len(m.app.Habits)
	case viewTasks:
		return len(m.app.Tasks)
	case viewJournal:
		return len(m.app.Journal)
	case viewBooks:
		return len(m.app.Books)
	}
	return 0
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Up, m.keys.Down}
	switch m.state {
	case viewHabits:
		keys = append(keys, m.keys.Done, m.keys.Missed, m.keys.Skipped, m.keys.Undo)
	case viewTasks:
		keys = append(keys, m.keys.Cycle)
	}
	return append(keys, m.keys.Theme, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Up, m.keys.Down},
		{m.keys.Done, m.keys.Missed, m.keys.Skipped, m.keys.Undo, m.keys.Cycle},
		{m.keys.Theme, m.keys.Help, m.keys.Quit},
	}
}
