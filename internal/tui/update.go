package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/streakmate/streakmate/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case motivationMsg:
		m.motivation = msg.text
		return m, nil

	case errMsg:
		m.statusErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % viewCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + viewCount - 1) % viewCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			if err := m.app.ToggleTheme(); err != nil {
				m.statusErr = err.Error()
			}
			return m, nil

		case key.Matches(msg, m.keys.Done):
			return m.checkIn(models.StatusDone)
		case key.Matches(msg, m.keys.Missed):
			return m.checkIn(models.StatusMissed)
		case key.Matches(msg, m.keys.Skipped):
			return m.checkIn(models.StatusSkipped)
		case key.Matches(msg, m.keys.Undo):
			return m.checkIn("")

		case key.Matches(msg, m.keys.Cycle):
			return m.advanceTask()
		}
	}

	return m, nil
}

// checkIn records a status for the habit under the cursor and refreshes the
// motivation line, since the day's completion picture may have changed.
func (m Model) checkIn(status models.CheckStatus) (tea.Model, tea.Cmd) {
	if m.state != viewHabits || m.cursor >= len(m.app.Habits) {
		return m, nil
	}
	habit := m.app.Habits[m.cursor]
	if err := m.app.CheckIn(habit.ID, m.app.Today(), status); err != nil {
		m.statusErr = err.Error()
		return m, nil
	}
	m.statusErr = ""
	return m, m.fetchMotivation()
}

// advanceTask steps the task under the cursor pending -> in-progress ->
// completed -> pending.
func (m Model) advanceTask() (tea.Model, tea.Cmd) {
	if m.state != viewTasks || m.cursor >= len(m.app.Tasks) {
		return m, nil
	}
	task := m.app.Tasks[m.cursor]

	var next models.TaskStatus
	switch task.Status {
	case models.TaskPending:
		next = models.TaskInProgress
	case models.TaskInProgress:
		next = models.TaskCompleted
	default:
		next = models.TaskPending
	}

	if err := m.app.SetTaskStatus(task.ID, next); err != nil {
		m.statusErr = err.Error()
		return m, nil
	}
	m.statusErr = ""
	return m, m.fetchMotivation()
}
