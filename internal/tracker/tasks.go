package tracker

import (
	"github.com/google/uuid"

	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/models"
)

// tierXP returns the one-shot XP award for completing a task of the given
// priority.
func tierXP(p models.TaskPriority) int {
	switch p {
	case models.PriorityHigh:
		return constants.XPTaskHigh
	case models.PriorityMedium:
		return constants.XPTaskMedium
	default:
		return constants.XPTaskLow
	}
}

// AddTask creates a pending task dated today.
func (a *App) AddTask(title, description string, priority models.TaskPriority, dueDate string) (models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      models.TaskPending,
		DueDate:     dueDate,
		CreatedAt:   a.today(),
	}
	a.Tasks = append(a.Tasks, task)
	return task, a.saveTasks()
}

// SetTaskStatus transitions a task. Moving into completed awards the priority
// tier once; moving out of completed revokes the same amount. The previous
// stored status decides the delta, so repeated writes of the same status carry
// no XP effect. An unknown id is a silent no-op.
func (a *App) SetTaskStatus(id string, status models.TaskStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.taskIndex(id)
	if i < 0 {
		return nil
	}
	t := &a.Tasks[i]

	delta := 0
	if status == models.TaskCompleted && t.Status != models.TaskCompleted {
		delta = tierXP(t.Priority)
	} else if status != models.TaskCompleted && t.Status == models.TaskCompleted {
		delta = -tierXP(t.Priority)
	}
	t.Status = status

	if delta != 0 {
		a.applyXP(delta)
		if err := a.saveProfile(); err != nil {
			return err
		}
	}
	return a.saveTasks()
}

// DeleteTask removes a task entirely with no XP reconciliation. An unknown id
// is a silent no-op.
func (a *App) DeleteTask(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.taskIndex(id)
	if i < 0 {
		return nil
	}
	a.Tasks = append(a.Tasks[:i], a.Tasks[i+1:]...)
	return a.saveTasks()
}

// TaskByID returns a copy of the task and whether it exists.
func (a *App) TaskByID(id string) (models.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}
	return a.Tasks[i], true
}

func (a *App) taskIndex(id string) int {
	for i := range a.Tasks {
		if a.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
