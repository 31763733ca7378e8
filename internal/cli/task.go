package cli

import (
	"fmt"

	"github.com/streakmate/streakmate/internal/models"
	"github.com/streakmate/streakmate/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Status TaskStatusCmd `cmd:"" help:"Change a task's status."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Task description." default:""`
	Priority    string `help:"Low, Medium, or High." default:"Medium"`
	Due         string `help:"Due date in YYYY-MM-DD format." default:""`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := validation.TaskTitle(c.Title); err != nil {
		return err
	}
	priority := models.TaskPriority(c.Priority)
	if err := validation.Priority(priority); err != nil {
		return err
	}
	if c.Due != "" {
		if err := validation.Date(c.Due); err != nil {
			return err
		}
	}

	task, err := ctx.App.AddTask(c.Title, c.Description, priority, c.Due)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (%s priority)\n", task.Title, task.Priority)
	return nil
}

type TaskListCmd struct {
	Status string `help:"Filter by status (pending, in-progress, completed)." default:""`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if c.Status != "" {
		if err := validation.TaskStatus(models.TaskStatus(c.Status)); err != nil {
			return err
		}
	}

	shown := 0
	for _, t := range ctx.App.Tasks {
		if c.Status != "" && t.Status != models.TaskStatus(c.Status) {
			continue
		}
		marker := "[ ]"
		switch t.Status {
		case models.TaskCompleted:
			marker = "[x]"
		case models.TaskInProgress:
			marker = "[>]"
		}
		due := ""
		if t.DueDate != "" {
			due = " due " + t.DueDate
		}
		fmt.Printf("%s %-40s %-6s%s\n", marker, t.Title, t.Priority, due)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskStatusCmd struct {
	Title  string `arg:"" help:"Task title."`
	Status string `arg:"" help:"pending, in-progress, or completed."`
}

func (c *TaskStatusCmd) Run(ctx *Context) error {
	status := models.TaskStatus(c.Status)
	if err := validation.TaskStatus(status); err != nil {
		return err
	}

	task, ok := taskByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("task %q not found", c.Title)
	}

	before := ctx.App.Profile.XP
	if err := ctx.App.SetTaskStatus(task.ID, status); err != nil {
		return err
	}

	fmt.Printf("Task %q is now %s\n", task.Title, status)
	if delta := ctx.App.Profile.XP - before; delta != 0 {
		fmt.Printf("XP %+d (total %d, level %d)\n", delta, ctx.App.Profile.XP, ctx.App.Profile.Level)
	}
	return nil
}

type TaskDeleteCmd struct {
	Title string `arg:"" help:"Task title to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, ok := taskByTitle(ctx, c.Title)
	if !ok {
		return fmt.Errorf("task %q not found", c.Title)
	}
	if err := ctx.App.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

func taskByTitle(ctx *Context, title string) (models.Task, bool) {
	for _, t := range ctx.App.Tasks {
		if t.Title == title {
			return t, true
		}
	}
	return models.Task{}, false
}
