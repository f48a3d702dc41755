// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text (may be empty)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute appends a new pending task. It cannot fail.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task := uc.tasks.Insert(in.Text)

	if uc.logger != nil {
		uc.logger.Info(task.ID, "add", fmt.Sprintf("created: %q", task.Text))
	}

	return &AddTaskOutput{Task: task}, nil
}
