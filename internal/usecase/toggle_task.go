package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task domain.Task // The task after the flip
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute flips the completion flag.
// An unknown id returns a domain.NotFoundError and leaves the registry unchanged.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	if err := uc.tasks.Toggle(in.TaskID); err != nil {
		if uc.logger != nil {
			uc.logger.Warn(in.TaskID, "toggle", err.Error())
		}
		return nil, err
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "toggle", fmt.Sprintf("completed=%t", task.Completed))
	}

	return &ToggleTaskOutput{Task: task}, nil
}
