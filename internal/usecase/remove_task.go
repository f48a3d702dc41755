package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID int // Task ID to remove
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task domain.Task // The removed task
}

// RemoveTask is the use case for removing a task.
type RemoveTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(tasks domain.TaskRepository, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task with the given ID.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	task, err := uc.tasks.Remove(in.TaskID)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn(in.TaskID, "remove", err.Error())
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "remove", fmt.Sprintf("removed: %q", task.Text))
	}

	return &RemoveTaskOutput{Task: task}, nil
}
