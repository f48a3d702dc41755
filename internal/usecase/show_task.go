package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task domain.Task
}

// ShowTask is the use case for looking up a single task.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute returns the task with the given ID.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Task: task}, nil
}
