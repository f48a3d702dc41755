package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// SeedTasksInput contains the texts to insert.
type SeedTasksInput struct {
	Texts []string
}

// SeedTasksOutput contains the inserted tasks.
type SeedTasksOutput struct {
	Tasks []domain.Task
}

// SeedTasks inserts a batch of tasks in order.
type SeedTasks struct {
	add    *AddTask
	logger domain.Logger
}

// NewSeedTasks creates a new SeedTasks use case.
func NewSeedTasks(tasks domain.TaskRepository, logger domain.Logger) *SeedTasks {
	return &SeedTasks{
		add:    NewAddTask(tasks, logger),
		logger: logger,
	}
}

// Execute inserts every text in order.
func (uc *SeedTasks) Execute(ctx context.Context, in SeedTasksInput) (*SeedTasksOutput, error) {
	out := &SeedTasksOutput{Tasks: make([]domain.Task, 0, len(in.Texts))}
	for _, text := range in.Texts {
		added, err := uc.add.Execute(ctx, AddTaskInput{Text: text})
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", text, err)
		}
		out.Tasks = append(out.Tasks, added.Task)
	}

	if uc.logger != nil && len(out.Tasks) > 0 {
		uc.logger.Debug(0, "seed", fmt.Sprintf("seeded %d todos", len(out.Tasks)))
	}

	return out, nil
}
