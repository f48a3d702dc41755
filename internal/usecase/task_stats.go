package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// TaskStatsOutput contains the registry counters.
type TaskStatsOutput struct {
	Stats domain.Stats
}

// TaskStats is the use case for counting tasks.
type TaskStats struct {
	tasks domain.TaskRepository
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository) *TaskStats {
	return &TaskStats{tasks: tasks}
}

// Execute counts total, completed and pending tasks from the three listings.
func (uc *TaskStats) Execute(_ context.Context) (*TaskStatsOutput, error) {
	return &TaskStatsOutput{
		Stats: domain.Stats{
			Total:     len(uc.tasks.List(domain.FilterAll)),
			Completed: len(uc.tasks.List(domain.FilterCompleted)),
			Pending:   len(uc.tasks.List(domain.FilterPending)),
		},
	}, nil
}
