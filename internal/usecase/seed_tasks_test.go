package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTasks_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	logger := &testutil.MockLogger{}
	uc := NewSeedTasks(repo, logger)

	// Execute
	out, err := uc.Execute(context.Background(), SeedTasksInput{Texts: []string{"x", "y"}})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 1, out.Tasks[0].ID)
	assert.Equal(t, "y", out.Tasks[1].Text)
	assert.Equal(t, 2, repo.InsertCalls)
	assert.Equal(t, "DEBUG", logger.Entries[len(logger.Entries)-1].Level)
}

func TestSeedTasks_Execute_Empty(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	logger := &testutil.MockLogger{}

	out, err := NewSeedTasks(repo, logger).Execute(context.Background(), SeedTasksInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.Empty(t, logger.Entries)
}
