package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	logger := &testutil.MockLogger{}
	uc := NewAddTask(repo, logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{Text: "Learn Rust"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "Learn Rust", out.Task.Text)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, 1, repo.InsertCalls)

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "INFO", logger.Entries[0].Level)
	assert.Equal(t, 1, logger.Entries[0].TaskID)
	assert.Equal(t, `created: "Learn Rust"`, logger.Entries[0].Msg)
}

func TestAddTask_Execute_IDsIncrease(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil)

	var ids []int
	for _, text := range []string{"a", "b", ""} {
		out, err := uc.Execute(context.Background(), AddTaskInput{Text: text})
		require.NoError(t, err)
		ids = append(ids, out.Task.ID)
	}

	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, "", repo.Tasks[2].Text, "empty text is accepted")
}
