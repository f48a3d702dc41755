package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsFromProjectConfig(t *testing.T) {
	// Setup
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	projectDir := t.TempDir()
	content := "[tasks]\nseed = [\"Learn Rust\", \"Understand ownership\"]\n\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o644))

	// Execute
	c, err := New(projectDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	// Assert
	tasks := c.Tasks.List(domain.FilterAll)
	require.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "Understand ownership", tasks[1].Text)

	assert.Equal(t, filepath.Join(configHome, "todo"), c.Config.GlobalDir)
	assert.Equal(t, domain.DefaultLogPath(c.Config.GlobalDir), c.Config.LogPath)

	logContent, err := os.ReadFile(c.Config.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(logContent), "[todo-1] [add]")
	assert.Contains(t, string(logContent), "[global] [app] started")
}

func TestNew_LogsConfigWarnings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "custom.log")
	content := "[log]\nfile = \"" + filepath.ToSlash(logPath) + "\"\n\n[colors]\nx = 1\n"
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o644))

	c, err := New(projectDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, []string{"unknown section: colors"}, c.AppConfig.Warnings)
	logContent, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(logContent), "[WARN] [global] [config] unknown section: colors"))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[tasks\n"), 0o644))

	_, err := New(projectDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewWithDeps_Defaults(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	c := NewWithDeps(Config{}, repo, nil, nil)

	assert.Equal(t, domain.NewDefaultConfig(), c.AppConfig)
	assert.Equal(t, domain.NopLogger{}, c.Logger)
	assert.NoError(t, c.Close())
}

func TestContainer_UseCasesShareRegistry(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := NewWithDeps(Config{}, repo, nil, nil)
	ctx := context.Background()

	_, err := c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{Text: "a"})
	require.NoError(t, err)
	_, err = c.ToggleTaskUseCase().Execute(ctx, usecase.ToggleTaskInput{TaskID: 1})
	require.NoError(t, err)

	stats, err := c.TaskStatsUseCase().Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 1, Completed: 1}, stats.Stats)

	_, err = c.RemoveTaskUseCase().Execute(ctx, usecase.RemoveTaskInput{TaskID: 1})
	require.NoError(t, err)
	out, err := c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}
