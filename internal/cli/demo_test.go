package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_Defaults(t *testing.T) {
	stdout, stderr, err := execute(newTestContainer(), "demo")

	require.NoError(t, err)
	assert.Equal(t, canonicalDemoOutput, stdout)
	assert.Empty(t, stderr)
}

func TestDemo_ToggleMissingID_Continues(t *testing.T) {
	c := newTestContainer()

	stdout, stderr, err := execute(c, "demo", "--toggle", "99")

	require.NoError(t, err)
	assert.Equal(t, "Error: todo with id 99 not found\n", stderr)
	assert.NotContains(t, stdout, "Toggled")
	assert.Contains(t, stdout, "Stats:\n  Total: 3\n  Completed: 0\n  Pending: 3\n")
	assert.Contains(t, stdout, "First todo: Learn Rust")
	assert.Len(t, c.Tasks.List(domain.FilterCompleted), 0)
}

func TestDemo_CustomTasks(t *testing.T) {
	stdout, _, err := execute(newTestContainer(), "demo", "--task", "Write tests", "--task", "Ship it", "--toggle", "2")

	require.NoError(t, err)
	assert.Contains(t, stdout, "All Todos:\n  [○] Write tests\n  [○] Ship it\n")
	assert.Contains(t, stdout, "Toggled todo 2")
	assert.Contains(t, stdout, "  Completed: 1\n  Pending: 1\n")
	assert.Contains(t, stdout, "First todo: Write tests")
	assert.Contains(t, stdout, "Todo texts:\n  - Write tests\n  - Ship it\n")
}

func TestRunDemo_NoTasks(t *testing.T) {
	// Setup
	c := newTestContainer()
	cmd := &cobra.Command{}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())

	// Execute
	err := runDemo(cmd, c, nil, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Error: todo with id 1 not found\n", stderr.String())
	assert.Equal(t, "All Todos:\n\nStats:\n  Total: 0\n  Completed: 0\n  Pending: 0\n\nNo todos found\n\nTodo texts:\n", stdout.String())
}

func TestDemo_UsesConfiguredGlyphs(t *testing.T) {
	c := newTestContainer()
	c.AppConfig.Display.PendingGlyph = " "
	c.AppConfig.Display.CompletedGlyph = "x"

	stdout, _, err := execute(c, "demo", "--task", "a", "--toggle", "1")

	require.NoError(t, err)
	assert.Contains(t, stdout, "All Todos:\n  [ ] a\n")
}
