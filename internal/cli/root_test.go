package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer returns a container over an empty in-memory registry.
func newTestContainer() *app.Container {
	return app.NewWithDeps(app.Config{}, memstore.New(), nil, nil)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(c *app.Container, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const canonicalDemoOutput = `All Todos:
  [○] Learn Rust
  [○] Understand ownership
  [○] Master pattern matching

Toggled todo 1

Stats:
  Total: 3
  Completed: 1
  Pending: 2

First todo: Learn Rust

Todo texts:
  - Learn Rust
  - Understand ownership
  - Master pattern matching
`

func TestNewRootCommand_NoArgs_RunsDemo(t *testing.T) {
	c := newTestContainer()

	stdout, stderr, err := execute(c)

	require.NoError(t, err)
	assert.Equal(t, canonicalDemoOutput, stdout)
	assert.Empty(t, stderr)
}

func TestNewRootCommand_UnknownCommand(t *testing.T) {
	_, _, err := execute(newTestContainer(), "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus"`)
}

func TestNewRootCommand_Version(t *testing.T) {
	stdout, _, err := execute(newTestContainer(), "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
}

func TestNewRootCommand_HelpListsGroups(t *testing.T) {
	stdout, _, err := execute(newTestContainer(), "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Task Management:")
	assert.Contains(t, stdout, "Interactive:")
	assert.Contains(t, stdout, "Setup Commands:")
	assert.Contains(t, stdout, "toggle")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown section: colors"}
	c := app.NewWithDeps(app.Config{}, memstore.New(), cfg, nil)

	_, stderr, err := execute(c, "stats")

	require.NoError(t, err)
	assert.Equal(t, "Warning: unknown section: colors\n", stderr)
}

func TestNewRootCommand_NilContainer_Help(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	assert.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "todo")
}
