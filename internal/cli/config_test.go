package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileContainer builds a real container over temp global and project dirs.
func newFileContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	projectDir := t.TempDir()

	c, err := app.New(projectDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, filepath.Join(configHome, domain.AppDirName), projectDir
}

// parseEffectiveConfig decodes the TOML printed after the [Effective Config] header.
func parseEffectiveConfig(t *testing.T, stdout string) effectiveConfig {
	t.Helper()
	_, body, ok := strings.Cut(stdout, "[Effective Config]\n")
	require.True(t, ok, "missing [Effective Config] header")
	var got effectiveConfig
	require.NoError(t, toml.Unmarshal([]byte(body), &got))
	return got
}

func TestConfigShow_Defaults(t *testing.T) {
	c, globalDir, projectDir := newFileContainer(t)

	stdout, _, err := execute(c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]\n")
	assert.Contains(t, stdout, "- "+filepath.Join(globalDir, domain.ConfigFileName)+" (not found)\n")
	assert.Contains(t, stdout, "- "+domain.ProjectConfigPath(projectDir)+" (not found)\n")
	got := parseEffectiveConfig(t, stdout)
	assert.Equal(t, "✓", got.Display.CompletedGlyph)
	assert.Equal(t, "todo> ", got.Shell.Prompt)
	assert.Empty(t, got.Tasks.Seed)
}

func TestConfigShow_ProjectOverrides(t *testing.T) {
	// Setup
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	content := "[display]\npending_glyph = \" \"\n\n[tasks]\nseed = [\"a\", \"b\"]\n"
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o644))
	c, err := app.New(projectDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	// Execute
	stdout, _, err := execute(c, "config", "show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "- "+domain.ProjectConfigPath(projectDir)+"\n")
	got := parseEffectiveConfig(t, stdout)
	assert.Equal(t, " ", got.Display.PendingGlyph)
	assert.Equal(t, "✓", got.Display.CompletedGlyph)
	assert.Equal(t, []string{"a", "b"}, got.Tasks.Seed)
}

func TestConfigShow_IgnoreProject(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	content := "[display]\npending_glyph = \"-\"\n"
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o644))
	c, err := app.New(projectDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	stdout, _, err := execute(c, "config", "show", "--ignore-project")

	require.NoError(t, err)
	assert.NotContains(t, stdout, domain.ProjectConfigPath(projectDir))
	got := parseEffectiveConfig(t, stdout)
	assert.Equal(t, domain.DefaultPendingGlyph, got.Display.PendingGlyph)
}

func TestConfigInit_Project(t *testing.T) {
	c, _, projectDir := newFileContainer(t)
	path := domain.ProjectConfigPath(projectDir)

	stdout, _, err := execute(c, "config", "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, toml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "display")

	_, _, err = execute(c, "config", "init")
	assert.True(t, errors.Is(err, domain.ErrConfigExists))
}

func TestConfigInit_Global(t *testing.T) {
	c, globalDir, _ := newFileContainer(t)

	stdout, _, err := execute(c, "config", "init", "--global")

	require.NoError(t, err)
	path := filepath.Join(globalDir, domain.ConfigFileName)
	assert.Equal(t, "Created config file: "+path+"\n", stdout)
	assert.FileExists(t, path)
}

func TestConfigPath(t *testing.T) {
	c, globalDir, projectDir := newFileContainer(t)

	stdout, _, err := execute(c, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, stdout, "global:  "+filepath.Join(globalDir, domain.ConfigFileName)+"\n")
	assert.Contains(t, stdout, "project: "+domain.ProjectConfigPath(projectDir)+"\n")
	assert.Contains(t, stdout, "log:     "+domain.DefaultLogPath(globalDir)+"\n")
}
