package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetProjectConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		projectDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeFile(t, domain.ProjectConfigPath(projectDir), configContent)

		info := NewManagerWithGlobalDir(projectDir, "").GetProjectConfigInfo()

		assert.Equal(t, domain.ProjectConfigPath(projectDir), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		projectDir := t.TempDir()

		info := NewManagerWithGlobalDir(projectDir, "").GetProjectConfigInfo()

		assert.Equal(t, domain.ProjectConfigPath(projectDir), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo_NoDir(t *testing.T) {
	info := NewManagerWithGlobalDir("", "").GetGlobalConfigInfo()

	assert.Empty(t, info.Path)
	assert.False(t, info.Exists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "todo")
	manager := NewManagerWithGlobalDir("", globalDir)

	require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

	content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[display]")

	// The written template must load back cleanly.
	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DefaultCompletedGlyph, cfg.Display.CompletedGlyph)
}

func TestManager_InitProjectConfig_AlreadyExists(t *testing.T) {
	projectDir := t.TempDir()
	manager := NewManagerWithGlobalDir(projectDir, "")

	require.NoError(t, manager.InitProjectConfig(domain.NewDefaultConfig()))
	err := manager.InitProjectConfig(domain.NewDefaultConfig())

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
