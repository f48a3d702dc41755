// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .todo.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
// Returns an empty string when no home directory can be determined.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalDir returns the global config directory used by this loader.
func (l *Loader) GlobalDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration (default <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	base, err := l.LoadGlobal()
	if err != nil {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}
	return base, nil
}

// LoadGlobal returns the defaults merged with the global file, ignoring the project file.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	return base, nil
}

// loadGlobalFile returns only the global file's configuration.
func (l *Loader) loadGlobalFile() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "display":
			for k, v := range m {
				switch k {
				case "completed_glyph":
					if s, ok := v.(string); ok {
						res.Display.CompletedGlyph = s
					}
				case "pending_glyph":
					if s, ok := v.(string); ok {
						res.Display.PendingGlyph = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		case "shell":
			for k, v := range m {
				switch k {
				case "prompt":
					if s, ok := v.(string); ok {
						res.Shell.Prompt = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [shell]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, ok := v.(string)
					if ok && s == "" {
						continue
					}
					if !ok || !domain.IsValidLogLevel(s) {
						warnings = append(warnings, fmt.Sprintf(
							"invalid value in [log]: level = %v (want %s)", v, strings.Join(domain.LogLevels, ", ")))
						continue
					}
					res.Log.Level = s
				case "file":
					if s, ok := v.(string); ok {
						res.Log.File = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tasks":
			for k, v := range m {
				switch k {
				case "seed":
					res.Tasks.Seed = toStringSlice(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// toStringSlice keeps the string elements of a TOML array.
func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// mergeConfigs merges two configs, with override taking precedence.
// Empty values in override do not replace base values.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Display:  base.Display,
		Shell:    base.Shell,
		Log:      base.Log,
		Tasks:    domain.TasksConfig{Seed: append([]string(nil), base.Tasks.Seed...)},
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Display.CompletedGlyph != "" {
		result.Display.CompletedGlyph = override.Display.CompletedGlyph
	}
	if override.Display.PendingGlyph != "" {
		result.Display.PendingGlyph = override.Display.PendingGlyph
	}
	if override.Shell.Prompt != "" {
		result.Shell.Prompt = override.Shell.Prompt
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Tasks.Seed != nil {
		result.Tasks.Seed = append([]string(nil), override.Tasks.Seed...)
	}

	return result
}
