package domain

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Display  DisplayConfig // [display] settings
	Shell    ShellConfig   // [shell] settings
	Log      LogConfig     // [log] settings
	Tasks    TasksConfig   // [tasks] settings
	Warnings []string      // Unknown keys and sections found while loading
}

// DisplayConfig holds glyph settings from the [display] section.
type DisplayConfig struct {
	CompletedGlyph string // Glyph for completed tasks
	PendingGlyph   string // Glyph for pending tasks
}

// Glyph returns the status glyph for the task.
func (c DisplayConfig) Glyph(t Task) string {
	if t.Completed {
		return c.CompletedGlyph
	}
	return c.PendingGlyph
}

// ShellConfig holds interactive shell settings from the [shell] section.
type ShellConfig struct {
	Prompt string // Prompt printed before each line
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	File  string // Log file path (empty = <global config dir>/logs/todo.log)
}

// TasksConfig holds registry settings from the [tasks] section.
type TasksConfig struct {
	Seed []string // Texts inserted into the registry at startup
}

// Directory and file names for todo.
const (
	AppDirName            = "todo"        // Directory name under the config home
	ConfigFileName        = "config.toml" // Global config file name
	ProjectConfigFileName = ".todo.toml"  // Config file name in the working directory
	LogFileName           = "todo.log"    // Log file name
)

// Default configuration values.
const (
	DefaultCompletedGlyph = "✓"
	DefaultPendingGlyph   = "○"
	DefaultShellPrompt    = "todo> "
	DefaultLogLevel       = "info"
)

// LogLevels lists the accepted [log] level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// IsValidLogLevel reports whether s is one of LogLevels.
func IsValidLogLevel(s string) bool {
	return slices.Contains(LogLevels, s)
}

// GlobalConfigDir returns the global todo directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ProjectConfigPath returns the project config path for a directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// DefaultLogPath returns the log file path under the global todo directory.
func DefaultLogPath(globalDir string) string {
	return filepath.Join(globalDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			CompletedGlyph: DefaultCompletedGlyph,
			PendingGlyph:   DefaultPendingGlyph,
		},
		Shell: ShellConfig{
			Prompt: DefaultShellPrompt,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

const configTemplateContent = `# todo configuration
#
# Global file:  $XDG_CONFIG_HOME/todo/config.toml
# Project file: ./.todo.toml (takes precedence)

[display]
completed_glyph = <<.CompletedGlyph>>
pending_glyph = <<.PendingGlyph>>

[shell]
prompt = <<.Prompt>>

[log]
# debug, info, warn, error
level = <<.LogLevel>>
# file = "/tmp/todo.log"

[tasks]
# Todos inserted at startup, in order.
seed = [<<.Seed>>]
`

// templateData holds all data for rendering the config template.
type templateData struct {
	CompletedGlyph string
	PendingGlyph   string
	Prompt         string
	LogLevel       string
	Seed           string
}

// RenderConfigTemplate renders a config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	seed := make([]string, 0, len(cfg.Tasks.Seed))
	for _, s := range cfg.Tasks.Seed {
		seed = append(seed, strconv.Quote(s))
	}

	data := templateData{
		CompletedGlyph: strconv.Quote(cfg.Display.CompletedGlyph),
		PendingGlyph:   strconv.Quote(cfg.Display.PendingGlyph),
		Prompt:         strconv.Quote(cfg.Shell.Prompt),
		LogLevel:       strconv.Quote(cfg.Log.Level),
		Seed:           strings.Join(seed, ", "),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
