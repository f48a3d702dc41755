package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage todo configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))
	cmd.AddCommand(newConfigPathCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var ignoreProject bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
Use --ignore-project to exclude .todo.toml for debugging.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{
				IgnoreProject: ignoreProject,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			sources := []domain.ConfigInfo{out.GlobalConfig}
			if !ignoreProject {
				sources = append(sources, out.ProjectConfig)
			}
			for _, info := range sources {
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&ignoreProject, "ignore-project", false, "Ignore project configuration (.todo.toml)")

	return cmd
}

// effectiveConfig mirrors domain.Config with the keys used in config files.
type effectiveConfig struct {
	Display struct {
		CompletedGlyph string `toml:"completed_glyph"`
		PendingGlyph   string `toml:"pending_glyph"`
	} `toml:"display"`
	Shell struct {
		Prompt string `toml:"prompt"`
	} `toml:"shell"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file,omitempty"`
	} `toml:"log"`
	Tasks struct {
		Seed []string `toml:"seed"`
	} `toml:"tasks"`
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	var out effectiveConfig
	out.Display.CompletedGlyph = cfg.Display.CompletedGlyph
	out.Display.PendingGlyph = cfg.Display.PendingGlyph
	out.Shell.Prompt = cfg.Shell.Prompt
	out.Log.Level = cfg.Log.Level
	out.Log.File = cfg.Log.File
	out.Tasks.Seed = cfg.Tasks.Seed
	if out.Tasks.Seed == nil {
		out.Tasks.Seed = []string{}
	}

	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates the project configuration file .todo.toml in the current directory.
With --global, creates the global configuration file at ~/.config/todo/config.toml.

Error conditions:
- Target file already exists: error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")

	return cmd
}

// newConfigPathCommand creates the config path subcommand.
func newConfigPathCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration and log file paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "global:  %s\n", c.ConfigManager.GetGlobalConfigInfo().Path)
			_, _ = fmt.Fprintf(w, "project: %s\n", c.ConfigManager.GetProjectConfigInfo().Path)
			if c.Config.LogPath != "" {
				_, _ = fmt.Fprintf(w, "log:     %s\n", c.Config.LogPath)
			}
			return nil
		},
	}
	return cmd
}
