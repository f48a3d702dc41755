// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/runoshun/todo/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup       = "setup"
	groupTask        = "task"
	groupInteractive = "interactive"
)

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "In-memory todo list",
		Long: `todo keeps an ordered list of todos for the lifetime of one process.

Running todo without a subcommand performs the demo run: three todos are
added, the first is toggled, and the list, stats and texts are printed.
Use "todo shell" or "todo tui" to work with one registry interactively.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, c, demoTexts, demoToggleID)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupInteractive, Title: "Interactive:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	for _, cmd := range newTaskCommands(c) {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	// Interactive commands
	demoCmd := newDemoCommand(c)
	demoCmd.GroupID = groupInteractive

	shellCmd := newShellCommand(c)
	shellCmd.GroupID = groupInteractive

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupInteractive

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		demoCmd,
		shellCmd,
		tuiCmd,
		configCmd,
	)

	return root
}
