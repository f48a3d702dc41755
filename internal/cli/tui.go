package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing todos.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the TUI until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
