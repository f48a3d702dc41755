package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// parseTaskID parses a todo id, accepting an optional leading '#'.
func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", domain.ErrInvalidTaskID, s)
	}
	return id, nil
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a todo",
		Long: `Add a pending todo. Multiple arguments are joined with single spaces.
Arguments are never read as flags, so texts may start with a dash.
A leading "--" is dropped.

Examples:
  todo add Learn Rust
  todo add "Understand ownership"
  todo add -5 pushups`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if args[0] == "--" {
				args = args[1:]
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created todo #%d\n", out.Task.ID)
			return nil
		},
	}
	return cmd
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a todo between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			if _, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{
				TaskID: taskID,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Toggled todo %d\n", taskID)
			return nil
		},
	}
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a todo",
		Long: `Remove a todo. The ids of the remaining todos do not change and
removed ids are never reused.

Examples:
  todo rm 1
  todo rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.RemoveTaskUseCase().Execute(cmd.Context(), usecase.RemoveTaskInput{
				TaskID: taskID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed todo #%d: %s\n", out.Task.ID, out.Task.Text)
			return nil
		},
	}
	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d%s\n", out.Task.ID, formatTaskLine(c.AppConfig.Display, out.Task))
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		Format string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos",
		Long: `Display todos in insertion order.

Examples:
  # All todos
  todo list

  # Only pending or only completed todos
  todo list --filter pending
  todo list -f completed

  # Machine readable output
  todo list --format json
  todo list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseTaskFilter(opts.Filter)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(opts.Format)
			if err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			return printTaskList(cmd.OutOrStdout(), format, c.AppConfig.Display, out.Tasks)
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "all", "Filter: all, pending or completed")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text, json or yaml")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show total, completed and pending counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TaskStatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), out.Stats)
			return nil
		},
	}
	return cmd
}

// newTaskCommands returns the task management commands shared by the root command and the shell.
func newTaskCommands(c *app.Container) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(c),
		newToggleCommand(c),
		newRmCommand(c),
		newShowCommand(c),
		newListCommand(c),
		newStatsCommand(c),
	}
}
