package cli

import (
	"fmt"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// Demo defaults.
var demoTexts = []string{
	"Learn Rust",
	"Understand ownership",
	"Master pattern matching",
}

const demoToggleID = 1

// newDemoCommand creates the demo command.
func newDemoCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Tasks  []string
		Toggle int
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demo sequence",
		Long: `Add todos, toggle one of them, then print the list, the stats,
the first todo and all todo texts.

A failed toggle is reported on stderr and the run continues.

Examples:
  todo demo
  todo demo --task "Write tests" --task "Ship it" --toggle 2
  todo demo --toggle 99`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, c, opts.Tasks, opts.Toggle)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Tasks, "task", demoTexts, "Todo text to add (repeatable)")
	cmd.Flags().IntVar(&opts.Toggle, "toggle", demoToggleID, "Id of the todo to toggle")

	return cmd
}

// runDemo performs the demo sequence against the container's registry.
func runDemo(cmd *cobra.Command, c *app.Container, texts []string, toggleID int) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	display := c.AppConfig.Display

	addTask := c.AddTaskUseCase()
	for _, text := range texts {
		if _, err := addTask.Execute(ctx, usecase.AddTaskInput{Text: text}); err != nil {
			return err
		}
	}

	all, err := c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: domain.FilterAll})
	if err != nil {
		return err
	}
	printAllTodos(w, display, all.Tasks)

	if _, err := c.ToggleTaskUseCase().Execute(ctx, usecase.ToggleTaskInput{TaskID: toggleID}); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	} else {
		_, _ = fmt.Fprintf(w, "\nToggled todo %d\n", toggleID)
	}

	stats, err := c.TaskStatsUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	printStats(w, stats.Stats)

	// Toggling never changes order or text, so the first listing is still accurate.
	_, _ = fmt.Fprintln(w)
	if len(all.Tasks) > 0 {
		_, _ = fmt.Fprintf(w, "First todo: %s\n", all.Tasks[0].Text)
	} else {
		_, _ = fmt.Fprintln(w, "No todos found")
	}

	_, _ = fmt.Fprintln(w)
	printTexts(w, all.Tasks)
	return nil
}
