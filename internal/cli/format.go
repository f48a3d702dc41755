package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// outputFormat selects how task lists are printed.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML:
		return formatYAML, nil
	}
	return "", fmt.Errorf("invalid format %q (want text, json or yaml)", s)
}

// formatTaskLine renders a task as "  [glyph] text".
func formatTaskLine(d domain.DisplayConfig, t domain.Task) string {
	return fmt.Sprintf("  [%s] %s", d.Glyph(t), t.Text)
}

// printAllTodos prints the "All Todos:" block.
func printAllTodos(w io.Writer, d domain.DisplayConfig, tasks []domain.Task) {
	_, _ = fmt.Fprintln(w, "All Todos:")
	for _, t := range tasks {
		_, _ = fmt.Fprintln(w, formatTaskLine(d, t))
	}
}

// printStats prints the stats block.
func printStats(w io.Writer, s domain.Stats) {
	_, _ = fmt.Fprintln(w, "Stats:")
	_, _ = fmt.Fprintf(w, "  Total: %d\n", s.Total)
	_, _ = fmt.Fprintf(w, "  Completed: %d\n", s.Completed)
	_, _ = fmt.Fprintf(w, "  Pending: %d\n", s.Pending)
}

// printTexts prints the "Todo texts:" block.
func printTexts(w io.Writer, tasks []domain.Task) {
	_, _ = fmt.Fprintln(w, "Todo texts:")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "  - %s\n", t.Text)
	}
}

// printTaskTable prints tasks as tab-aligned ID, STATUS, TEXT columns.
func printTaskTable(w io.Writer, d domain.DisplayConfig, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No todos found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tTEXT")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t[%s]\t%s\n", t.ID, d.Glyph(t), t.Text)
	}
	_ = tw.Flush()
}

// printTaskList prints tasks in the requested format.
func printTaskList(w io.Writer, format outputFormat, d domain.DisplayConfig, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		printTaskTable(w, d, tasks)
	}
	return nil
}
