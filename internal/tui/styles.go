package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Pending   lipgloss.Color
	Completed lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Completed: lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Todo list
	TaskID             lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleDone      lipgloss.Style
	SelectionIndicator lipgloss.Style
	StatusPending      lipgloss.Style
	StatusCompleted    lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusStyle returns the glyph style for a todo's completion state.
func (s Styles) StatusStyle(completed bool) lipgloss.Style {
	if completed {
		return s.StatusCompleted
	}
	return s.StatusPending
}
