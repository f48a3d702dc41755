package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Pagination string // Optional pagination info (e.g., "1/3")
	KeyHints   []KeyHint
	Stats      domain.Stats
	Filter     domain.TaskFilter
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := lipgloss.NewStyle().Foreground(Colors.Muted)

	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	rightContent := mutedStyle.Render(formatStatsSummary(info.Stats, info.Filter))
	if info.Pagination != "" {
		rightContent = info.Pagination + "  " + rightContent
	}

	contentWidth := s.width - 2 // Account for padding
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := contentWidth - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := contentWidth - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	return s.styles.Footer.Width(s.width).Render(content + strings.Repeat(" ", spacing) + rightContent)
}

// formatStatsSummary renders the counters and the active filter.
func formatStatsSummary(stats domain.Stats, filter domain.TaskFilter) string {
	return fmt.Sprintf("total %d · completed %d · pending %d · filter:%s",
		stats.Total, stats.Completed, stats.Pending, filter)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{
		Stats:  m.stats,
		Filter: m.filter,
	}
	if m.taskList.Paginator.TotalPages > 1 {
		info.Pagination = m.taskList.Paginator.View()
	}

	switch m.mode {
	case ModeNormal:
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "n", Desc: "new"},
			{Key: "space", Desc: "toggle"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "filter"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeInput:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "create"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeConfirm:
		info.KeyHints = []KeyHint{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
		}
	case ModeHelp:
		info.KeyHints = []KeyHint{
			{Key: "?", Desc: "close help"},
		}
	}

	return info
}
