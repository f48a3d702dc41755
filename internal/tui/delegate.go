package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles  Styles
	display domain.DisplayConfig
}

func newTaskDelegate(styles Styles, display domain.DisplayConfig) taskDelegate {
	return taskDelegate{styles: styles, display: display}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	glyph := "[" + d.display.Glyph(task) + "]"

	// indicator(1) + gaps + id(3) + glyph
	prefixWidth := 1 + 1 + 3 + 2 + runewidth.StringWidth(glyph) + 1
	maxTextLen := m.Width() - prefixWidth - 2
	if maxTextLen < 10 {
		maxTextLen = 10
	}

	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen, "...")
	}

	titleStyle := d.styles.TaskTitle
	if task.Completed {
		titleStyle = d.styles.TaskTitleDone
	}
	indicatorStyle := d.styles.SelectionIndicator
	idStyle := d.styles.TaskID
	glyphStyle := d.styles.StatusStyle(task.Completed)
	if selected {
		indicatorStyle = indicatorStyle.Bold(true)
		idStyle = idStyle.Bold(true)
		glyphStyle = glyphStyle.Bold(true)
		titleStyle = titleStyle.Bold(true)
	}

	line := indicatorStyle.Render(indicatorChar) + " " +
		idStyle.Render(idStr) + "  " +
		glyphStyle.Render(glyph) + " " +
		titleStyle.Render(text)
	_, _ = fmt.Fprint(w, line)
}
