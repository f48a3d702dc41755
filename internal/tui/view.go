package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main todo list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.viewInput())
		b.WriteString("\n")
	}

	// Error message (if any), shown until the next key
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the header with "Todos" and the visible count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Todos")

	countText := fmt.Sprintf("%s · showing %d of %d", m.filter, len(m.tasks), m.stats.Total)
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 6 // padding
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewTaskList renders the todo list or the empty state.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}
	return m.taskList.View()
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString(m.styles.Footer.Render("  No todos found"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to add one"))
	return b.String()
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	if m.confirmAction == ConfirmNone {
		return ""
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).
		Render(fmt.Sprintf("Delete todo #%d?", m.confirmTaskID))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.FooterKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewInput renders the new todo dialog.
func (m *Model) viewInput() string {
	title := m.styles.DialogTitle.Render("◆ New Todo")
	label := m.styles.InputPrompt.Render("Text")
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", label, m.textInput.View(), "", hint)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the status line.
func (m *Model) viewFooter() string {
	return NewStatusLine(m.width-4, &m.styles).Render(m.GetStatusInfo())
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.help.View(m.keys))

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(content) + "\n\n" + m.viewFooter()
}
