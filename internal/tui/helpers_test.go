package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/infra/memstore"
)

// newTestModel returns a sized model over a registry holding texts, with todos loaded.
func newTestModel(texts ...string) (*Model, *app.Container) {
	c := app.NewWithDeps(app.Config{}, memstore.New(), nil, nil)
	for _, text := range texts {
		c.Tasks.Insert(text)
	}
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	run(m, m.Init())
	return m, c
}

// run executes cmd and feeds TUI messages back into the model until none is produced.
func run(m *Model, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			return
		}
		_, cmd = m.Update(msg)
	}
}

// keyMsg builds a key message for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and returns the resulting command without running it.
func press(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(keyMsg(s))
	return cmd
}
