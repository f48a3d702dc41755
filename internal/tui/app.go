package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	tasks []domain.Task

	// Components (structs with pointers)
	keys      KeyMap
	styles    Styles
	help      help.Model
	taskList  list.Model
	textInput textinput.Model

	// Numeric state (smaller types last)
	stats         domain.Stats
	mode          Mode
	confirmAction ConfirmAction
	filter        domain.TaskFilter
	width         int
	height        int
	confirmTaskID int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200

	display := domain.NewDefaultConfig().Display
	if c != nil && c.AppConfig != nil {
		display = c.AppConfig.Display
	}

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles, display)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container: c,
		mode:      ModeNormal,
		filter:    domain.FilterAll,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		textInput: ti,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads the filtered todos and the stats.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		stats, err := m.container.TaskStatsUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Stats: stats.Stats}
	}
}

// createTask returns a command that inserts a todo.
func (m *Model) createTask(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

// toggleTask returns a command that flips a todo.
func (m *Model) toggleTask(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Task: out.Task}
	}
}

// removeTask returns a command that removes a todo.
func (m *Model) removeTask(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RemoveTaskUseCase().Execute(context.Background(), usecase.RemoveTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskRemoved{TaskID: out.Task.ID}
	}
}

// SelectedTask returns the currently selected todo, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// updateTaskList updates the list items from tasks, keeping the cursor in range.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, len(m.tasks))
	for _, task := range m.tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
	if n := len(items); n > 0 && m.taskList.Index() >= n {
		m.taskList.Select(n - 1)
	}
}

// updateLayoutSizes resizes the list to the space left by header and footer.
func (m *Model) updateLayoutSizes() {
	// App padding (2 lines + 4 cols), header (2 lines), footer (2 lines), input or error (3 lines)
	listHeight := m.height - 9
	if listHeight < 3 {
		listHeight = 3
	}
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.help.Width = listWidth
}
