package tui

import "github.com/runoshun/todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when todos are loaded from the registry.
type MsgTasksLoaded struct {
	Tasks []domain.Task // Todos matching the current filter
	Stats domain.Stats  // Counters over the whole registry
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new todo is created.
type MsgTaskCreated struct {
	TaskID int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskToggled is sent when a todo is toggled.
type MsgTaskToggled struct {
	Task domain.Task // The todo after the flip
}

func (MsgTaskToggled) sealed() {}

// MsgTaskRemoved is sent when a todo is removed.
type MsgTaskRemoved struct {
	TaskID int
}

func (MsgTaskRemoved) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
