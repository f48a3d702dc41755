// Package domain contains core business entities and interfaces.
package domain

// Task represents a single todo item held by the registry.
// Fields are ordered to minimize memory padding.
type Task struct {
	Text      string `json:"text" yaml:"text"`           // Description (may be empty)
	ID        int    `json:"id" yaml:"id"`               // Assigned by the registry, never reused
	Completed bool   `json:"completed" yaml:"completed"` // Completion flag
}

// NewTask returns a pending task with the given ID and text.
func NewTask(id int, text string) Task {
	return Task{
		ID:   id,
		Text: text,
	}
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// IsCompleted returns true if the task is marked completed.
func (t *Task) IsCompleted() bool {
	return t.Completed
}
