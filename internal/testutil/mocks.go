// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// MockTaskRepository is a test double for domain.TaskRepository.
// It keeps tasks in insertion order and counts mutating calls.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks       []domain.Task
	GetErr      error // Forced error for Get
	NextIDN     int
	InsertCalls int
	ToggleCalls int
	RemoveCalls int
}

// NewMockTaskRepository creates a new empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{NextIDN: 1}
}

// NewMockTaskRepositoryWith creates a repository pre-filled with pending tasks.
func NewMockTaskRepositoryWith(texts ...string) *MockTaskRepository {
	m := NewMockTaskRepository()
	for _, text := range texts {
		m.Tasks = append(m.Tasks, domain.NewTask(m.NextIDN, text))
		m.NextIDN++
	}
	return m
}

// Insert appends a pending task.
func (m *MockTaskRepository) Insert(text string) domain.Task {
	m.InsertCalls++
	task := domain.NewTask(m.NextIDN, text)
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return task
}

// Toggle flips the task's completion flag.
func (m *MockTaskRepository) Toggle(id int) error {
	m.ToggleCalls++
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks[i].Toggle()
			return nil
		}
	}
	return domain.NewNotFoundError(id)
}

// Remove removes the task.
func (m *MockTaskRepository) Remove(id int) (domain.Task, error) {
	m.RemoveCalls++
	for i, t := range m.Tasks {
		if t.ID == id {
			m.Tasks = append(m.Tasks[:i:i], m.Tasks[i+1:]...)
			return t, nil
		}
	}
	return domain.Task{}, domain.NewNotFoundError(id)
}

// Get returns the task.
func (m *MockTaskRepository) Get(id int) (domain.Task, error) {
	if m.GetErr != nil {
		return domain.Task{}, m.GetErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.NewNotFoundError(id)
}

// List returns the matching tasks.
func (m *MockTaskRepository) List(filter domain.TaskFilter) []domain.Task {
	var result []domain.Task
	for _, t := range m.Tasks {
		if filter.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// String renders the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%d] [%s] %s", e.Level, e.TaskID, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) {
	m.record("DEBUG", taskID, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) {
	m.record("INFO", taskID, category, msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID int, category, msg string) {
	m.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) {
	m.record("ERROR", taskID, category, msg)
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config // Returned by LoadGlobal when set
	LoadErr      error
}

// Load returns the configured config or the default config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns GlobalConfig when set and behaves like Load otherwise.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.LoadErr == nil && m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	Project     domain.ConfigInfo
	Global      domain.ConfigInfo
	InitProject bool
	InitGlobal  bool
}

// GetProjectConfigInfo returns the configured project info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.Project
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(_ *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitProject = true
	return nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitGlobal = true
	return nil
}
