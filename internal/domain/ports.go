package domain

// TaskRepository is the task registry.
// Implementations own an ordered collection and a monotonically increasing id counter.
type TaskRepository interface {
	// Insert appends a pending task with the next id and returns it.
	Insert(text string) Task

	// Toggle flips the completion flag of the task. Returns a NotFoundError if absent.
	Toggle(id int) error

	// Remove detaches the task and returns it. Returns a NotFoundError if absent.
	Remove(id int) (Task, error)

	// Get returns a copy of the task. Returns a NotFoundError if absent.
	Get(id int) (Task, error)

	// List returns copies of the tasks matching filter in insertion order.
	List(filter TaskFilter) []Task
}

// Logger writes operational logs.
// taskID 0 means the entry is not tied to a task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the default template to the project config path.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig writes the default template to the global config path.
	InitGlobalConfig(cfg *Config) error
}
