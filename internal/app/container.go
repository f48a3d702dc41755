// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ProjectDir string // Directory searched for .todo.toml
	GlobalDir  string // Global config directory (e.g., ~/.config/todo)
	LogPath    string // Resolved log file path (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Loaded configuration (never nil)
	AppConfig *domain.Config

	// closer releases the logger file, if any.
	closer io.Closer

	// Paths
	Config Config
}

// New creates a new Container for the given working directory.
// Configuration is loaded, the registry is created empty and then seeded from [tasks] seed.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		ProjectDir: dir,
		GlobalDir:  loader.GlobalDir(),
		LogPath:    appConfig.Log.File,
	}
	if cfg.LogPath == "" && cfg.GlobalDir != "" {
		cfg.LogPath = domain.DefaultLogPath(cfg.GlobalDir)
	}

	logger := logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Tasks:         memstore.New(),
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(dir),
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}

	if err := c.seed(); err != nil {
		_ = c.Close()
		return nil, err
	}

	for _, w := range appConfig.Warnings {
		logger.Warn(0, "config", w)
	}
	logger.Debug(0, "app", fmt.Sprintf("started in %s", dir))

	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil appConfig is replaced by the default config; a nil logger discards entries.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, appConfig *domain.Config, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:     tasks,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// seed inserts the configured seed tasks.
func (c *Container) seed() error {
	if len(c.AppConfig.Tasks.Seed) == 0 {
		return nil
	}
	_, err := c.SeedTasksUseCase().Execute(context.Background(), usecase.SeedTasksInput{
		Texts: c.AppConfig.Tasks.Seed,
	})
	return err
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Tasks, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks)
}

// SeedTasksUseCase returns a new SeedTasks use case.
func (c *Container) SeedTasksUseCase() *usecase.SeedTasks {
	return usecase.NewSeedTasks(c.Tasks, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
