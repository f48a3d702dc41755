package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowConfigInput contains the parameters for displaying configuration.
type ShowConfigInput struct {
	IgnoreProject bool // Skip the project file (global and defaults only)
}

// ShowConfigOutput contains the config sources and the merged result.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config
	ProjectConfig   domain.ConfigInfo
	GlobalConfig    domain.ConfigInfo
}

// ShowConfig is the use case for displaying configuration.
type ShowConfig struct {
	manager domain.ConfigManager
	loader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(manager domain.ConfigManager, loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		manager: manager,
		loader:  loader,
	}
}

// Execute returns the config file locations and the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	load := uc.loader.Load
	if in.IgnoreProject {
		load = uc.loader.LoadGlobal
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		ProjectConfig:   uc.manager.GetProjectConfigInfo(),
		GlobalConfig:    uc.manager.GetGlobalConfigInfo(),
	}, nil
}
