package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// InitConfigInput contains the parameters for creating a config file.
type InitConfigInput struct {
	Global bool // Write the global file instead of the project file
}

// InitConfigOutput contains the written path.
type InitConfigOutput struct {
	Path string
}

// InitConfig is the use case for writing the default config template.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{manager: manager}
}

// Execute writes the default template. Returns domain.ErrConfigExists if the file is present.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := domain.NewDefaultConfig()
	if in.Global {
		if err := uc.manager.InitGlobalConfig(cfg); err != nil {
			return nil, err
		}
		return &InitConfigOutput{Path: uc.manager.GetGlobalConfigInfo().Path}, nil
	}
	if err := uc.manager.InitProjectConfig(cfg); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: uc.manager.GetProjectConfigInfo().Path}, nil
}
