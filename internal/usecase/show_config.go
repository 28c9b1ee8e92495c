package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Config *domain.Config    // Effective configuration
	File   domain.ConfigInfo // Global config file info
}

// ShowConfig displays the effective configuration and where it comes from.
type ShowConfig struct {
	configLoader  domain.ConfigLoader
	configManager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configLoader domain.ConfigLoader, configManager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{
		configLoader:  configLoader,
		configManager: configManager,
	}
}

// Execute loads the configuration and file information.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowConfigOutput{
		Config: cfg,
		File:   uc.configManager.ConfigInfo(),
	}, nil
}
