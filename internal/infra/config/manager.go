package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the global configuration file.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/focus-pulse)
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{globalConfDir: defaultGlobalConfigDir()}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{globalConfDir: globalConfDir}
}

// ConfigInfo returns information about the config file.
func (m *Manager) ConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	_, err := os.Stat(path)
	return domain.ConfigInfo{
		Path:   path,
		Exists: err == nil,
	}
}

// InitConfig writes the commented config template.
// An existing file is only replaced when force is set.
func (m *Manager) InitConfig(force bool) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
