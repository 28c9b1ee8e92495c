// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables that override the [ai] api_key setting, in order of precedence.
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

// Loader loads configuration from the global TOML file and the environment.
type Loader struct {
	getenv        func(string) string
	globalConfDir string // Path to global config directory (e.g., ~/.config/focus-pulse)
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory and environment lookup. This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		globalConfDir: globalConfDir,
		getenv:        getenv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the effective configuration.
// Precedence: defaults <- config file <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		file, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if file != nil {
			base = mergeConfigs(base, file)
		}
	}

	for _, name := range apiKeyEnvVars {
		if v := l.getenv(name); v != "" {
			base.AI.APIKey = v
			break
		}
	}

	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := v.(string); ok {
						res.Store.Backend = s
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Store.Dir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "timer":
			for k, v := range m {
				switch k {
				case "default_minutes":
					if n, ok := v.(int64); ok && n > 0 {
						res.Timer.DefaultMinutes = int(n)
					} else {
						warnings = append(warnings, "invalid [timer] default_minutes: must be a positive integer")
					}
				case "presets":
					presets, ok := parsePresets(v)
					if ok {
						res.Timer.Presets = presets
					} else {
						warnings = append(warnings, "invalid [timer] presets: must be a list of positive integers")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [timer]: %s", k))
				}
			}
		case "ai":
			for k, v := range m {
				switch k {
				case "api_key":
					if s, ok := v.(string); ok {
						res.AI.APIKey = s
					}
				case "model":
					if s, ok := v.(string); ok {
						res.AI.Model = s
					}
				case "timeout":
					if s, ok := v.(string); ok {
						res.AI.Timeout = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ai]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parsePresets converts a TOML array into positive minute values.
func parsePresets(v any) ([]int, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	presets := make([]int, 0, len(list))
	for _, item := range list {
		n, ok := item.(int64)
		if !ok || n <= 0 {
			return nil, false
		}
		presets = append(presets, int(n))
	}
	return presets, true
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store: base.Store,
		Timer: base.Timer,
		AI:    base.AI,
		Log:   base.Log,
	}

	// Keep nil when neither side has warnings
	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Backend != "" {
		result.Store.Backend = override.Store.Backend
	}
	if override.Store.Dir != "" {
		result.Store.Dir = override.Store.Dir
	}
	if override.Timer.DefaultMinutes > 0 {
		result.Timer.DefaultMinutes = override.Timer.DefaultMinutes
	}
	if len(override.Timer.Presets) > 0 {
		result.Timer.Presets = append([]int(nil), override.Timer.Presets...)
	}
	if override.AI.APIKey != "" {
		result.AI.APIKey = override.AI.APIKey
	}
	if override.AI.Model != "" {
		result.AI.Model = override.AI.Model
	}
	if override.AI.Timeout != "" {
		result.AI.Timeout = override.AI.Timeout
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
