package domain

import (
	_ "embed"
	"path/filepath"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the commented config file written by 'pulse config init'.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Timer    TimerConfig `toml:"timer"`
	Store    StoreConfig `toml:"store"`
	AI       AIConfig    `toml:"ai"`
	Log      LogConfig   `toml:"log"`
}

// StoreConfig holds persistence settings from the [store] section.
type StoreConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" (default) or "sqlite"
	Dir     string `toml:"dir,omitempty"`     // Data directory (default: XDG data home)
}

// TimerConfig holds focus timer settings from the [timer] section.
type TimerConfig struct {
	Presets        []int `toml:"presets,omitempty"`         // Preset durations in minutes
	DefaultMinutes int   `toml:"default_minutes,omitempty"` // Duration selected at startup
}

// AIConfig holds task decomposition settings from the [ai] section.
type AIConfig struct {
	APIKey  string `toml:"api_key,omitempty"` // Gemini API key (env GEMINI_API_KEY / API_KEY wins)
	Model   string `toml:"model,omitempty"`   // Model name
	Timeout string `toml:"timeout,omitempty"` // Request timeout, e.g. "20s"
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default configuration values.
const (
	DefaultAIModel   = "gemini-2.5-flash"
	DefaultAITimeout = 20 * time.Second
	DefaultLogLevel  = "info"
)

// Directory and file names.
const (
	AppDirName     = "focus-pulse"
	ConfigFileName = "config.toml"
	LogsDirName    = "logs"
	LogFileName    = "pulse.log"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendJSON,
		},
		Timer: TimerConfig{
			DefaultMinutes: DefaultFocusMinutes,
			Presets:        DefaultPresets(),
		},
		AI: AIConfig{
			Model:   DefaultAIModel,
			Timeout: DefaultAITimeout.String(),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// TimeoutDuration parses the AI timeout, falling back to the default.
func (c AIConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultAITimeout
	}
	return d
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DataDir returns the default data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the log file path inside a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}
