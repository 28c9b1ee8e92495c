package domain

import (
	"context"
	"time"
)

// TaskRepository manages task persistence.
// The collection is ordered newest first.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// List retrieves all tasks in collection order.
	List() ([]*Task, error)

	// Save creates or updates a task. New tasks are placed at the front.
	Save(task *Task) error

	// Update applies fn to the stored task under the store's write lock.
	// Returns ErrTaskNotFound if the task does not exist; if fn returns an
	// error nothing is written.
	Update(id string, fn func(*Task) error) error

	// Delete removes a task by ID.
	Delete(id string) error
}

// LedgerRepository manages the economy ledger.
type LedgerRepository interface {
	// Load returns a snapshot of the ledger (defaults when nothing is stored).
	Load() (*Ledger, error)

	// Update applies fn to the ledger under an exclusive lock and persists the
	// result. If fn returns an error the ledger is left untouched.
	Update(fn func(*Ledger) error) error
}

// ProfileRepository manages the logged-in user's profile.
type ProfileRepository interface {
	// LoadProfile returns the stored profile, or nil if nobody is logged in.
	LoadProfile() (*Profile, error)

	// SaveProfile stores the profile.
	SaveProfile(p *Profile) error

	// ClearProfile removes the stored profile.
	ClearProfile() error
}

// Decomposer breaks a task title into short actionable steps.
// Implementations never fail; they fall back to a fixed list instead.
type Decomposer interface {
	Decompose(ctx context.Context, title string) []string
}

// IDGenerator produces unique entity IDs.
type IDGenerator interface {
	NewID() string
}

// Logger records application events by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults merged with the config file).
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// ConfigInfo returns information about the config file.
	ConfigInfo() ConfigInfo

	// InitConfig writes the config template. Returns ErrConfigExists unless force is set.
	InitConfig(force bool) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
