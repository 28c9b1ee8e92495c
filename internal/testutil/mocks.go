// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Tasks are kept newest first like the real stores.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	SaveErr   error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

// NewMockTaskRepository creates a new, empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{Tasks: []*domain.Task{}}
}

func (m *MockTaskRepository) index(id string) int {
	for i, t := range m.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if i := m.index(id); i >= 0 {
		return m.Tasks[i].Clone(), nil
	}
	return nil, nil
}

// List returns all tasks.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, len(m.Tasks))
	for i, t := range m.Tasks {
		tasks[i] = t.Clone()
	}
	return tasks, nil
}

// Save saves a task, placing new tasks at the front.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if i := m.index(task.ID); i >= 0 {
		m.Tasks[i] = task.Clone()
		return nil
	}
	m.Tasks = append([]*domain.Task{task.Clone()}, m.Tasks...)
	return nil
}

// Update applies fn to a copy and commits it only on success.
func (m *MockTaskRepository) Update(id string, fn func(*domain.Task) error) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	i := m.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	work := m.Tasks[i].Clone()
	if err := fn(work); err != nil {
		return err
	}
	m.Tasks[i] = work
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	i := m.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
	return nil
}

// MockLedgerRepository is a test double for domain.LedgerRepository.
// Update is transactional: fn runs on a copy that replaces the ledger only
// if fn succeeds and the result is valid.
type MockLedgerRepository struct {
	Ledger    *domain.Ledger
	LoadErr   error
	UpdateErr error
	Updates   int // Successful commits
	mu        sync.Mutex
}

// NewMockLedgerRepository creates a repository holding the first-run ledger.
func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{Ledger: domain.NewLedger()}
}

// Load returns a copy of the ledger.
func (m *MockLedgerRepository) Load() (*domain.Ledger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Ledger.Clone(), nil
}

// Update applies fn atomically.
func (m *MockLedgerRepository) Update(fn func(*domain.Ledger) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	work := m.Ledger.Clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := work.Validate(); err != nil {
		return err
	}
	m.Ledger = work
	m.Updates++
	return nil
}

// MockProfileRepository is a test double for domain.ProfileRepository.
type MockProfileRepository struct {
	Profile *domain.Profile
	LoadErr error
	SaveErr error
}

// LoadProfile returns the stored profile.
func (m *MockProfileRepository) LoadProfile() (*domain.Profile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Profile == nil {
		return nil, nil
	}
	p := *m.Profile
	return &p, nil
}

// SaveProfile stores the profile.
func (m *MockProfileRepository) SaveProfile(p *domain.Profile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *p
	m.Profile = &stored
	return nil
}

// ClearProfile removes the profile.
func (m *MockProfileRepository) ClearProfile() error {
	m.Profile = nil
	return nil
}

// SequentialIDs is a test double for domain.IDGenerator producing
// "<prefix>1", "<prefix>2", ...
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID returns the next ID.
func (s *SequentialIDs) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s%d", prefix, s.n)
}

// MockDecomposer is a test double for domain.Decomposer.
type MockDecomposer struct {
	Steps  []string
	Titles []string // Titles passed to Decompose
}

// Decompose records the title and returns the configured steps.
func (m *MockDecomposer) Decompose(_ context.Context, title string) []string {
	m.Titles = append(m.Titles, title)
	return append([]string(nil), m.Steps...)
}

// LogEntry is a recorded log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr error
	Info    domain.ConfigInfo
	Forced  bool // Force flag of the last InitConfig call
	Inits   int
}

// ConfigInfo returns the configured info.
func (m *MockConfigManager) ConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call and marks the config as existing.
func (m *MockConfigManager) InitConfig(force bool) error {
	m.Forced = force
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Info.Exists && !force {
		return domain.ErrConfigExists
	}
	m.Inits++
	m.Info.Exists = true
	return nil
}

// Ensure the mocks implement their interfaces.
var (
	_ domain.Clock             = (*MockClock)(nil)
	_ domain.TaskRepository    = (*MockTaskRepository)(nil)
	_ domain.LedgerRepository  = (*MockLedgerRepository)(nil)
	_ domain.ProfileRepository = (*MockProfileRepository)(nil)
	_ domain.IDGenerator       = (*SequentialIDs)(nil)
	_ domain.Decomposer        = (*MockDecomposer)(nil)
	_ domain.Logger            = (*MockLogger)(nil)
	_ domain.ConfigLoader      = (*MockConfigLoader)(nil)
	_ domain.ConfigManager     = (*MockConfigManager)(nil)
)
