// Package jsonstore provides JSON file-based repositories for tasks, the
// ledger and the profile.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// File names inside the data directory.
const (
	TasksFile   = "tasks.json"
	LedgerFile  = "ledger.json"
	ProfileFile = "profile.json"
)

// tasksData represents the tasks file structure.
type tasksData struct {
	Tasks []*domain.Task `json:"tasks"` // Newest first
}

// Store implements the task, ledger and profile repositories on top of one
// JSON file per record.
type Store struct {
	tasks   *document[tasksData]
	ledger  *document[domain.Ledger]
	profile *document[domain.Profile]
	dir     string
}

// New creates a new Store rooted at dir.
// The directory does not need to exist; it will be created on first write.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		tasks: newDocument(filepath.Join(dir, TasksFile), func() *tasksData {
			return &tasksData{Tasks: []*domain.Task{}}
		}),
		ledger:  newDocument(filepath.Join(dir, LedgerFile), domain.NewLedger),
		profile: newDocument(filepath.Join(dir, ProfileFile), func() *domain.Profile { return &domain.Profile{} }),
	}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// === Tasks ===

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.tasks.withLock(func(data *tasksData) error {
		if i := indexOf(data.Tasks, id); i >= 0 {
			task = data.Tasks[i]
		}
		return nil
	})
	return task, err
}

// List retrieves all tasks, newest first.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.tasks.withLock(func(data *tasksData) error {
		tasks = data.Tasks
		return nil
	})
	return tasks, err
}

// Save creates or updates a task. New tasks go to the front of the list.
func (s *Store) Save(task *domain.Task) error {
	return s.tasks.withLockWrite(func(data *tasksData) error {
		if i := indexOf(data.Tasks, task.ID); i >= 0 {
			data.Tasks[i] = task
			return nil
		}
		data.Tasks = append([]*domain.Task{task}, data.Tasks...)
		return nil
	})
}

// Update applies fn to a stored task and writes the result.
func (s *Store) Update(id string, fn func(*domain.Task) error) error {
	return s.tasks.withLockWrite(func(data *tasksData) error {
		i := indexOf(data.Tasks, id)
		if i < 0 {
			return domain.ErrTaskNotFound
		}
		return fn(data.Tasks[i])
	})
}

// Delete removes a task by ID.
func (s *Store) Delete(id string) error {
	return s.tasks.withLockWrite(func(data *tasksData) error {
		i := indexOf(data.Tasks, id)
		if i < 0 {
			return domain.ErrTaskNotFound
		}
		data.Tasks = append(data.Tasks[:i], data.Tasks[i+1:]...)
		return nil
	})
}

func indexOf(tasks []*domain.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// === Ledger ===

// LoadLedger returns the stored ledger, or the first-run ledger if none exists.
func (s *Store) LoadLedger() (*domain.Ledger, error) {
	var ledger *domain.Ledger
	err := s.ledger.withLock(func(data *domain.Ledger) error {
		if err := normalizeLedger(data); err != nil {
			return err
		}
		ledger = data
		return nil
	})
	return ledger, err
}

// UpdateLedger applies fn to the ledger under an exclusive lock.
// Nothing is written if fn fails or leaves the ledger invalid.
func (s *Store) UpdateLedger(fn func(*domain.Ledger) error) error {
	return s.ledger.withLockWrite(func(data *domain.Ledger) error {
		if err := normalizeLedger(data); err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return err
		}
		return data.Validate()
	})
}

func normalizeLedger(l *domain.Ledger) error {
	if l.Plants == nil {
		l.Plants = []domain.Plant{}
	}
	if l.Sessions == nil {
		l.Sessions = []domain.FocusSession{}
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	return nil
}

// === Profile ===

// LoadProfile returns the stored profile, or nil if nobody is logged in.
func (s *Store) LoadProfile() (*domain.Profile, error) {
	var profile *domain.Profile
	err := s.profile.withLock(func(data *domain.Profile) error {
		if data.Name != "" {
			profile = data
		}
		return nil
	})
	return profile, err
}

// SaveProfile stores the profile.
func (s *Store) SaveProfile(p *domain.Profile) error {
	return s.profile.withLockWrite(func(data *domain.Profile) error {
		*data = *p
		return nil
	})
}

// ClearProfile removes the stored profile.
func (s *Store) ClearProfile() error {
	return s.profile.remove()
}

// Ledger returns a view of the store that satisfies domain.LedgerRepository.
func (s *Store) Ledger() domain.LedgerRepository {
	return ledgerView{s}
}

// ledgerView adapts the store's ledger methods to domain.LedgerRepository.
// Store itself cannot satisfy both repositories because they share Update.
type ledgerView struct{ s *Store }

func (v ledgerView) Load() (*domain.Ledger, error) { return v.s.LoadLedger() }
func (v ledgerView) Update(fn func(*domain.Ledger) error) error { return v.s.UpdateLedger(fn) }

// Initialize creates the data directory if it doesn't exist.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// Ensure Store implements the repositories.
var (
	_ domain.TaskRepository    = (*Store)(nil)
	_ domain.ProfileRepository = (*Store)(nil)
	_ domain.LedgerRepository  = ledgerView{}
)
