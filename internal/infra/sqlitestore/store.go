// Package sqlitestore provides SQLite-backed repositories for tasks, the
// ledger and the profile.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/focus-pulse/internal/domain"

	_ "modernc.org/sqlite"
)

// FileName is the database file name inside the data directory.
const FileName = "pulse.db"

// Record names in the records table.
const (
	recordLedger  = "ledger"
	recordProfile = "profile"
)

// Store implements the task, ledger and profile repositories on SQLite.
// Every write runs in an IMMEDIATE transaction so concurrent processes
// serialize on the database lock.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := New(db)
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return s, nil
}

// New wraps an open database whose schema is already in place.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	queries := []string{`
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		body JSON NOT NULL
	);`, `
	CREATE TABLE IF NOT EXISTS records (
		name TEXT PRIMARY KEY,
		body JSON NOT NULL
	);`}
	for _, q := range queries {
		if _, err := s.db.ExecContext(context.Background(), q); err != nil {
			return err
		}
	}
	return nil
}

// withTx runs fn in a transaction and commits only if fn succeeds.
func (s *Store) withTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// === Tasks ===

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*domain.Task, error) {
	return getTask(s.db, id)
}

func getTask(q queryer, id string) (*domain.Task, error) {
	var body string
	err := q.QueryRowContext(context.Background(), `SELECT body FROM tasks WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}

	var task domain.Task
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		return nil, fmt.Errorf("parse task %s: %w", id, err)
	}
	return &task, nil
}

// List retrieves all tasks, newest first.
func (s *Store) List() ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(context.Background(), `SELECT id, body FROM tasks ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []*domain.Task{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		var task domain.Task
		if err := json.Unmarshal([]byte(body), &task); err != nil {
			return nil, fmt.Errorf("parse task %s: %w", id, err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save creates or updates a task. New tasks go to the front of the list.
func (s *Store) Save(task *domain.Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	query := `
	INSERT INTO tasks (id, seq, body)
	VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks), ?)
	ON CONFLICT(id) DO UPDATE SET body = excluded.body`
	if _, err := s.db.ExecContext(context.Background(), query, task.ID, string(body)); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Update applies fn to a stored task and writes the result.
func (s *Store) Update(id string, fn func(*domain.Task) error) error {
	return s.withTx(func(tx *sql.Tx) error {
		task, err := getTask(tx, id)
		if err != nil {
			return err
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}
		if err := fn(task); err != nil {
			return err
		}
		body, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("marshal task: %w", err)
		}
		_, err = tx.ExecContext(context.Background(), `UPDATE tasks SET body = ? WHERE id = ?`, string(body), id)
		return err
	})
}

// Delete removes a task by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.ExecContext(context.Background(), `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// === Records ===

// getRecord decodes the named record into v. Returns false if it does not exist.
func getRecord(q queryer, name string, v any) (bool, error) {
	var body string
	err := q.QueryRowContext(context.Background(), `SELECT body FROM records WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}

func putRecord(tx *sql.Tx, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	query := `
	INSERT INTO records (name, body) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET body = excluded.body`
	if _, err := tx.ExecContext(context.Background(), query, name, string(body)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// === Ledger ===

func loadLedger(q queryer) (*domain.Ledger, error) {
	ledger := domain.NewLedger()
	if _, err := getRecord(q, recordLedger, ledger); err != nil {
		return nil, err
	}
	if ledger.Plants == nil {
		ledger.Plants = []domain.Plant{}
	}
	if ledger.Sessions == nil {
		ledger.Sessions = []domain.FocusSession{}
	}
	if err := ledger.Validate(); err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return ledger, nil
}

// LoadLedger returns the stored ledger, or the first-run ledger if none exists.
func (s *Store) LoadLedger() (*domain.Ledger, error) {
	return loadLedger(s.db)
}

// UpdateLedger applies fn to the ledger inside a transaction.
// Nothing is written if fn fails or leaves the ledger invalid.
func (s *Store) UpdateLedger(fn func(*domain.Ledger) error) error {
	return s.withTx(func(tx *sql.Tx) error {
		ledger, err := loadLedger(tx)
		if err != nil {
			return err
		}
		if err := fn(ledger); err != nil {
			return err
		}
		if err := ledger.Validate(); err != nil {
			return err
		}
		return putRecord(tx, recordLedger, ledger)
	})
}

// Ledger returns a view of the store that satisfies domain.LedgerRepository.
func (s *Store) Ledger() domain.LedgerRepository {
	return ledgerView{s}
}

type ledgerView struct{ s *Store }

func (v ledgerView) Load() (*domain.Ledger, error) { return v.s.LoadLedger() }
func (v ledgerView) Update(fn func(*domain.Ledger) error) error { return v.s.UpdateLedger(fn) }

// === Profile ===

// LoadProfile returns the stored profile, or nil if nobody is logged in.
func (s *Store) LoadProfile() (*domain.Profile, error) {
	var p domain.Profile
	ok, err := getRecord(s.db, recordProfile, &p)
	if err != nil || !ok || p.Name == "" {
		return nil, err
	}
	return &p, nil
}

// SaveProfile stores the profile.
func (s *Store) SaveProfile(p *domain.Profile) error {
	return s.withTx(func(tx *sql.Tx) error {
		return putRecord(tx, recordProfile, p)
	})
}

// ClearProfile removes the stored profile.
func (s *Store) ClearProfile() error {
	if _, err := s.db.ExecContext(context.Background(), `DELETE FROM records WHERE name = ?`, recordProfile); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

// Ensure Store implements the repositories.
var (
	_ domain.TaskRepository    = (*Store)(nil)
	_ domain.ProfileRepository = (*Store)(nil)
	_ domain.LedgerRepository  = ledgerView{}
)
