package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// document is a single JSON file guarded by an flock on a sibling lock file.
// A missing file reads as the value produced by empty.
type document[T any] struct {
	empty    func() *T
	path     string
	lockPath string
}

func newDocument[T any](path string, empty func() *T) *document[T] {
	return &document[T]{
		path:     path,
		lockPath: path + ".lock",
		empty:    empty,
	}
}

// withLock executes fn with a shared (read) lock.
func (d *document[T]) withLock(fn func(*T) error) error {
	lock, err := d.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer d.releaseLock(lock)

	data, err := d.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
// If fn returns an error the file is left untouched.
func (d *document[T]) withLockWrite(fn func(*T) error) error {
	lock, err := d.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer d.releaseLock(lock)

	data, err := d.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return d.write(data)
}

// remove deletes the file under an exclusive lock. A missing file is not an error.
func (d *document[T]) remove() error {
	lock, err := d.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer d.releaseLock(lock)

	if err := os.Remove(d.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", filepath.Base(d.path), err)
	}
	return nil
}

func (d *document[T]) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(d.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(d.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (d *document[T]) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (d *document[T]) read() (*T, error) {
	content, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return d.empty(), nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(d.path), err)
	}

	data := d.empty()
	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(d.path), err)
	}

	return data, nil
}

func (d *document[T]) write(data *T) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(d.path), err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := d.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, d.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
