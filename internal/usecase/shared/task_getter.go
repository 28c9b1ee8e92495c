// Package shared contains helpers used by several use cases.
package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// GetTask retrieves a task by full ID or unique ID prefix and returns
// domain.ErrTaskNotFound if nothing matches.
// This centralizes the common pattern of:
//
//	task, err := repo.Get(taskID)
//	if err != nil { return nil, fmt.Errorf("get task: %w", err) }
//	if task == nil { return nil, domain.ErrTaskNotFound }
func GetTask(repo domain.TaskRepository, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrTaskNotFound
	}

	task, err := repo.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task != nil {
		return task, nil
	}

	tasks, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	var match *domain.Task
	for _, t := range tasks {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q: %w", ref, domain.ErrAmbiguousID)
		}
		match = t
	}
	if match == nil {
		return nil, domain.ErrTaskNotFound
	}
	return match, nil
}

// FindStep resolves a step reference within a task. The reference is either
// a 1-based position or a full or unique-prefix step ID.
func FindStep(task *domain.Task, ref string) (domain.Step, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(task.Steps) {
		return task.Steps[n-1], nil
	}

	i, err := matchPrefix(len(task.Steps), func(i int) string { return task.Steps[i].ID }, ref)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.Step{}, domain.ErrStepNotFound
		}
		return domain.Step{}, err
	}
	return task.Steps[i], nil
}

// FindPlant resolves a plant reference within the ledger. The reference is
// either a 1-based position in planting order or a full or unique-prefix ID.
func FindPlant(ledger *domain.Ledger, ref string) (domain.Plant, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ledger.Plants) {
		return ledger.Plants[n-1], nil
	}

	i, err := matchPrefix(len(ledger.Plants), func(i int) string { return ledger.Plants[i].ID }, ref)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.Plant{}, domain.ErrPlantNotFound
		}
		return domain.Plant{}, err
	}
	return ledger.Plants[i], nil
}

var errNoMatch = errors.New("no match")

// matchPrefix returns the index of the only ID equal to or prefixed by ref.
func matchPrefix(n int, idAt func(int) string, ref string) (int, error) {
	if ref == "" {
		return -1, errNoMatch
	}
	found := -1
	for i := 0; i < n; i++ {
		id := idAt(i)
		if id == ref {
			return i, nil
		}
		if !strings.HasPrefix(id, ref) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%q: %w", ref, domain.ErrAmbiguousID)
		}
		found = i
	}
	if found < 0 {
		return -1, errNoMatch
	}
	return found, nil
}
