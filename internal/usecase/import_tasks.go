package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// ImportTasksInput contains the parameters for creating tasks from a file.
type ImportTasksInput struct {
	Content []byte // YAML file content
	DryRun  bool   // If true, parse and validate without creating tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created tasks (or tasks that would be created in dry-run mode), in file order
}

// ImportTasks is the use case for creating tasks from a YAML file.
type ImportTasks struct {
	tasks  domain.TaskRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates tasks from the given file content.
// The first task of the file ends up at the top of the list.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	// Parse task drafts from content
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	tasks := make([]*domain.Task, 0, len(drafts))
	for i, draft := range drafts {
		task, err := uc.build(draft, now)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}

	// If dry-run, return the built tasks without saving
	if in.DryRun {
		return &ImportTasksOutput{Tasks: tasks}, nil
	}

	// Save in reverse so file order is preserved under newest-first insertion
	for i := len(tasks) - 1; i >= 0; i-- {
		if err := uc.tasks.Save(tasks[i]); err != nil {
			return nil, fmt.Errorf("save task %q: %w", tasks[i].Title, err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d tasks", len(tasks)))
	}

	return &ImportTasksOutput{Tasks: tasks}, nil
}

func (uc *ImportTasks) build(draft domain.TaskDraft, now time.Time) (*domain.Task, error) {
	taskID := uc.ids.NewID()
	steps := make([]domain.Step, 0, len(draft.Steps))
	for _, text := range draft.Steps {
		steps = append(steps, domain.Step{ID: uc.ids.NewID(), Text: text})
	}
	return domain.NewTask(taskID, draft.Title, now, steps)
}
