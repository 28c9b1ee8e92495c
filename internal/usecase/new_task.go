// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title string   // Task title (required)
	Steps []string // Explicit steps (optional)
	UseAI bool     // Ask the decomposer for steps, appended after explicit ones
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks      domain.TaskRepository
	decomposer domain.Decomposer
	ids        domain.IDGenerator
	clock      domain.Clock
	logger     domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(
	tasks domain.TaskRepository,
	decomposer domain.Decomposer,
	ids domain.IDGenerator,
	clock domain.Clock,
	logger domain.Logger,
) *NewTask {
	return &NewTask{
		tasks:      tasks,
		decomposer: decomposer,
		ids:        ids,
		clock:      clock,
		logger:     logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(ctx context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	// Validate before asking the decomposer
	probe, err := domain.NewTask("", in.Title, uc.clock.Now(), nil)
	if err != nil {
		return nil, err
	}

	texts := append([]string(nil), in.Steps...)
	if in.UseAI && uc.decomposer != nil {
		texts = append(texts, uc.decomposer.Decompose(ctx, probe.Title)...)
	}

	taskID := uc.ids.NewID()
	steps := make([]domain.Step, 0, len(texts))
	for _, text := range texts {
		steps = append(steps, domain.Step{ID: uc.ids.NewID(), Text: text})
	}

	task, err := domain.NewTask(taskID, probe.Title, probe.CreatedAt, steps)
	if err != nil {
		return nil, err
	}

	// Save task
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	// Log task creation
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created %s: %q (%d steps)", task.ID, task.Title, len(task.Steps)))
	}

	return &NewTaskOutput{Task: task}, nil
}
