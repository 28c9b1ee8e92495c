package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase/shared"
)

// AddStepInput contains the parameters for adding a step.
type AddStepInput struct {
	TaskID string // Task ID or unique prefix
	Text   string // Step text (required)
}

// AddStepOutput contains the result of adding a step.
type AddStepOutput struct {
	Task *domain.Task
	Step domain.Step
}

// AddStep is the use case for appending a step to a task.
type AddStep struct {
	tasks  domain.TaskRepository
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewAddStep creates a new AddStep use case.
func NewAddStep(tasks domain.TaskRepository, ids domain.IDGenerator, logger domain.Logger) *AddStep {
	return &AddStep{
		tasks:  tasks,
		ids:    ids,
		logger: logger,
	}
}

// Execute appends an open step. A complete task goes back in progress.
func (uc *AddStep) Execute(_ context.Context, in AddStepInput) (*AddStepOutput, error) {
	task, err := shared.GetTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	var out AddStepOutput
	err = uc.tasks.Update(task.ID, func(t *domain.Task) error {
		step, err := t.AddStep(uc.ids.NewID(), in.Text)
		if err != nil {
			return err
		}
		out.Step = step
		out.Task = t.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add step: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("step added to %s: %q", task.ID, out.Step.Text))
	}

	return &out, nil
}
