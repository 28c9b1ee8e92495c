package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase/shared"
)

// ToggleStepInput contains the parameters for toggling a step.
type ToggleStepInput struct {
	TaskID  string // Task ID or unique prefix
	StepRef string // 1-based step position, step ID or unique prefix
}

// ToggleStepOutput contains the result of toggling a step.
// Fields are ordered to minimize memory padding.
type ToggleStepOutput struct {
	Task   *domain.Task
	Ledger *domain.Ledger // Balances after crediting; nil when nothing was earned
	Toggle domain.StepToggle
	Reward domain.Reward
}

// ToggleStep is the use case for flipping a step's completion.
type ToggleStep struct {
	tasks  domain.TaskRepository
	ledger domain.LedgerRepository
	logger domain.Logger
}

// NewToggleStep creates a new ToggleStep use case.
func NewToggleStep(tasks domain.TaskRepository, ledger domain.LedgerRepository, logger domain.Logger) *ToggleStep {
	return &ToggleStep{
		tasks:  tasks,
		ledger: ledger,
		logger: logger,
	}
}

// Execute toggles the step and credits the reward it earned.
// The task is saved before the ledger is credited: if the save fails
// nothing is credited.
func (uc *ToggleStep) Execute(_ context.Context, in ToggleStepInput) (*ToggleStepOutput, error) {
	task, err := shared.GetTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	out := &ToggleStepOutput{}
	err = uc.tasks.Update(task.ID, func(t *domain.Task) error {
		step, err := shared.FindStep(t, in.StepRef)
		if err != nil {
			return err
		}
		toggle, err := t.ToggleStep(step.ID)
		if err != nil {
			return err
		}
		out.Toggle = toggle
		out.Task = t.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle step: %w", err)
	}

	out.Reward = out.Toggle.Reward()
	if out.Reward.IsZero() {
		return out, nil
	}

	err = uc.ledger.Update(func(l *domain.Ledger) error {
		l.Grant(out.Reward)
		out.Ledger = l.Clone()
		return nil
	})
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("ledger", fmt.Sprintf("reward for task %s lost: %v", task.ID, err))
		}
		return nil, fmt.Errorf("credit reward: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("ledger", fmt.Sprintf("credited %d coins %d seeds (task %s)", out.Reward.Coins, out.Reward.Seeds, task.ID))
	}

	return out, nil
}
