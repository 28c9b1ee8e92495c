package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
)

func TestToggleStep_Execute_CompletesTask(t *testing.T) {
	// Setup: "Clean kitchen" with three steps, zero coins
	f := newFixture()
	task := f.createTask(t, "Clean kitchen", "Clear counter", "Wash dishes", "Wipe table")
	seeds := f.ledger.Ledger.Seeds

	// Execute + Assert: each step pays 1 coin, the last one adds the bonus
	out := f.toggle(t, task.ID, "1")
	assert.Equal(t, domain.Reward{Coins: 1}, out.Reward)
	assert.Equal(t, 1, f.ledger.Ledger.Coins)

	out = f.toggle(t, task.ID, "2")
	assert.Equal(t, 2, out.Ledger.Coins)
	assert.False(t, out.Task.Completed)

	out = f.toggle(t, task.ID, "3")
	assert.Equal(t, domain.Reward{Coins: 11, Seeds: 1}, out.Reward)
	assert.True(t, out.Toggle.TaskCompleted)
	assert.True(t, out.Task.Completed)
	assert.Equal(t, 13, f.ledger.Ledger.Coins)
	assert.Equal(t, seeds+1, f.ledger.Ledger.Seeds)
	assert.Equal(t, domain.TaskComplete, f.tasks.Tasks[0].State())
}

func TestToggleStep_Execute_ReopenEarnsNothing(t *testing.T) {
	// Setup: complete a single-step task
	f := newFixture()
	task := f.createTask(t, "Call mom", "Dial")
	f.toggle(t, task.ID, "1")
	coins, seeds := f.ledger.Ledger.Coins, f.ledger.Ledger.Seeds
	updates := f.ledger.Updates

	// Execute: reopen
	out := f.toggle(t, task.ID, "1")

	// Assert: nothing taken back, ledger untouched
	assert.True(t, out.Reward.IsZero())
	assert.Nil(t, out.Ledger)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, coins, f.ledger.Ledger.Coins)
	assert.Equal(t, seeds, f.ledger.Ledger.Seeds)
	assert.Equal(t, updates, f.ledger.Updates)
}

func TestToggleStep_Execute_ToggleTwiceRestoresTask(t *testing.T) {
	f := newFixture()
	task := f.createTask(t, "Write report", "Outline", "Draft")
	before := f.tasks.Tasks[0].Clone()

	f.toggle(t, task.ID, "2")
	f.toggle(t, task.ID, "2")

	assert.Equal(t, before, f.tasks.Tasks[0])
}

func TestToggleStep_Execute_StepRefs(t *testing.T) {
	f := newFixture()
	task := f.createTask(t, "Plan trip", "Book flight", "Book hotel")
	hotel := task.Steps[1]

	tests := []struct {
		wantErr error
		name    string
		taskRef string
		stepRef string
		wantID  string
	}{
		{name: "position", taskRef: task.ID, stepRef: "1", wantID: task.Steps[0].ID},
		{name: "full step ID", taskRef: task.ID, stepRef: hotel.ID, wantID: hotel.ID},
		{name: "task prefix", taskRef: task.ID[:2], stepRef: "2", wantID: hotel.ID},
		{name: "position out of range", taskRef: task.ID, stepRef: "9", wantErr: domain.ErrStepNotFound},
		{name: "unknown step", taskRef: task.ID, stepRef: "zzz", wantErr: domain.ErrStepNotFound},
		{name: "unknown task", taskRef: "nope", stepRef: "1", wantErr: domain.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewToggleStep(f.tasks, f.ledger, f.logger)
			out, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: tt.taskRef, StepRef: tt.stepRef})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, out.Toggle.Step.ID)
		})
	}
}

func TestToggleStep_Execute_AmbiguousTaskPrefix(t *testing.T) {
	f := newFixture()
	f.createTask(t, "a", "x")
	f.createTask(t, "b", "y")
	uc := NewToggleStep(f.tasks, f.ledger, f.logger)

	// Both task IDs start with "id"
	_, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: "id", StepRef: "1"})

	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
}

func TestToggleStep_Execute_SaveFailureCreditsNothing(t *testing.T) {
	// Setup
	f := newFixture()
	task := f.createTask(t, "Call mom", "Dial")
	f.tasks.UpdateErr = assert.AnError
	uc := NewToggleStep(f.tasks, f.ledger, f.logger)

	// Execute
	_, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: task.ID, StepRef: "1"})

	// Assert
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, f.ledger.Ledger.Coins)
	assert.Equal(t, 0, f.ledger.Updates)
}

func TestToggleStep_Execute_CreditFailureIsReported(t *testing.T) {
	// Setup
	f := newFixture()
	task := f.createTask(t, "Call mom", "Dial")
	f.ledger.UpdateErr = assert.AnError
	uc := NewToggleStep(f.tasks, f.ledger, f.logger)

	// Execute
	_, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: task.ID, StepRef: "1"})

	// Assert
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "credit reward")
	require.NotEmpty(t, f.logger.Entries)
	last := f.logger.Entries[len(f.logger.Entries)-1]
	assert.Equal(t, "ERROR", last.Level)
	assert.Equal(t, "ledger", last.Category)
}
