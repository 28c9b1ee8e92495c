package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/testutil"
)

// fixture bundles the test doubles shared by the use case tests.
type fixture struct {
	tasks    *testutil.MockTaskRepository
	ledger   *testutil.MockLedgerRepository
	profiles *testutil.MockProfileRepository
	ids      *testutil.SequentialIDs
	clock    *testutil.MockClock
	logger   *testutil.MockLogger
	ai       *testutil.MockDecomposer
}

func newFixture() *fixture {
	return &fixture{
		tasks:    testutil.NewMockTaskRepository(),
		ledger:   testutil.NewMockLedgerRepository(),
		profiles: &testutil.MockProfileRepository{},
		ids:      &testutil.SequentialIDs{},
		clock:    &testutil.MockClock{NowTime: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)},
		logger:   &testutil.MockLogger{},
		ai:       &testutil.MockDecomposer{},
	}
}

// createTask creates a task through the NewTask use case.
func (f *fixture) createTask(t *testing.T, title string, steps ...string) *domain.Task {
	t.Helper()
	uc := NewNewTask(f.tasks, f.ai, f.ids, f.clock, f.logger)
	out, err := uc.Execute(context.Background(), NewTaskInput{Title: title, Steps: steps})
	require.NoError(t, err)
	return out.Task
}

// toggle toggles a step by position through the ToggleStep use case.
func (f *fixture) toggle(t *testing.T, taskID, stepRef string) *ToggleStepOutput {
	t.Helper()
	uc := NewToggleStep(f.tasks, f.ledger, f.logger)
	out, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: taskID, StepRef: stepRef})
	require.NoError(t, err)
	return out
}

// seedLedger overwrites the balances.
func (f *fixture) seedLedger(coins, seeds int) {
	f.ledger.Ledger.Coins = coins
	f.ledger.Ledger.Seeds = seeds
}
