package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// bufferedTicks returns a channel already holding n ticks.
func bufferedTicks(n int) chan time.Time {
	ch := make(chan time.Time, n)
	for i := 0; i < n; i++ {
		ch <- time.Time{}
	}
	return ch
}

func TestCompleteFocus_Execute(t *testing.T) {
	// Setup
	f := newFixture()
	seeds := f.ledger.Ledger.Seeds
	uc := NewCompleteFocus(f.ledger, f.ids, f.logger)

	// Execute
	out, err := uc.Execute(context.Background(), CompleteFocusInput{
		Completion: domain.Completion{StartedAt: f.clock.NowTime, Planned: 25, Actual: 25},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.Reward{Coins: 25, Seeds: 1}, out.Reward)
	assert.True(t, out.Session.Completed)
	assert.Equal(t, 25, out.Session.DurationPlanned)
	assert.Equal(t, f.clock.NowTime, out.Session.StartedAt)

	l := f.ledger.Ledger
	require.Len(t, l.Sessions, 1)
	assert.Equal(t, out.Session, l.Sessions[0])
	assert.Equal(t, 25, l.Coins)
	assert.Equal(t, seeds+1, l.Seeds)
	assert.Equal(t, 25, l.TotalFocusMinutes)
	assert.Equal(t, 1, f.ledger.Updates, "session and reward land in one update")
}

func TestCompleteFocus_Execute_InvalidDuration(t *testing.T) {
	f := newFixture()
	uc := NewCompleteFocus(f.ledger, f.ids, f.logger)

	_, err := uc.Execute(context.Background(), CompleteFocusInput{Completion: domain.Completion{Planned: 0}})

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Empty(t, f.ledger.Ledger.Sessions)
}

func TestCompleteFocus_Execute_LedgerError(t *testing.T) {
	f := newFixture()
	f.ledger.UpdateErr = assert.AnError
	uc := NewCompleteFocus(f.ledger, f.ids, f.logger)

	_, err := uc.Execute(context.Background(), CompleteFocusInput{Completion: domain.Completion{Planned: 5, Actual: 5}})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "record session")
}

func newRunFocus(f *fixture) *RunFocus {
	return NewRunFocus(NewCompleteFocus(f.ledger, f.ids, f.logger), f.clock, f.logger)
}

func TestRunFocus_Execute_RunsToCompletion(t *testing.T) {
	// Setup: exactly enough ticks for 25 minutes
	f := newFixture()
	ticks := 0
	var timer *domain.Timer

	// Execute
	out, err := newRunFocus(f).Execute(context.Background(), RunFocusInput{
		Minutes: 25,
		Ticks:   bufferedTicks(25 * 60),
		OnTick: func(tm *domain.Timer) {
			ticks++
			timer = tm
		},
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.Equal(t, 25*60, ticks)
	assert.Equal(t, domain.TimerIdle, timer.State())
	assert.Equal(t, 25, out.Result.Session.DurationActual)
	assert.Equal(t, f.clock.NowTime, out.Result.Session.StartedAt)
	assert.Len(t, f.ledger.Ledger.Sessions, 1)
	assert.Equal(t, 25, f.ledger.Ledger.Coins)
}

func TestRunFocus_Execute_ResetRecordsNothing(t *testing.T) {
	// Setup: cancel after three seconds of countdown
	f := newFixture()
	before := f.ledger.Ledger.Clone()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var timer *domain.Timer
	seen := 0

	// Execute
	out, err := newRunFocus(f).Execute(ctx, RunFocusInput{
		Minutes: 25,
		Ticks:   bufferedTicks(3),
		OnTick: func(tm *domain.Timer) {
			timer = tm
			seen++
			if seen == 3 {
				assert.Equal(t, 25*time.Minute-3*time.Second, tm.Remaining())
				cancel()
			}
		},
	})

	// Assert: idle, full duration, no session, no coins
	require.NoError(t, err)
	assert.Nil(t, out.Result)
	require.NotNil(t, timer)
	assert.Equal(t, domain.TimerIdle, timer.State())
	assert.Equal(t, 25*time.Minute, timer.Remaining())
	assert.Equal(t, before, f.ledger.Ledger)
	assert.Equal(t, 0, f.ledger.Updates)
}

func TestRunFocus_Execute_ClosedTicks(t *testing.T) {
	f := newFixture()
	ticks := bufferedTicks(10)
	close(ticks)

	out, err := newRunFocus(f).Execute(context.Background(), RunFocusInput{Minutes: 1, Ticks: ticks})

	require.NoError(t, err)
	assert.Nil(t, out.Result)
	assert.Empty(t, f.ledger.Ledger.Sessions)
}

func TestRunFocus_Execute_InvalidMinutes(t *testing.T) {
	f := newFixture()

	_, err := newRunFocus(f).Execute(context.Background(), RunFocusInput{Minutes: 0, Ticks: bufferedTicks(1)})

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestRunFocus_Execute_LedgerError(t *testing.T) {
	f := newFixture()
	f.ledger.UpdateErr = assert.AnError

	_, err := newRunFocus(f).Execute(context.Background(), RunFocusInput{Minutes: 1, Ticks: bufferedTicks(60)})

	assert.ErrorIs(t, err, assert.AnError)
}
