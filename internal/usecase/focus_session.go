package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// CompleteFocusInput contains a finished countdown.
type CompleteFocusInput struct {
	Completion domain.Completion
}

// CompleteFocusOutput contains the recorded session and its reward.
type CompleteFocusOutput struct {
	Ledger  *domain.Ledger
	Session domain.FocusSession
	Reward  domain.Reward
}

// CompleteFocus is the use case for recording a completed focus session.
type CompleteFocus struct {
	ledger domain.LedgerRepository
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewCompleteFocus creates a new CompleteFocus use case.
func NewCompleteFocus(ledger domain.LedgerRepository, ids domain.IDGenerator, logger domain.Logger) *CompleteFocus {
	return &CompleteFocus{
		ledger: ledger,
		ids:    ids,
		logger: logger,
	}
}

// Execute records the session and credits the planned minutes as coins plus
// one seed, in a single ledger update.
func (uc *CompleteFocus) Execute(_ context.Context, in CompleteFocusInput) (*CompleteFocusOutput, error) {
	if in.Completion.Planned <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	out := &CompleteFocusOutput{
		Session: domain.NewFocusSession(uc.ids.NewID(), in.Completion),
		Reward:  domain.FocusReward(in.Completion.Planned),
	}
	err := uc.ledger.Update(func(l *domain.Ledger) error {
		l.RecordSession(out.Session)
		l.Grant(out.Reward)
		out.Ledger = l.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("focus", fmt.Sprintf("session %s completed: %d min, +%d coins +%d seeds",
			out.Session.ID, out.Session.DurationActual, out.Reward.Coins, out.Reward.Seeds))
	}

	return out, nil
}

// RunFocusInput contains the parameters for running a focus countdown.
type RunFocusInput struct {
	Ticks   <-chan time.Time    // One value per second
	OnTick  func(*domain.Timer) // Called after every tick (optional)
	Minutes int
}

// RunFocusOutput contains the result of a focus run.
// Result is nil when the run was abandoned.
type RunFocusOutput struct {
	Result *CompleteFocusOutput
}

// RunFocus is the use case for driving a focus countdown to completion.
type RunFocus struct {
	complete *CompleteFocus
	clock    domain.Clock
	logger   domain.Logger
}

// NewRunFocus creates a new RunFocus use case.
func NewRunFocus(complete *CompleteFocus, clock domain.Clock, logger domain.Logger) *RunFocus {
	return &RunFocus{
		complete: complete,
		clock:    clock,
		logger:   logger,
	}
}

// Execute counts down one second per tick. Cancelling ctx resets the timer
// and records nothing; reaching zero records the session exactly once.
func (uc *RunFocus) Execute(ctx context.Context, in RunFocusInput) (*RunFocusOutput, error) {
	timer, err := domain.NewTimer(in.Minutes)
	if err != nil {
		return nil, err
	}
	if err := timer.Start(in.Minutes, uc.clock.Now()); err != nil {
		return nil, err
	}
	if uc.logger != nil {
		uc.logger.Debug("focus", fmt.Sprintf("started %d min", in.Minutes))
	}

	for {
		select {
		case <-ctx.Done():
			timer.Reset()
			if uc.logger != nil {
				uc.logger.Info("focus", "session reset before completion")
			}
			return &RunFocusOutput{}, nil
		case _, ok := <-in.Ticks:
			if !ok {
				timer.Reset()
				return &RunFocusOutput{}, nil
			}
			completion, done := timer.Tick()
			if in.OnTick != nil {
				in.OnTick(timer)
			}
			if !done {
				continue
			}
			res, err := uc.complete.Execute(ctx, CompleteFocusInput{Completion: completion})
			if err != nil {
				return nil, err
			}
			return &RunFocusOutput{Result: res}, nil
		}
	}
}
