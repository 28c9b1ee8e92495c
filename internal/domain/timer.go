package domain

import (
	"fmt"
	"time"
)

// Timer presets in minutes.
const DefaultFocusMinutes = 25

// DefaultPresets returns the stock focus durations in minutes.
func DefaultPresets() []int {
	return []int{5, 15, 25, 45}
}

// TimerState is the state of the focus countdown.
type TimerState string

const (
	TimerIdle    TimerState = "idle"    // Not started, or reset
	TimerRunning TimerState = "running" // Counting down
	TimerPaused  TimerState = "paused"  // Started, countdown suspended
)

// Completion describes a countdown that reached zero.
type Completion struct {
	StartedAt time.Time
	Planned   int // Minutes
	Actual    int // Minutes elapsed when the countdown hit zero
}

// Timer is the focus countdown state machine.
//
//	Idle ──Start──▶ Running ──Tick(0)──▶ Idle (Completion emitted once)
//	                  │  ▲
//	            Pause │  │ Resume
//	                  ▼  │
//	                 Paused
//
// Reset returns to Idle from any state without emitting a Completion.
type Timer struct {
	startedAt time.Time
	state     TimerState
	planned   int // minutes
	remaining int // seconds
}

// NewTimer creates an idle timer with the given planned duration.
func NewTimer(minutes int) (*Timer, error) {
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Timer{
		state:     TimerIdle,
		planned:   minutes,
		remaining: minutes * 60,
	}, nil
}

// State returns the current state.
func (t *Timer) State() TimerState { return t.state }

// Planned returns the planned duration in minutes.
func (t *Timer) Planned() int { return t.planned }

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	return time.Duration(t.remaining) * time.Second
}

// StartedAt returns when the current run started (zero when idle).
func (t *Timer) StartedAt() time.Time { return t.startedAt }

// Progress returns the elapsed fraction of the planned duration (0..1).
func (t *Timer) Progress() float64 {
	total := t.planned * 60
	if total == 0 {
		return 0
	}
	return float64(total-t.remaining) / float64(total)
}

// Start begins a countdown of the given length. Only allowed while idle.
func (t *Timer) Start(minutes int, now time.Time) error {
	if t.state != TimerIdle {
		return ErrTimerRunning
	}
	if minutes <= 0 {
		return ErrInvalidDuration
	}
	t.planned = minutes
	t.remaining = minutes * 60
	t.startedAt = now
	t.state = TimerRunning
	return nil
}

// Pause suspends a running countdown.
func (t *Timer) Pause() error {
	if t.state != TimerRunning {
		return ErrTimerNotRunning
	}
	t.state = TimerPaused
	return nil
}

// Resume continues a paused countdown.
func (t *Timer) Resume() error {
	if t.state != TimerPaused {
		return ErrTimerNotPaused
	}
	t.state = TimerRunning
	return nil
}

// Tick advances the countdown by one second. It does nothing unless the
// timer is running. When the countdown reaches zero the timer returns to
// idle and the Completion is reported; this happens exactly once per run.
func (t *Timer) Tick() (Completion, bool) {
	if t.state != TimerRunning {
		return Completion{}, false
	}
	t.remaining--
	if t.remaining > 0 {
		return Completion{}, false
	}

	c := Completion{
		StartedAt: t.startedAt,
		Planned:   t.planned,
		Actual:    (t.planned*60 - t.remaining) / 60,
	}
	t.Reset()
	return c, true
}

// Reset abandons the current run. Progress is discarded and no Completion
// is produced.
func (t *Timer) Reset() {
	t.state = TimerIdle
	t.remaining = t.planned * 60
	t.startedAt = time.Time{}
}

// ChangeDuration sets a new planned duration. Only allowed while idle.
func (t *Timer) ChangeDuration(minutes int) error {
	if t.state != TimerIdle {
		return ErrTimerRunning
	}
	if minutes <= 0 {
		return ErrInvalidDuration
	}
	t.planned = minutes
	t.remaining = minutes * 60
	return nil
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}
