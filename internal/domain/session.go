package domain

import "time"

// FocusSession is a focus timer run that counted down to zero.
// Sessions are immutable once recorded.
// Fields are ordered to minimize memory padding.
type FocusSession struct {
	StartedAt       time.Time `json:"startedAt"`
	ID              string    `json:"id"`
	DurationPlanned int       `json:"durationPlanned"` // Minutes
	DurationActual  int       `json:"durationActual"`  // Minutes, 0..DurationPlanned
	Completed       bool      `json:"completed"`       // Natural completion only
}

// NewFocusSession builds the session record for a completed timer run.
func NewFocusSession(id string, c Completion) FocusSession {
	actual := c.Actual
	if actual < 0 {
		actual = 0
	}
	if actual > c.Planned {
		actual = c.Planned
	}
	return FocusSession{
		ID:              id,
		DurationPlanned: c.Planned,
		DurationActual:  actual,
		StartedAt:       c.StartedAt,
		Completed:       true,
	}
}
