// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TaskState is the derived lifecycle state of a task.
type TaskState string

const (
	TaskCreated    TaskState = "created"     // No steps yet
	TaskInProgress TaskState = "in_progress" // At least one open step
	TaskComplete   TaskState = "complete"    // Every step done
)

// Display returns a human-readable representation of the state.
func (s TaskState) Display() string {
	switch s {
	case TaskCreated:
		return "New"
	case TaskInProgress:
		return "In Progress"
	case TaskComplete:
		return "Complete"
	default:
		return string(s)
	}
}

// Step is a single actionable item of a task.
type Step struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a unit of work broken down into steps.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Steps     []Step    `json:"steps"`
	Completed bool      `json:"completed"` // Cached; always equal to allStepsDone()
}

// NewTask creates a task with the given steps. Blank step texts are dropped.
func NewTask(id, title string, now time.Time, steps []Step) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	t := &Task{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		Steps:     make([]Step, 0, len(steps)),
	}
	for _, s := range steps {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		t.Steps = append(t.Steps, Step{ID: s.ID, Text: text})
	}
	t.refresh()
	return t, nil
}

// allStepsDone reports whether the task has steps and all of them are done.
func (t *Task) allStepsDone() bool {
	if len(t.Steps) == 0 {
		return false
	}
	for _, s := range t.Steps {
		if !s.Completed {
			return false
		}
	}
	return true
}

// refresh rederives the cached completion flag from the steps.
func (t *Task) refresh() {
	t.Completed = t.allStepsDone()
}

// State returns the lifecycle state derived from the steps.
func (t *Task) State() TaskState {
	switch {
	case len(t.Steps) == 0:
		return TaskCreated
	case t.allStepsDone():
		return TaskComplete
	default:
		return TaskInProgress
	}
}

// DoneCount returns the number of completed steps.
func (t *Task) DoneCount() int {
	n := 0
	for _, s := range t.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// AddStep appends an open step. Adding a step to a complete task puts it
// back in progress.
func (t *Task) AddStep(id, text string) (Step, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Step{}, ErrEmptyStepText
	}
	s := Step{ID: id, Text: text}
	t.Steps = append(t.Steps, s)
	t.refresh()
	return s, nil
}

// StepIndex returns the index of the step with the given ID, or -1.
func (t *Task) StepIndex(stepID string) int {
	for i, s := range t.Steps {
		if s.ID == stepID {
			return i
		}
	}
	return -1
}

// StepToggle describes the transitions caused by toggling a step.
type StepToggle struct {
	Step          Step
	StepCompleted bool // Step went open -> done
	TaskCompleted bool // Task went not complete -> complete
}

// Reward returns the currency earned by the toggle. Reopening a step earns
// nothing and takes nothing back.
func (st StepToggle) Reward() Reward {
	var r Reward
	if st.StepCompleted {
		r.Coins += StepRewardCoins
	}
	if st.TaskCompleted {
		r.Coins += TaskBonusCoins
		r.Seeds += TaskBonusSeeds
	}
	return r
}

// ToggleStep flips the completion flag of a step.
func (t *Task) ToggleStep(stepID string) (StepToggle, error) {
	i := t.StepIndex(stepID)
	if i < 0 {
		return StepToggle{}, ErrStepNotFound
	}

	wasComplete := t.allStepsDone()
	t.Steps[i].Completed = !t.Steps[i].Completed
	t.refresh()

	return StepToggle{
		Step:          t.Steps[i],
		StepCompleted: t.Steps[i].Completed,
		TaskCompleted: !wasComplete && t.Completed,
	}, nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.Steps != nil {
		c.Steps = make([]Step, len(t.Steps))
		copy(c.Steps, t.Steps)
	}
	return &c
}
