package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
)

func TestNewTask_Execute_Success(t *testing.T) {
	// Setup
	f := newFixture()
	uc := NewNewTask(f.tasks, f.ai, f.ids, f.clock, f.logger)

	// Execute
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title: "  Clean kitchen ",
		Steps: []string{"Clear counter", " ", "Wash dishes"},
	})

	// Assert
	require.NoError(t, err)
	task := out.Task
	assert.Equal(t, "id1", task.ID)
	assert.Equal(t, "Clean kitchen", task.Title)
	assert.Equal(t, f.clock.NowTime, task.CreatedAt)
	require.Len(t, task.Steps, 2)
	assert.Equal(t, "Clear counter", task.Steps[0].Text)
	assert.Equal(t, "Wash dishes", task.Steps[1].Text)
	assert.False(t, task.Completed)
	assert.Empty(t, f.ai.Titles, "decomposer must not be asked without UseAI")

	// Verify saved
	require.Len(t, f.tasks.Tasks, 1)
	assert.Equal(t, task.ID, f.tasks.Tasks[0].ID)
}

func TestNewTask_Execute_NewestFirst(t *testing.T) {
	f := newFixture()

	first := f.createTask(t, "first")
	second := f.createTask(t, "second")

	require.Len(t, f.tasks.Tasks, 2)
	assert.Equal(t, second.ID, f.tasks.Tasks[0].ID)
	assert.Equal(t, first.ID, f.tasks.Tasks[1].ID)
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	f := newFixture()
	f.ai.Steps = []string{"never used"}
	uc := NewNewTask(f.tasks, f.ai, f.ids, f.clock, f.logger)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "   ", UseAI: true})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, f.tasks.Tasks)
	assert.Empty(t, f.ai.Titles, "invalid input is rejected before the decomposer is called")
}

func TestNewTask_Execute_UseAI(t *testing.T) {
	// Setup
	f := newFixture()
	f.ai.Steps = []string{"Open laptop", "Write intro"}
	uc := NewNewTask(f.tasks, f.ai, f.ids, f.clock, f.logger)

	// Execute
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title: " Write report ",
		Steps: []string{"Find notes"},
		UseAI: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Write report"}, f.ai.Titles)
	var texts []string
	for _, s := range out.Task.Steps {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"Find notes", "Open laptop", "Write intro"}, texts)

	// Step IDs are unique within the task
	seen := map[string]bool{}
	for _, s := range out.Task.Steps {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestNewTask_Execute_SaveError(t *testing.T) {
	f := newFixture()
	f.tasks.SaveErr = assert.AnError
	uc := NewNewTask(f.tasks, f.ai, f.ids, f.clock, f.logger)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "x"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save task")
}

func TestAddStep_Execute(t *testing.T) {
	// Setup: a completed single-step task
	f := newFixture()
	task := f.createTask(t, "Call mom", "Find phone")
	f.toggle(t, task.ID, "1")
	require.True(t, f.tasks.Tasks[0].Completed)
	uc := NewAddStep(f.tasks, f.ids, f.logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddStepInput{TaskID: task.ID, Text: "  Dial  "})

	// Assert: back in progress
	require.NoError(t, err)
	assert.Equal(t, "Dial", out.Step.Text)
	assert.False(t, out.Step.Completed)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, domain.TaskInProgress, f.tasks.Tasks[0].State())
	assert.Len(t, f.tasks.Tasks[0].Steps, 2)
}

func TestAddStep_Execute_Errors(t *testing.T) {
	f := newFixture()
	task := f.createTask(t, "Call mom")
	uc := NewAddStep(f.tasks, f.ids, f.logger)

	_, err := uc.Execute(context.Background(), AddStepInput{TaskID: task.ID, Text: " "})
	assert.ErrorIs(t, err, domain.ErrEmptyStepText)
	assert.Empty(t, f.tasks.Tasks[0].Steps)

	_, err = uc.Execute(context.Background(), AddStepInput{TaskID: "nope", Text: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteTask_Execute(t *testing.T) {
	// Setup: earn a reward, then delete the task
	f := newFixture()
	task := f.createTask(t, "Task to delete", "only step")
	f.toggle(t, task.ID, "1")
	coins := f.ledger.Ledger.Coins
	uc := NewDeleteTask(f.tasks, f.logger)

	// Execute
	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: task.ID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, task.ID, out.Task.ID)
	assert.Empty(t, f.tasks.Tasks)
	assert.Equal(t, coins, f.ledger.Ledger.Coins, "no refund or claw-back on delete")
}

func TestDeleteTask_Execute_NotFound(t *testing.T) {
	f := newFixture()
	uc := NewDeleteTask(f.tasks, f.logger)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "999"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteTask_Execute_DeleteError(t *testing.T) {
	f := newFixture()
	task := f.createTask(t, "x")
	f.tasks.DeleteErr = assert.AnError
	uc := NewDeleteTask(f.tasks, f.logger)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: task.ID})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "delete task")
}

func TestListAndShowTask(t *testing.T) {
	f := newFixture()
	done := f.createTask(t, "done", "a")
	f.toggle(t, done.ID, "1")
	open := f.createTask(t, "open", "b")

	all, err := NewListTasks(f.tasks).Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, all.Tasks, 2)
	assert.Equal(t, open.ID, all.Tasks[0].ID)

	pending, err := NewListTasks(f.tasks).Execute(context.Background(), ListTasksInput{HideCompleted: true})
	require.NoError(t, err)
	require.Len(t, pending.Tasks, 1)
	assert.Equal(t, open.ID, pending.Tasks[0].ID)

	shown, err := NewShowTask(f.tasks).Execute(context.Background(), ShowTaskInput{TaskID: done.ID})
	require.NoError(t, err)
	assert.True(t, shown.Task.Completed)
}

func TestListTasks_Error(t *testing.T) {
	f := newFixture()
	f.tasks.ListErr = assert.AnError

	_, err := NewListTasks(f.tasks).Execute(context.Background(), ListTasksInput{})

	assert.ErrorIs(t, err, assert.AnError)
}
