package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/testutil"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// tuiEnv bundles a model wired to test doubles.
type tuiEnv struct {
	m        *Model
	c        *app.Container
	tasks    *testutil.MockTaskRepository
	ledger   *testutil.MockLedgerRepository
	profiles *testutil.MockProfileRepository
	ai       *testutil.MockDecomposer
	logger   *testutil.MockLogger
}

// newTestEnv creates a container with mocks. The model is built by start.
func newTestEnv() *tuiEnv {
	env := &tuiEnv{
		tasks:    testutil.NewMockTaskRepository(),
		ledger:   testutil.NewMockLedgerRepository(),
		profiles: &testutil.MockProfileRepository{},
		ai:       &testutil.MockDecomposer{},
		logger:   &testutil.MockLogger{},
	}
	env.c = app.NewWithDeps(
		app.Config{DataDir: "/data", Backend: domain.BackendJSON},
		env.tasks,
		env.ledger,
		env.profiles,
		&testutil.MockClock{NowTime: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)},
		env.logger,
	)
	env.c.IDs = &testutil.SequentialIDs{Prefix: "abcdef"}
	env.c.Decomposer = env.ai
	return env
}

// start builds the model and runs its initial loads.
func (env *tuiEnv) start(t *testing.T) *Model {
	t.Helper()
	env.m = New(env.c)
	env.m.tick = func(int) tea.Cmd { return nil }
	drain(t, env.m, env.m.Init())
	return env.m
}

// drain runs cmd and feeds the resulting messages back into the model
// until no command is left.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, m, c)
		}
		return
	}
	_, next := m.Update(msg)
	drain(t, m, next)
}

// press sends a key and returns the resulting command without running it.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// submit types text into the active input and presses enter.
func submit(t *testing.T, m *Model, text string) {
	t.Helper()
	require.True(t, m.mode.IsInputMode(), "expected input mode, got %s", m.mode)
	press(m, text)
	drain(t, m, press(m, "enter"))
}

// createTask stores a task through the use case before the model starts.
func (env *tuiEnv) createTask(t *testing.T, title string, steps ...string) *domain.Task {
	t.Helper()
	out, err := env.c.NewTaskUseCase().Execute(t.Context(), usecase.NewTaskInput{Title: title, Steps: steps})
	require.NoError(t, err)
	return out.Task
}

// =============================================================================
// Loading
// =============================================================================

func TestInit_LoadsAllViews(t *testing.T) {
	// Setup
	env := newTestEnv()
	env.createTask(t, "Pay rent", "Open bank app")
	env.ledger.Ledger.Coins = 7

	// Execute
	m := env.start(t)

	// Assert
	require.Len(t, m.tasks, 1)
	assert.Len(t, m.rows, 2, "task header plus one step")
	require.NotNil(t, m.garden)
	assert.Equal(t, 7, m.garden.Coins)
	require.NotNil(t, m.profile)
	assert.Nil(t, m.profile.Profile)
}

func TestUpdate_MsgError(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)
	m.mode = ModeConfirm
	m.busy = true

	_, cmd := m.Update(MsgError{Err: domain.ErrCorruptLedger})

	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, m.mode)
	assert.False(t, m.busy)
	assert.ErrorIs(t, m.err, domain.ErrCorruptLedger)
	require.NotEmpty(t, env.logger.Entries)
	assert.Equal(t, "ERROR", env.logger.Entries[len(env.logger.Entries)-1].Level)
	assert.Equal(t, "tui", env.logger.Entries[len(env.logger.Entries)-1].Category)
}

func TestUpdate_LoadErrorSurfaces(t *testing.T) {
	env := newTestEnv()
	env.ledger.LoadErr = domain.ErrCorruptLedger

	m := env.start(t)

	assert.ErrorIs(t, m.err, domain.ErrCorruptLedger)
}

// =============================================================================
// Navigation
// =============================================================================

func TestTabCycling(t *testing.T) {
	m := newTestEnv().start(t)

	for _, want := range []Tab{TabFocus, TabGarden, TabProfile, TabTasks} {
		press(m, "tab")
		assert.Equal(t, want, m.tab)
	}

	press(m, "shift+tab")
	assert.Equal(t, TabProfile, m.tab)
}

func TestHelpMode(t *testing.T) {
	m := newTestEnv().start(t)

	press(m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "Press any key to close")

	press(m, "j")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestQuit(t *testing.T) {
	m := newTestEnv().start(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q is text while typing, ctrl+c still quits
	press(m, "n")
	_ = press(m, "q")
	assert.Equal(t, "q", m.input.Value())
	cmd = press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// =============================================================================
// Tasks tab
// =============================================================================

func TestTasks_Create(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)

	press(m, "n")
	assert.Equal(t, ModeInputTitle, m.mode)
	submit(t, m, "Pay rent")

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, env.tasks.Tasks, 1)
	assert.Equal(t, "Pay rent", env.tasks.Tasks[0].Title)
	assert.Len(t, m.rows, 1)
	assert.Contains(t, m.status, `Created "Pay rent"`)
	assert.Empty(t, env.ai.Titles)
}

func TestTasks_CreateWithAI(t *testing.T) {
	env := newTestEnv()
	env.ai.Steps = []string{"Open laptop", "Write outline"}
	m := env.start(t)

	press(m, "N")
	assert.Equal(t, ModeInputTitleAI, m.mode)
	press(m, "Write report")
	cmd := press(m, "enter")

	assert.True(t, m.busy)
	assert.Contains(t, m.View(), "Asking AI")

	drain(t, m, cmd)

	assert.False(t, m.busy)
	assert.Equal(t, []string{"Write report"}, env.ai.Titles)
	require.Len(t, env.tasks.Tasks, 1)
	assert.Len(t, env.tasks.Tasks[0].Steps, 2)
	assert.Len(t, m.rows, 3)
}

func TestTasks_EscapeCancelsInput(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)

	press(m, "n")
	press(m, "Pay rent")
	cmd := press(m, "esc")

	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, env.tasks.Tasks)
}

func TestTasks_BlankTitleIsIgnored(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)

	press(m, "n")
	submit(t, m, "   ")

	assert.Empty(t, env.tasks.Tasks)
	assert.NoError(t, m.err)
}

func TestTasks_ToggleStepCreditsReward(t *testing.T) {
	// Setup: a single-step task completes on its first toggle
	env := newTestEnv()
	env.createTask(t, "Call mom", "Dial")
	m := env.start(t)

	// Execute
	press(m, "j")
	drain(t, m, press(m, "space"))

	// Assert
	assert.Equal(t, 11, env.ledger.Ledger.Coins)
	assert.Equal(t, 2, env.ledger.Ledger.Seeds)
	assert.Contains(t, m.status, "Task complete: Call mom +11 coins +1 seed")
	assert.Contains(t, m.View(), "11 coins")
	assert.True(t, m.tasks[0].Steps[0].Completed)

	// Reopen earns nothing
	drain(t, m, press(m, "x"))
	assert.Equal(t, 11, env.ledger.Ledger.Coins)
	assert.Contains(t, m.status, "Reopened: Dial")
}

func TestTasks_ToggleOnTaskRow(t *testing.T) {
	env := newTestEnv()
	env.createTask(t, "Call mom", "Dial")
	m := env.start(t)

	cmd := press(m, "space")

	assert.Nil(t, cmd)
	assert.Equal(t, "Select a step to toggle it", m.status)
	assert.Equal(t, 0, env.ledger.Ledger.Coins)
}

func TestTasks_CursorStaysInRange(t *testing.T) {
	env := newTestEnv()
	env.createTask(t, "Call mom", "Dial")
	m := env.start(t)

	press(m, "k")
	assert.Equal(t, 0, m.cursor)
	for range 5 {
		press(m, "j")
	}
	assert.Equal(t, 1, m.cursor)
}

func TestTasks_AddStep(t *testing.T) {
	env := newTestEnv()
	task := env.createTask(t, "Call mom")
	m := env.start(t)

	press(m, "a")
	assert.Equal(t, ModeInputStep, m.mode)
	assert.Equal(t, task.ID, m.targetID)
	submit(t, m, "Find phone")

	require.Len(t, env.tasks.Tasks[0].Steps, 1)
	assert.Equal(t, "Find phone", env.tasks.Tasks[0].Steps[0].Text)
	assert.Equal(t, "Added step: Find phone", m.status)
}

func TestTasks_AddStepWithoutTask(t *testing.T) {
	m := newTestEnv().start(t)

	press(m, "a")

	assert.Equal(t, ModeNormal, m.mode)
}

func TestTasks_DeleteNeedsConfirmation(t *testing.T) {
	env := newTestEnv()
	env.createTask(t, "Pay rent")
	m := env.start(t)

	// Declined
	press(m, "d")
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Contains(t, m.View(), `Delete "Pay rent"? (y/N)`)
	assert.Nil(t, press(m, "n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, env.tasks.Tasks, 1)

	// Confirmed
	press(m, "d")
	drain(t, m, press(m, "y"))
	assert.Empty(t, env.tasks.Tasks)
	assert.Empty(t, m.rows)
	assert.Contains(t, m.status, `Deleted "Pay rent"`)
}

// =============================================================================
// Focus tab
// =============================================================================

// tickN delivers n ticks for the current run.
func tickN(t *testing.T, m *Model, n int) {
	t.Helper()
	for range n {
		_, cmd := m.Update(tickMsg{gen: m.tickGen})
		drain(t, m, cmd)
	}
}

func TestFocus_RunToCompletion(t *testing.T) {
	// Setup: shortest preset
	env := newTestEnv()
	m := env.start(t)
	press(m, "tab")
	for range len(m.presets) {
		press(m, "[")
	}
	require.Equal(t, 5, m.timer.Planned())

	// Execute
	press(m, "s")
	require.Equal(t, domain.TimerRunning, m.timer.State())
	tickN(t, m, 5*60)

	// Assert
	assert.Equal(t, domain.TimerIdle, m.timer.State())
	require.Len(t, env.ledger.Ledger.Sessions, 1)
	assert.Equal(t, 5, env.ledger.Ledger.Sessions[0].DurationActual)
	assert.Equal(t, 5, env.ledger.Ledger.Coins)
	assert.Equal(t, 2, env.ledger.Ledger.Seeds)
	assert.Equal(t, "Session complete! +5 coins +1 seed", m.status)
	assert.Equal(t, 5, m.garden.Coins, "balances reloaded")
}

func TestFocus_ResetRecordsNothing(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)
	press(m, "tab")

	press(m, "s")
	tickN(t, m, 3)
	assert.Equal(t, "24:57", m.timer.Clock())
	press(m, "r")

	assert.Equal(t, domain.TimerIdle, m.timer.State())
	assert.Equal(t, "25:00", m.timer.Clock())
	assert.Empty(t, env.ledger.Ledger.Sessions)
	assert.Equal(t, 0, env.ledger.Ledger.Coins)
	assert.Empty(t, env.ledger.Updates)
	assert.Contains(t, m.status, "Nothing was recorded")
}

func TestFocus_PauseDropsTicks(t *testing.T) {
	m := newTestEnv().start(t)
	press(m, "tab")

	press(m, "s")
	staleGen := m.tickGen
	tickN(t, m, 10)
	press(m, "s")
	require.Equal(t, domain.TimerPaused, m.timer.State())

	// Ticks scheduled before the pause and ticks during it are ignored
	_, _ = m.Update(tickMsg{gen: staleGen})
	tickN(t, m, 5)
	assert.Equal(t, "24:50", m.timer.Clock())
	assert.Contains(t, m.View(), "Paused")

	press(m, "s")
	require.Equal(t, domain.TimerRunning, m.timer.State())
	_, _ = m.Update(tickMsg{gen: staleGen})
	tickN(t, m, 1)
	assert.Equal(t, "24:49", m.timer.Clock())
}

func TestFocus_PresetsOnlyWhileIdle(t *testing.T) {
	m := newTestEnv().start(t)
	press(m, "tab")
	require.Equal(t, 25, m.timer.Planned())

	press(m, "]")
	assert.Equal(t, 45, m.timer.Planned())
	press(m, "]")
	assert.Equal(t, 45, m.timer.Planned(), "last preset")

	press(m, "s")
	press(m, "[")
	assert.Equal(t, 45, m.timer.Planned())
	assert.ErrorIs(t, m.err, domain.ErrTimerRunning)
}

func TestTimerPresets(t *testing.T) {
	tests := []struct {
		cfg         *domain.Config
		name        string
		wantPresets []int
		wantIdx     int
	}{
		{
			name:        "nil config uses defaults",
			cfg:         nil,
			wantPresets: domain.DefaultPresets(),
			wantIdx:     2,
		},
		{
			name:        "custom presets",
			cfg:         &domain.Config{Timer: domain.TimerConfig{Presets: []int{10, 20}, DefaultMinutes: 20}},
			wantPresets: []int{10, 20},
			wantIdx:     1,
		},
		{
			name:        "invalid presets dropped",
			cfg:         &domain.Config{Timer: domain.TimerConfig{Presets: []int{0, -5}, DefaultMinutes: 15}},
			wantPresets: domain.DefaultPresets(),
			wantIdx:     1,
		},
		{
			name:        "default not among presets",
			cfg:         &domain.Config{Timer: domain.TimerConfig{Presets: []int{10, 20}, DefaultMinutes: 30}},
			wantPresets: []int{10, 20},
			wantIdx:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presets, idx := timerPresets(tt.cfg)
			assert.Equal(t, tt.wantPresets, presets)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}

// =============================================================================
// Garden tab
// =============================================================================

func TestGarden_PlantAndWater(t *testing.T) {
	// Setup: one seed, ten coins
	env := newTestEnv()
	env.ledger.Ledger.Coins = 10
	m := env.start(t)
	press(m, "tab")
	press(m, "tab")
	require.Equal(t, TabGarden, m.tab)

	// Plant a sunflower
	drain(t, m, press(m, "1"))
	require.Len(t, m.garden.Plants, 1)
	assert.Equal(t, 0, m.garden.Seeds)
	assert.Contains(t, m.status, "Planted a Sunflower")

	// Water it
	drain(t, m, press(m, "w"))
	assert.Equal(t, domain.StageGrowing, m.garden.Plants[0].GrowthStage)
	assert.Equal(t, 5, m.garden.Coins)
	assert.Contains(t, m.View(), "Growing")

	// No seeds left for a cactus
	drain(t, m, press(m, "2"))
	assert.ErrorIs(t, m.err, domain.ErrInsufficientSeeds)
	assert.Contains(t, m.View(), "Error:")
	assert.Len(t, env.ledger.Ledger.Plants, 1)
}

func TestGarden_WaterWithoutPlants(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)
	press(m, "tab")
	press(m, "tab")

	assert.Nil(t, press(m, "w"))
	assert.Contains(t, m.View(), "Your garden is empty")
}

// =============================================================================
// Profile tab
// =============================================================================

func TestProfile_LoginAndLogout(t *testing.T) {
	env := newTestEnv()
	m := env.start(t)
	press(m, "shift+tab")
	require.Equal(t, TabProfile, m.tab)
	assert.Contains(t, m.View(), "Focus Traveler")

	press(m, "e")
	assert.Equal(t, ModeInputName, m.mode)
	submit(t, m, "ana")

	require.NotNil(t, env.profiles.Profile)
	assert.Equal(t, "ana", env.profiles.Profile.Name)
	assert.Equal(t, "Welcome, ana!", m.status)
	assert.Contains(t, m.View(), "ana")

	// Editing starts from the current name
	press(m, "e")
	assert.Equal(t, "ana", m.input.Value())
	press(m, "esc")

	drain(t, m, press(m, "X"))
	assert.Nil(t, env.profiles.Profile)
	assert.Equal(t, "Logged out.", m.status)
	assert.Contains(t, m.View(), "Focus Traveler")
}

func TestProfile_LogoutWhenAnonymous(t *testing.T) {
	m := newTestEnv().start(t)
	press(m, "shift+tab")

	drain(t, m, press(m, "X"))

	assert.ErrorIs(t, m.err, domain.ErrNotLoggedIn)
}
