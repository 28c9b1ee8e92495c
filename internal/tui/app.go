package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// row is one line of the task list: a task header or one of its steps.
type row struct {
	task *domain.Task
	step int // -1 for the task header
}

// Model is the main bubbletea model for the dashboard.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Pointers (8 bytes each)
	container *app.Container
	timer     *domain.Timer
	garden    *usecase.ShowGardenOutput
	profile   *usecase.ShowProfileOutput
	err       error

	// tick schedules the next countdown tick for the given run.
	tick func(gen int) tea.Cmd

	// Slices (24 bytes each)
	tasks   []*domain.Task
	rows    []row
	presets []int

	// Strings (16 bytes each)
	status   string
	targetID string // Task the pending input or confirmation applies to

	// Structs
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Ints (8 bytes each)
	mode        Mode
	tab         Tab
	cursor      int
	plantCursor int
	presetIdx   int
	tickGen     int
	width       int
	height      int

	// Bools
	busy bool
}

var _ tea.Model = (*Model)(nil)

// New creates a new TUI model.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 200

	presets, idx := timerPresets(c.AppConfig)
	timer, err := domain.NewTimer(presets[idx])
	if err != nil {
		timer, _ = domain.NewTimer(domain.DefaultFocusMinutes)
	}

	return &Model{
		container: c,
		timer:     timer,
		tick:      scheduleTick,
		presets:   presets,
		presetIdx: idx,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
		mode:      ModeNormal,
		tab:       TabTasks,
	}
}

// timerPresets returns the valid presets from the config and the index of
// the default duration among them.
func timerPresets(cfg *domain.Config) ([]int, int) {
	var presets []int
	defaultMinutes := domain.DefaultFocusMinutes
	if cfg != nil {
		for _, p := range cfg.Timer.Presets {
			if p > 0 {
				presets = append(presets, p)
			}
		}
		if cfg.Timer.DefaultMinutes > 0 {
			defaultMinutes = cfg.Timer.DefaultMinutes
		}
	}
	if len(presets) == 0 {
		presets = domain.DefaultPresets()
	}
	for i, p := range presets {
		if p == defaultMinutes {
			return presets, i
		}
	}
	return presets, 0
}

// scheduleTick fires a tickMsg for the run after one second.
func scheduleTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.reload()
}

// reload returns a command that refreshes every view.
func (m *Model) reload() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadGarden(),
		m.loadProfile(),
	)
}

// loadTasks returns a command that loads tasks from the repository.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// loadGarden returns a command that loads the garden and balances.
func (m *Model) loadGarden() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowGardenUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgGardenLoaded{Garden: out}
	}
}

// loadProfile returns a command that loads the profile summary.
func (m *Model) loadProfile() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowProfileUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgProfileLoaded{Profile: out}
	}
}

// createTask returns a command that creates a task, optionally with AI steps.
func (m *Model) createTask(title string, useAI bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title: title,
			UseAI: useAI,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Created %q with %d steps", out.Task.Title, len(out.Task.Steps))}
	}
}

// addStep returns a command that appends a step to a task.
func (m *Model) addStep(taskID, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddStepUseCase().Execute(context.Background(), usecase.AddStepInput{
			TaskID: taskID,
			Text:   text,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Added step: %s", out.Step.Text)}
	}
}

// toggleStep returns a command that flips a step and credits its reward.
func (m *Model) toggleStep(taskID, stepID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleStepUseCase().Execute(context.Background(), usecase.ToggleStepInput{
			TaskID:  taskID,
			StepRef: stepID,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Toggle.StepCompleted {
			return MsgActionDone{Status: fmt.Sprintf("Reopened: %s", out.Toggle.Step.Text)}
		}
		status := fmt.Sprintf("Completed: %s", out.Toggle.Step.Text)
		if out.Toggle.TaskCompleted {
			status = fmt.Sprintf("Task complete: %s", out.Task.Title)
		}
		if !out.Reward.IsZero() {
			status += " " + rewardText(out.Reward)
		}
		return MsgActionDone{Status: status}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Deleted %q", out.Task.Title)}
	}
}

// completeFocus returns a command that records a finished countdown.
func (m *Model) completeFocus(c domain.Completion) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteFocusUseCase().Execute(context.Background(), usecase.CompleteFocusInput{Completion: c})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionCompleted{Result: out}
	}
}

// plantSeed returns a command that buys and plants a seed.
func (m *Model) plantSeed(t domain.PlantType) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.PlantSeedUseCase().Execute(context.Background(), usecase.PlantSeedInput{Type: t})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Planted a %s for %d seed(s)", out.Plant.Type.Display(), out.Cost)}
	}
}

// waterPlant returns a command that waters a plant.
func (m *Model) waterPlant(plantID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.WaterPlantUseCase().Execute(context.Background(), usecase.WaterPlantInput{PlantRef: plantID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Watered %s: now %s", out.Plant.Type.Display(), out.Plant.GrowthStage.Display())}
	}
}

// login returns a command that stores the display name.
func (m *Model) login(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{Name: name})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("Welcome, %s!", out.Profile.Name)}
	}
}

// logout returns a command that clears the profile.
func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		if err := m.container.LogoutUseCase().Execute(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Status: "Logged out."}
	}
}

// SelectedTask returns the task under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].task
}

// selectedRow returns the row under the cursor.
func (m *Model) selectedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// SelectedPlant returns the plant under the garden cursor.
func (m *Model) SelectedPlant() (domain.Plant, bool) {
	if m.garden == nil || m.plantCursor < 0 || m.plantCursor >= len(m.garden.Plants) {
		return domain.Plant{}, false
	}
	return m.garden.Plants[m.plantCursor], true
}

// setTasks rebuilds the flattened row list and keeps the cursor in range.
func (m *Model) setTasks(tasks []*domain.Task) {
	m.tasks = tasks
	m.rows = m.rows[:0]
	for _, t := range tasks {
		m.rows = append(m.rows, row{task: t, step: -1})
		for i := range t.Steps {
			m.rows = append(m.rows, row{task: t, step: i})
		}
	}
	m.cursor = clamp(m.cursor, len(m.rows))
}

// setGarden stores the garden and keeps the plant cursor in range.
func (m *Model) setGarden(g *usecase.ShowGardenOutput) {
	m.garden = g
	m.plantCursor = clamp(m.plantCursor, len(g.Plants))
}

// clamp keeps i within [0, n).
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// balances returns the coin and seed balances last loaded.
func (m *Model) balances() (int, int) {
	if m.garden == nil {
		return 0, 0
	}
	return m.garden.Coins, m.garden.Seeds
}

// logError records an error reported to the user.
func (m *Model) logError(err error) {
	if m.container != nil && m.container.Logger != nil {
		m.container.Logger.Error("tui", err.Error())
	}
}

// rewardText formats a reward like "+11 coins +1 seed".
func rewardText(r domain.Reward) string {
	s := fmt.Sprintf("+%d coin%s", r.Coins, pluralS(r.Coins))
	if r.Seeds > 0 {
		s += fmt.Sprintf(" +%d seed%s", r.Seeds, pluralS(r.Seeds))
	}
	return s
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
