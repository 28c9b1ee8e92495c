package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.setTasks(msg.Tasks)
		return m, nil

	case MsgGardenLoaded:
		m.setGarden(msg.Garden)
		return m, nil

	case MsgProfileLoaded:
		m.profile = msg.Profile
		return m, nil

	case MsgActionDone:
		m.busy = false
		m.err = nil
		m.status = msg.Status
		return m, m.reload()

	case MsgSessionCompleted:
		m.err = nil
		m.status = "Session complete! " + rewardText(msg.Result.Reward)
		return m, m.reload()

	case MsgError:
		m.busy = false
		m.err = msg.Err
		m.status = ""
		m.mode = ModeNormal
		m.logError(msg.Err)
		return m, nil

	case tickMsg:
		return m.handleTick(msg)
	}

	// Cursor blink
	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the countdown for the current run.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen || m.timer.State() != domain.TimerRunning {
		return m, nil
	}
	if c, done := m.timer.Tick(); done {
		m.tickGen++
		return m, m.completeFocus(c)
	}
	return m, m.tick(m.tickGen)
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInputTitle, ModeInputTitleAI, ModeInputStep, ModeInputName:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeNormal:
	}

	// Any key dismisses the last error
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.tab = allTabs[(int(m.tab)+1)%len(allTabs)]
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = allTabs[(int(m.tab)+len(allTabs)-1)%len(allTabs)]
		return m, nil
	}

	switch m.tab {
	case TabTasks:
		return m.handleTasksKey(msg)
	case TabFocus:
		return m.handleFocusKey(msg)
	case TabGarden:
		return m.handleGardenKey(msg)
	case TabProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

// handleTasksKey handles keys on the Tasks tab.
func (m *Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.New):
		return m, m.startInput(ModeInputTitle, "Task title", "")
	case key.Matches(msg, m.keys.NewAI):
		return m, m.startInput(ModeInputTitleAI, "Task title (steps suggested by AI)", "")
	case key.Matches(msg, m.keys.AddStep):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.targetID = task.ID
		return m, m.startInput(ModeInputStep, "Step text", "")
	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		if r.step < 0 {
			m.status = "Select a step to toggle it"
			return m, nil
		}
		return m, m.toggleStep(r.task.ID, r.task.Steps[r.step].ID)
	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.targetID = task.ID
		m.mode = ModeConfirm
	}
	return m, nil
}

// handleFocusKey handles keys on the Focus tab.
func (m *Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m, m.startOrPause()
	case key.Matches(msg, m.keys.Reset):
		if m.timer.State() != domain.TimerIdle {
			m.timer.Reset()
			m.tickGen++
			m.status = "Session reset. Nothing was recorded."
		}
	case key.Matches(msg, m.keys.PrevPreset):
		m.selectPreset(m.presetIdx - 1)
	case key.Matches(msg, m.keys.NextPreset):
		m.selectPreset(m.presetIdx + 1)
	}
	return m, nil
}

// startOrPause moves the countdown to its next state.
func (m *Model) startOrPause() tea.Cmd {
	switch m.timer.State() {
	case domain.TimerIdle:
		if err := m.timer.Start(m.timer.Planned(), m.container.Clock.Now()); err != nil {
			m.err = err
			return nil
		}
		m.status = ""
	case domain.TimerRunning:
		_ = m.timer.Pause()
		m.tickGen++
		return nil
	case domain.TimerPaused:
		_ = m.timer.Resume()
	}
	m.tickGen++
	return m.tick(m.tickGen)
}

// selectPreset changes the planned duration while the timer is idle.
func (m *Model) selectPreset(idx int) {
	if idx < 0 || idx >= len(m.presets) {
		return
	}
	if err := m.timer.ChangeDuration(m.presets[idx]); err != nil {
		m.err = err
		return
	}
	m.presetIdx = idx
}

// handleGardenKey handles keys on the Garden tab.
func (m *Model) handleGardenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.plantCursor > 0 {
			m.plantCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.garden != nil && m.plantCursor < len(m.garden.Plants)-1 {
			m.plantCursor++
		}
	case key.Matches(msg, m.keys.Plant):
		n, err := strconv.Atoi(msg.String())
		types := domain.AllPlantTypes()
		if err != nil || n < 1 || n > len(types) {
			return m, nil
		}
		return m, m.plantSeed(types[n-1])
	case key.Matches(msg, m.keys.Water):
		plant, ok := m.SelectedPlant()
		if !ok {
			return m, nil
		}
		return m, m.waterPlant(plant.ID)
	}
	return m, nil
}

// handleProfileKey handles keys on the Profile tab.
func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Login):
		current := ""
		if m.profile != nil && m.profile.Profile != nil {
			current = m.profile.Profile.Name
		}
		return m, m.startInput(ModeInputName, "Display name", current)
	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	}
	return m, nil
}

// startInput switches to a text input mode.
func (m *Model) startInput(mode Mode, placeholder, value string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	return m.input.Focus()
}

// handleInputMode handles keys while a text input is active.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.closeInput()
		if value == "" {
			return m, nil
		}
		switch mode {
		case ModeInputTitle:
			return m, m.createTask(value, false)
		case ModeInputTitleAI:
			m.busy = true
			m.status = "Asking AI for steps..."
			return m, m.createTask(value, true)
		case ModeInputStep:
			return m, m.addStep(m.targetID, value)
		case ModeInputName:
			return m, m.login(value)
		case ModeNormal, ModeConfirm, ModeHelp:
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// closeInput leaves input mode.
func (m *Model) closeInput() {
	m.input.Blur()
	m.mode = ModeNormal
}

// handleConfirmMode handles the delete confirmation.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteTask(m.targetID)
	}
	return m, nil
}
