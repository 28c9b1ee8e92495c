package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/infra/ids"
)

const progressWidth = 30

// View renders the TUI.
func (m *Model) View() string {
	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.tab {
	case TabTasks:
		b.WriteString(m.viewTasks())
	case TabFocus:
		b.WriteString(m.viewFocus())
	case TabGarden:
		b.WriteString(m.viewGarden())
	case TabProfile:
		b.WriteString(m.viewProfile())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

// viewHeader renders the title, tab bar and balances.
func (m *Model) viewHeader() string {
	tabs := make([]string, 0, len(allTabs))
	for _, t := range allTabs {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.String()))
		}
	}

	coins, seeds := m.balances()
	balance := m.styles.Balance.Render(fmt.Sprintf("%s coins  %s seeds",
		m.styles.Coins.Render(fmt.Sprint(coins)),
		m.styles.Seeds.Render(fmt.Sprint(seeds)),
	))

	title := m.styles.Header.Render("Focus Pulse")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, balance)...),
	)
}

// viewTasks renders the flattened task list.
func (m *Model) viewTasks() string {
	if len(m.rows) == 0 {
		return m.styles.Muted.Render("No tasks yet. Press n to create one.")
	}

	var b strings.Builder
	for i, r := range m.rows {
		selected := i == m.cursor
		cursor := "  "
		if selected {
			cursor = m.styles.Cursor.Render("> ")
		}
		b.WriteString(cursor)
		if r.step < 0 {
			b.WriteString(m.renderTaskRow(r.task, selected))
		} else {
			b.WriteString(m.renderStepRow(r.task.Steps[r.step], selected))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderTaskRow(t *domain.Task, selected bool) string {
	style := m.styles.RowNormal
	if selected {
		style = m.styles.RowSelected
	} else if t.State() == domain.TaskComplete {
		style = m.styles.TaskComplete
	}
	line := fmt.Sprintf("%s %s (%d/%d)", StateIcon(t.State()), t.Title, t.DoneCount(), len(t.Steps))
	return style.Render(line) + " " + m.styles.Muted.Render(ids.Short(t.ID))
}

func (m *Model) renderStepRow(s domain.Step, selected bool) string {
	box := "[ ]"
	if s.Completed {
		box = "[x]"
	}
	text := s.Text
	switch {
	case selected:
		text = m.styles.RowSelected.Render(text)
	case s.Completed:
		text = m.styles.StepDone.Render(text)
	default:
		text = m.styles.RowNormal.Render(text)
	}
	return "    " + box + " " + text
}

// viewFocus renders the countdown.
func (m *Model) viewFocus() string {
	clockStyle := m.styles.Clock
	state := "Ready"
	switch m.timer.State() {
	case domain.TimerRunning:
		state = "Focusing..."
	case domain.TimerPaused:
		clockStyle = m.styles.ClockPaused
		state = "Paused"
	case domain.TimerIdle:
	}

	filled := int(m.timer.Progress() * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

	presets := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		if i == m.presetIdx {
			presets = append(presets, m.styles.Cursor.Render(fmt.Sprintf("[%d]", p)))
		} else {
			presets = append(presets, m.styles.Muted.Render(fmt.Sprint(p)))
		}
	}

	reward := domain.FocusReward(m.timer.Planned())
	return lipgloss.JoinVertical(lipgloss.Left,
		clockStyle.Render(m.timer.Clock()),
		state,
		m.styles.Progress.Render(bar),
		"",
		"Presets (min): "+strings.Join(presets, " "),
		m.styles.Muted.Render(fmt.Sprintf("Finish to earn %s", rewardText(reward))),
	)
}

// viewGarden renders the plants and the nursery.
func (m *Model) viewGarden() string {
	var b strings.Builder
	if m.garden == nil || len(m.garden.Plants) == 0 {
		b.WriteString(m.styles.Muted.Render("Your garden is empty. Plant a seed with 1-4."))
		b.WriteString("\n")
	} else {
		for i, p := range m.garden.Plants {
			cursor := "  "
			style := m.styles.RowNormal
			if i == m.plantCursor {
				cursor = m.styles.Cursor.Render("> ")
				style = m.styles.RowSelected
			}
			stage := m.styles.StageStyle(p.GrowthStage).Render(StageIcon(p.GrowthStage) + " " + p.GrowthStage.Display())
			fmt.Fprintf(&b, "%s%s  %s\n", cursor, style.Render(fmt.Sprintf("%d. %-10s", i+1, p.Type.Display())), stage)
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.DialogTitle.Render("Nursery"))
	b.WriteString("\n")
	if m.garden != nil {
		for i, item := range m.garden.Nursery {
			line := fmt.Sprintf("%d  %-10s %d seed%s", i+1, item.Type.Display(), item.Cost, pluralS(item.Cost))
			if item.Affordable {
				b.WriteString(m.styles.RowNormal.Render(line))
			} else {
				b.WriteString(m.styles.Muted.Render(line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Watering costs %d coins.", domain.WaterCost)))
	return b.String()
}

// viewProfile renders the profile summary.
func (m *Model) viewProfile() string {
	if m.profile == nil {
		return m.styles.Muted.Render("Loading...")
	}
	p := m.profile

	avatar := m.styles.Dialog.Render(p.Profile.Initial())
	name := m.styles.DialogTitle.Render(p.Profile.DisplayName())
	if p.Profile == nil {
		name += m.styles.Muted.Render("  (press e to set a name)")
	}

	stats := []string{
		fmt.Sprintf("Coins:       %d", p.Coins),
		fmt.Sprintf("Seeds:       %d", p.Seeds),
		fmt.Sprintf("Focus time:  %d min in %d sessions", p.TotalFocusMinutes, p.Sessions),
		fmt.Sprintf("Garden:      %d plants (%d mature)", p.Plants, p.MaturePlants),
	}

	var recent strings.Builder
	recent.WriteString(m.styles.DialogTitle.Render("Recent sessions"))
	recent.WriteString("\n")
	if len(p.Recent) == 0 {
		recent.WriteString(m.styles.Muted.Render("No sessions yet."))
	}
	for _, s := range p.Recent {
		fmt.Fprintf(&recent, "%s  %d/%d min\n", s.StartedAt.Format("Jan 2 15:04"), s.DurationActual, s.DurationPlanned)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, avatar, "  ", name),
		"",
		strings.Join(stats, "\n"),
		"",
		recent.String(),
	)
}

// viewFooter renders the input line, messages and key hints.
func (m *Model) viewFooter() string {
	var lines []string

	switch m.mode {
	case ModeInputTitle, ModeInputTitleAI, ModeInputStep, ModeInputName:
		lines = append(lines, m.styles.InputPrompt.Render(m.inputLabel())+" "+m.input.View())
	case ModeConfirm:
		title := m.targetID
		for _, t := range m.tasks {
			if t.ID == m.targetID {
				title = t.Title
			}
		}
		lines = append(lines, m.styles.DialogTitle.Render(fmt.Sprintf("Delete %q? (y/N)", title)))
	case ModeNormal, ModeHelp:
	}

	if m.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}

	lines = append(lines, m.help.ShortHelpView(m.keys.TabHelp(m.tab)))
	return m.styles.Footer.Render(strings.Join(lines, "\n"))
}

func (m *Model) inputLabel() string {
	switch m.mode {
	case ModeInputTitle:
		return "New task:"
	case ModeInputTitleAI:
		return "New task (AI):"
	case ModeInputStep:
		return "New step:"
	case ModeInputName:
		return "Name:"
	case ModeNormal, ModeConfirm, ModeHelp:
	}
	return ""
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Keys"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		m.styles.Muted.Render("Press any key to close"),
	))
}
