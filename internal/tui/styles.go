package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Currency colors
	Coin lipgloss.Color
	Seed lipgloss.Color

	// Growth stage colors
	Sprout  lipgloss.Color
	Growing lipgloss.Color
	Mature  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Coin: lipgloss.Color("#FDCB6E"),
	Seed: lipgloss.Color("#55EFC4"),

	Sprout:  lipgloss.Color("#81ECEC"),
	Growing: lipgloss.Color("#74B9FF"),
	Mature:  lipgloss.Color("#00B894"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Balance     lipgloss.Style
	Coins       lipgloss.Style
	Seeds       lipgloss.Style

	// Rows
	Cursor       lipgloss.Style
	RowNormal    lipgloss.Style
	RowSelected  lipgloss.Style
	StepDone     lipgloss.Style
	TaskComplete lipgloss.Style
	Muted        lipgloss.Style

	// Focus
	Clock       lipgloss.Style
	ClockPaused lipgloss.Style
	Progress    lipgloss.Style

	// Growth stages
	StageSprout  lipgloss.Style
	StageGrowing lipgloss.Style
	StageMature  lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Status lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Underline(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		Balance: lipgloss.NewStyle().
			PaddingLeft(2),

		Coins: lipgloss.NewStyle().
			Foreground(Colors.Coin).
			Bold(true),

		Seeds: lipgloss.NewStyle().
			Foreground(Colors.Seed).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		RowNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		RowSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		StepDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskComplete: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		ClockPaused: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning),

		Progress: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		StageSprout: lipgloss.NewStyle().
			Foreground(Colors.Sprout),

		StageGrowing: lipgloss.NewStyle().
			Foreground(Colors.Growing),

		StageMature: lipgloss.NewStyle().
			Foreground(Colors.Mature).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StageStyle returns the style for a growth stage.
func (s Styles) StageStyle(stage domain.GrowthStage) lipgloss.Style {
	switch stage {
	case domain.StageSprout:
		return s.StageSprout
	case domain.StageGrowing:
		return s.StageGrowing
	case domain.StageMature:
		return s.StageMature
	default:
		return s.Muted
	}
}

// StageIcon returns an icon for a growth stage.
func StageIcon(stage domain.GrowthStage) string {
	switch stage {
	case domain.StageSprout:
		return "."
	case domain.StageGrowing:
		return "o"
	case domain.StageMature:
		return "@"
	default:
		return "?"
	}
}

// StateIcon returns an icon for a task state.
func StateIcon(state domain.TaskState) string {
	switch state {
	case domain.TaskCreated:
		return "○"
	case domain.TaskInProgress:
		return "●"
	case domain.TaskComplete:
		return "✓"
	default:
		return "?"
	}
}
