// Package tui provides the terminal dashboard for Focus Pulse.
package tui

// Tab is one of the dashboard pages.
type Tab int

const (
	TabTasks Tab = iota
	TabFocus
	TabGarden
	TabProfile
)

// allTabs lists the tabs in display order.
var allTabs = []Tab{TabTasks, TabFocus, TabGarden, TabProfile}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabTasks:
		return "Tasks"
	case TabFocus:
		return "Focus"
	case TabGarden:
		return "Garden"
	case TabProfile:
		return "Profile"
	default:
		return "unknown"
	}
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal       Mode = iota // Default navigation mode
	ModeInputTitle               // Title input for a new task
	ModeInputTitleAI             // Title input for a new task with AI steps
	ModeInputStep                // Step text input
	ModeInputName                // Display name input
	ModeConfirm                  // Delete confirmation
	ModeHelp                     // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputTitleAI:
		return "input_title_ai"
	case ModeInputStep:
		return "input_step"
	case ModeInputName:
		return "input_name"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputTitleAI, ModeInputStep, ModeInputName:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
