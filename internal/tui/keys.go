package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	// Tasks
	New     key.Binding // Create task
	NewAI   key.Binding // Create task with AI steps
	AddStep key.Binding // Append a step to the selected task
	Toggle  key.Binding // Check or uncheck the selected step
	Delete  key.Binding // Delete the selected task

	// Focus
	Start      key.Binding // Start, pause or resume the countdown
	Reset      key.Binding // Abandon the countdown
	PrevPreset key.Binding
	NextPreset key.Binding

	// Garden
	Plant key.Binding // Plant by nursery number
	Water key.Binding // Water the selected plant

	// Profile
	Login  key.Binding
	Logout key.Binding

	// General
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Enter   key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		NewAI: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new task (AI steps)"),
		),
		AddStep: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add step"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle step"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "shorter"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "longer"),
		),
		Plant: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "plant"),
		),
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "water"),
		),
		Login: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "set name"),
		),
		Logout: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "log out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// TabHelp returns the bindings relevant on the given tab.
func (k KeyMap) TabHelp(tab Tab) []key.Binding {
	switch tab {
	case TabTasks:
		return []key.Binding{k.Up, k.Down, k.New, k.NewAI, k.AddStep, k.Toggle, k.Delete, k.NextTab, k.Help, k.Quit}
	case TabFocus:
		return []key.Binding{k.Start, k.Reset, k.PrevPreset, k.NextPreset, k.NextTab, k.Help, k.Quit}
	case TabGarden:
		return []key.Binding{k.Up, k.Down, k.Plant, k.Water, k.NextTab, k.Help, k.Quit}
	case TabProfile:
		return []key.Binding{k.Login, k.Logout, k.NextTab, k.Help, k.Quit}
	}
	return k.ShortHelp()
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.New, k.NewAI, k.AddStep, k.Toggle, k.Delete},
		{k.Start, k.Reset, k.PrevPreset, k.NextPreset},
		{k.Plant, k.Water, k.Login, k.Logout},
		{k.Enter, k.Escape, k.Confirm, k.Help, k.Quit},
	}
}
