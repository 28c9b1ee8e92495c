// Package cli provides the command-line interface for Focus Pulse.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/tui"
)

// Command group IDs.
const (
	groupSetup  = "setup"
	groupTask   = "task"
	groupReward = "reward"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// SetLaunchTUIFunc replaces the TUI launcher and returns a restore function.
func SetLaunchTUIFunc(fn func(*app.Container) error) func() {
	original := launchTUIFunc
	launchTUIFunc = fn
	return func() { launchTUIFunc = original }
}

// NewRootCommand creates the root command for pulse.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Focus timer, task steps and a garden to spend rewards on",
		Long: `Focus Pulse turns productive work into a small reward economy.

Completing task steps and focus sessions earns coins and seeds.
Seeds buy plants for the garden; coins water them until they mature.

Run without arguments to open the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupReward, Title: "Focus & Garden:"},
	)

	// Setup commands
	loginCmd := newLoginCommand(c)
	loginCmd.GroupID = groupSetup

	logoutCmd := newLogoutCommand(c)
	logoutCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	stepCmd := newStepCommand(c)
	stepCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	// Focus and garden commands
	focusCmd := newFocusCommand(c)
	focusCmd.GroupID = groupReward

	gardenCmd := newGardenCommand(c)
	gardenCmd.GroupID = groupReward

	plantCmd := newPlantCommand(c)
	plantCmd.GroupID = groupReward

	waterCmd := newWaterCommand(c)
	waterCmd.GroupID = groupReward

	profileCmd := newProfileCommand(c)
	profileCmd.GroupID = groupReward

	// TUI command
	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupReward

	// Add subcommands
	root.AddCommand(
		loginCmd,
		logoutCmd,
		configCmd,
		newCmd,
		listCmd,
		showCmd,
		stepCmd,
		toggleCmd,
		rmCmd,
		importCmd,
		focusCmd,
		gardenCmd,
		plantCmd,
		waterCmd,
		profileCmd,
		tuiCmd,
	)

	return root
}

// newTUICommand creates the tui command for launching the dashboard.
// This is the same as running `pulse` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive dashboard",
		Long:  `Launch the interactive terminal dashboard with the Tasks, Focus, Garden and Profile tabs.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the dashboard until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return fmt.Errorf("dashboard unavailable: no data store")
	}
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
