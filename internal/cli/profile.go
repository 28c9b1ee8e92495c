package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Set your display name",
		Long: `Store a local display name.

There are no accounts or passwords. Logging in again replaces the
name; tasks and the garden are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.LoginUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LoginInput{Name: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", out.Profile.Name)
			return nil
		},
	}
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear your display name",
		Long:  `Clear the local display name. Tasks and the garden are kept for the next login.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.LogoutUseCase()
			if err := uc.Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

// newProfileCommand creates the profile command.
func newProfileCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show focus statistics",
		Long:  `Display balances, lifetime focus minutes, garden size and the most recent focus sessions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowProfileUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "[%s] %s\n\n", out.Profile.Initial(), out.Profile.DisplayName())
			_, _ = fmt.Fprintf(w, "Coins:        %d\n", out.Coins)
			_, _ = fmt.Fprintf(w, "Seeds:        %d\n", out.Seeds)
			_, _ = fmt.Fprintf(w, "Focus time:   %d min in %d sessions\n", out.TotalFocusMinutes, out.Sessions)
			_, _ = fmt.Fprintf(w, "Garden:       %d plants (%d mature)\n", out.Plants, out.MaturePlants)

			if len(out.Recent) == 0 {
				return nil
			}
			_, _ = fmt.Fprintln(w, "\nRecent sessions:")
			for i := len(out.Recent) - 1; i >= 0; i-- {
				s := out.Recent[i]
				_, _ = fmt.Fprintf(w, "  %s  %d min\n", s.StartedAt.Local().Format("2006-01-02 15:04"), s.DurationActual)
			}
			return nil
		},
	}
}
