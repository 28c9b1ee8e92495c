package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// newTickerFunc returns the one-second tick source and its stop function.
// It is a variable so tests can drive the countdown without waiting.
var newTickerFunc = func() (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second)
	return t.C, t.Stop
}

// newFocusCommand creates the focus command for a foreground countdown.
func newFocusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Run a focus session",
		Long: `Count down a focus session in the terminal.

When the countdown reaches zero the session is recorded and pays
1 coin per planned minute plus 1 seed. Pressing Ctrl-C resets the
timer and records nothing.

Without an argument the [timer] default_minutes setting is used.

Examples:
  pulse focus
  pulse focus 45`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := domain.DefaultFocusMinutes
			if c.AppConfig != nil && c.AppConfig.Timer.DefaultMinutes > 0 {
				minutes = c.AppConfig.Timer.DefaultMinutes
			}
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid minutes %q: %w", args[0], domain.ErrInvalidDuration)
				}
				minutes = n
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ticks, stopTicker := newTickerFunc()
			defer stopTicker()

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Focusing for %d minutes. Press Ctrl-C to give up.\n", minutes)

			uc := c.RunFocusUseCase()
			out, err := uc.Execute(ctx, usecase.RunFocusInput{
				Ticks:   ticks,
				Minutes: minutes,
				OnTick: func(t *domain.Timer) {
					_, _ = fmt.Fprintf(w, "\r%s ", t.Clock())
				},
			})
			_, _ = fmt.Fprintln(w)
			if err != nil {
				return err
			}

			if out.Result == nil {
				_, _ = fmt.Fprintln(w, "Session reset. Nothing was recorded.")
				return nil
			}
			res := out.Result
			_, _ = fmt.Fprintf(w, "Session complete! %s (balance: %d coins, %d seeds)\n",
				formatReward(res.Reward), res.Ledger.Coins, res.Ledger.Seeds)
			return nil
		},
	}
}
