package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/infra/ids"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// newGardenCommand creates the garden command.
func newGardenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "garden",
		Short: "Show the garden and the nursery",
		Long: `Display your plants, your balances and the nursery price list.

Plants are numbered in planting order; the numbers can be passed to
'pulse water'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowGardenUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			printGarden(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// printGarden prints the balances, plants and nursery.
func printGarden(w io.Writer, out *usecase.ShowGardenOutput) {
	_, _ = fmt.Fprintf(w, "Coins: %d   Seeds: %d\n\n", out.Coins, out.Seeds)

	if len(out.Plants) == 0 {
		_, _ = fmt.Fprintln(w, "Your garden is empty. Plant a seed with 'pulse plant sunflower'.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(tw, "#\tID\tPLANT\tSTAGE")
		for i, p := range out.Plants {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, ids.Short(p.ID), p.Type.Display(), p.GrowthStage.Display())
		}
		_ = tw.Flush()
	}

	_, _ = fmt.Fprintf(w, "\nNursery (watering costs %d coins):\n", domain.WaterCost)
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, item := range out.Nursery {
		mark := " "
		if item.Affordable {
			mark = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s %s\t%s\t%d %s\n", mark, item.Type, item.Type.Display(), item.Cost, plural(item.Cost, "seed", "seeds"))
	}
	_ = tw.Flush()
}

// newPlantCommand creates the plant command.
func newPlantCommand(c *app.Container) *cobra.Command {
	var names []string
	for _, pt := range domain.AllPlantTypes() {
		names = append(names, string(pt))
	}

	return &cobra.Command{
		Use:       "plant <type>",
		Short:     "Buy and plant a seed",
		ValidArgs: names,
		Long: fmt.Sprintf(`Spend seeds to plant a sprout.

Types: %s

Examples:
  pulse plant sunflower`, strings.Join(names, ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.PlantSeedUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.PlantSeedInput{Type: domain.PlantType(args[0])})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Planted a %s (%s) for %d %s. Seeds left: %d\n",
				out.Plant.Type.Display(), ids.Short(out.Plant.ID), out.Cost, plural(out.Cost, "seed", "seeds"), out.Ledger.Seeds)
			return nil
		},
	}
}

// newWaterCommand creates the water command.
func newWaterCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "water <plant>",
		Short: "Water a plant to help it grow",
		Long: fmt.Sprintf(`Spend %d coins to move a plant one growth stage forward.

The plant is given as its number from 'pulse garden' or as an ID prefix.
Mature plants cannot be watered.

Examples:
  pulse water 1`, domain.WaterCost),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.WaterPlantUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.WaterPlantInput{PlantRef: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watered %s: now %s. Coins left: %d\n",
				out.Plant.Type.Display(), out.Plant.GrowthStage.Display(), out.Ledger.Coins)
			return nil
		},
	}
}
