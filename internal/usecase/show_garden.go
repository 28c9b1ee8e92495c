package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// NurseryItem is one entry of the plant catalog.
type NurseryItem struct {
	Type       domain.PlantType
	Cost       int
	Affordable bool
}

// ShowGardenOutput contains the garden and the nursery catalog.
// Fields are ordered to minimize memory padding.
type ShowGardenOutput struct {
	Plants  []domain.Plant // Planting order
	Nursery []NurseryItem  // Cheapest first
	Coins   int
	Seeds   int
}

// ShowGarden is the use case for displaying the garden.
type ShowGarden struct {
	ledger domain.LedgerRepository
}

// NewShowGarden creates a new ShowGarden use case.
func NewShowGarden(ledger domain.LedgerRepository) *ShowGarden {
	return &ShowGarden{ledger: ledger}
}

// Execute returns the plants, balances and what the balance can buy.
func (uc *ShowGarden) Execute(_ context.Context) (*ShowGardenOutput, error) {
	l, err := uc.ledger.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	out := &ShowGardenOutput{
		Plants: l.Plants,
		Coins:  l.Coins,
		Seeds:  l.Seeds,
	}
	for _, pt := range domain.AllPlantTypes() {
		cost, _ := pt.Cost()
		out.Nursery = append(out.Nursery, NurseryItem{
			Type:       pt,
			Cost:       cost,
			Affordable: l.Seeds >= cost,
		})
	}
	return out, nil
}
