package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase/shared"
)

// WaterPlantInput contains the parameters for watering.
type WaterPlantInput struct {
	PlantRef string // 1-based garden position, plant ID or unique prefix
}

// WaterPlantOutput contains the result of watering.
type WaterPlantOutput struct {
	Ledger *domain.Ledger // Balances after the purchase
	Plant  domain.Plant   // The plant after growing
}

// WaterPlant is the use case for spending coins to grow a plant.
type WaterPlant struct {
	ledger domain.LedgerRepository
	logger domain.Logger
}

// NewWaterPlant creates a new WaterPlant use case.
func NewWaterPlant(ledger domain.LedgerRepository, logger domain.Logger) *WaterPlant {
	return &WaterPlant{
		ledger: ledger,
		logger: logger,
	}
}

// Execute spends WaterCost coins and advances the plant one stage.
// Both happen in one ledger update; if either fails nothing changes.
func (uc *WaterPlant) Execute(_ context.Context, in WaterPlantInput) (*WaterPlantOutput, error) {
	out := &WaterPlantOutput{}
	err := uc.ledger.Update(func(l *domain.Ledger) error {
		plant, err := shared.FindPlant(l, in.PlantRef)
		if err != nil {
			return err
		}
		if plant.IsMature() {
			return domain.ErrPlantMature
		}
		if !l.SpendCoins(domain.WaterCost) {
			return domain.ErrInsufficientCoins
		}
		if !l.AdvancePlantGrowth(plant.ID) {
			// Discards the spend along with the rest of the update
			return domain.ErrPlantMature
		}
		out.Plant, _ = l.Plant(plant.ID)
		out.Ledger = l.Clone()
		return nil
	})
	if err != nil {
		if uc.logger != nil {
			uc.logger.Info("garden", fmt.Sprintf("water %q rejected: %v", in.PlantRef, err))
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("garden", fmt.Sprintf("watered %s, now %s", out.Plant.ID, out.Plant.GrowthStage.Display()))
	}

	return out, nil
}
