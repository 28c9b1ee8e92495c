package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// PlantSeedInput contains the parameters for planting.
type PlantSeedInput struct {
	Type domain.PlantType
}

// PlantSeedOutput contains the result of planting.
type PlantSeedOutput struct {
	Ledger *domain.Ledger // Balances after the purchase
	Plant  domain.Plant
	Cost   int
}

// PlantSeed is the use case for buying and planting a seed.
type PlantSeed struct {
	ledger domain.LedgerRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewPlantSeed creates a new PlantSeed use case.
func NewPlantSeed(ledger domain.LedgerRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *PlantSeed {
	return &PlantSeed{
		ledger: ledger,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute spends the type's seed cost and adds a sprout, atomically.
func (uc *PlantSeed) Execute(_ context.Context, in PlantSeedInput) (*PlantSeedOutput, error) {
	pt := domain.PlantType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	cost, ok := pt.Cost()
	if !ok {
		return nil, fmt.Errorf("%q: %w", in.Type, domain.ErrUnknownPlantType)
	}

	out := &PlantSeedOutput{Cost: cost}
	err := uc.ledger.Update(func(l *domain.Ledger) error {
		if !l.SpendSeeds(cost) {
			return domain.ErrInsufficientSeeds
		}
		out.Plant = domain.NewPlant(uc.ids.NewID(), pt, uc.clock.Now())
		l.AddPlant(out.Plant)
		out.Ledger = l.Clone()
		return nil
	})
	if err != nil {
		if uc.logger != nil {
			uc.logger.Info("garden", fmt.Sprintf("plant %s rejected: %v", pt, err))
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("garden", fmt.Sprintf("planted %s %s for %d seeds", pt, out.Plant.ID, cost))
	}

	return out, nil
}
