package domain

import "time"

// WaterCost is the coin price of watering a plant once.
const WaterCost = 5

// PlantType is the species of a plant. It is fixed at planting time.
type PlantType string

const (
	PlantSunflower PlantType = "sunflower"
	PlantCactus    PlantType = "cactus"
	PlantFlower    PlantType = "flower"
	PlantTree      PlantType = "tree"
)

// seedCosts is the nursery price list in seeds.
var seedCosts = map[PlantType]int{
	PlantSunflower: 1,
	PlantCactus:    2,
	PlantFlower:    3,
	PlantTree:      5,
}

// AllPlantTypes returns the plant types in nursery order (cheapest first).
func AllPlantTypes() []PlantType {
	return []PlantType{PlantSunflower, PlantCactus, PlantFlower, PlantTree}
}

// Cost returns the seed price of the plant type.
func (t PlantType) Cost() (int, bool) {
	cost, ok := seedCosts[t]
	return cost, ok
}

// IsValid returns true if the plant type is known.
func (t PlantType) IsValid() bool {
	_, ok := seedCosts[t]
	return ok
}

// Display returns the nursery name of the plant type.
func (t PlantType) Display() string {
	switch t {
	case PlantSunflower:
		return "Sunflower"
	case PlantCactus:
		return "Cactus"
	case PlantFlower:
		return "Rose"
	case PlantTree:
		return "Oak Tree"
	default:
		return string(t)
	}
}

// GrowthStage is the maturity level of a plant.
type GrowthStage int

const (
	StageSprout  GrowthStage = 1
	StageGrowing GrowthStage = 2
	StageMature  GrowthStage = 3
)

// IsValid returns true if the stage is within sprout..mature.
func (s GrowthStage) IsValid() bool {
	return s >= StageSprout && s <= StageMature
}

// Display returns a human-readable representation of the stage.
func (s GrowthStage) Display() string {
	switch s {
	case StageSprout:
		return "Sprout"
	case StageGrowing:
		return "Growing"
	case StageMature:
		return "Mature"
	default:
		return "Unknown"
	}
}

// Plant is a plant in the garden.
// Fields are ordered to minimize memory padding.
type Plant struct {
	PlantedAt   time.Time   `json:"plantedAt"`
	ID          string      `json:"id"`
	Type        PlantType   `json:"type"`
	GrowthStage GrowthStage `json:"growthStage"`
}

// NewPlant creates a sprout of the given type.
func NewPlant(id string, t PlantType, now time.Time) Plant {
	return Plant{
		ID:          id,
		Type:        t,
		GrowthStage: StageSprout,
		PlantedAt:   now,
	}
}

// IsMature returns true if the plant cannot grow any further.
func (p Plant) IsMature() bool {
	return p.GrowthStage >= StageMature
}
