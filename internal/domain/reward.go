package domain

// Reward policy.
const (
	StepRewardCoins     = 1  // Completing a single step
	TaskBonusCoins      = 10 // Completing every step of a task
	TaskBonusSeeds      = 1
	FocusRewardSeeds    = 1 // Natural completion of a focus session
	FocusCoinsPerMinute = 1 // Paid on planned minutes, not actual
)

// Reward is an amount of currency granted for an action.
type Reward struct {
	Coins int
	Seeds int
}

// IsZero returns true if the reward grants nothing.
func (r Reward) IsZero() bool {
	return r.Coins == 0 && r.Seeds == 0
}

// Add returns the sum of two rewards.
func (r Reward) Add(o Reward) Reward {
	return Reward{Coins: r.Coins + o.Coins, Seeds: r.Seeds + o.Seeds}
}

// FocusReward returns the reward for a session that ran to completion.
func FocusReward(plannedMinutes int) Reward {
	return Reward{
		Coins: plannedMinutes * FocusCoinsPerMinute,
		Seeds: FocusRewardSeeds,
	}
}
