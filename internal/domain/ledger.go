package domain

// Initial balances for a first run.
const (
	InitialSeeds = 1
	InitialCoins = 0
)

// Ledger is the single source of truth for the reward economy.
// Fields are ordered to minimize memory padding.
type Ledger struct {
	Plants            []Plant        `json:"plants"`            // Planting order
	Sessions          []FocusSession `json:"sessions"`          // Completion order
	Coins             int            `json:"coins"`             // Spendable currency
	Seeds             int            `json:"seeds"`             // Planting currency
	TotalFocusMinutes int            `json:"totalFocusMinutes"` // Cumulative, never decreases
}

// NewLedger returns the first-run ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Plants:   []Plant{},
		Sessions: []FocusSession{},
		Coins:    InitialCoins,
		Seeds:    InitialSeeds,
	}
}

// Validate checks the balance invariants of a loaded ledger.
func (l *Ledger) Validate() error {
	if l.Coins < 0 || l.Seeds < 0 || l.TotalFocusMinutes < 0 {
		return ErrCorruptLedger
	}
	for _, p := range l.Plants {
		if !p.GrowthStage.IsValid() {
			return ErrCorruptLedger
		}
	}
	return nil
}

// CreditCoins adds coins. There is no upper bound.
func (l *Ledger) CreditCoins(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.Coins += amount
	return nil
}

// CreditSeeds adds seeds.
func (l *Ledger) CreditSeeds(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.Seeds += amount
	return nil
}

// Grant credits every non-zero part of a reward.
func (l *Ledger) Grant(r Reward) {
	if r.Coins > 0 {
		l.Coins += r.Coins
	}
	if r.Seeds > 0 {
		l.Seeds += r.Seeds
	}
}

// SpendSeeds removes seeds if the balance covers amount.
// On failure the ledger is unchanged.
func (l *Ledger) SpendSeeds(amount int) bool {
	if amount <= 0 || l.Seeds < amount {
		return false
	}
	l.Seeds -= amount
	return true
}

// SpendCoins removes coins if the balance covers amount.
// On failure the ledger is unchanged.
func (l *Ledger) SpendCoins(amount int) bool {
	if amount <= 0 || l.Coins < amount {
		return false
	}
	l.Coins -= amount
	return true
}

// RecordSession appends a finished session and adds its actual minutes to
// the running total. It grants no reward.
func (l *Ledger) RecordSession(s FocusSession) {
	l.Sessions = append(l.Sessions, s)
	if s.DurationActual > 0 {
		l.TotalFocusMinutes += s.DurationActual
	}
}

// AddPlant appends a plant. The caller must already have paid for it.
func (l *Ledger) AddPlant(p Plant) {
	l.Plants = append(l.Plants, p)
}

// Plant returns the plant with the given ID.
func (l *Ledger) Plant(id string) (Plant, bool) {
	for _, p := range l.Plants {
		if p.ID == id {
			return p, true
		}
	}
	return Plant{}, false
}

// AdvancePlantGrowth moves the plant one stage forward.
// Returns false if the plant does not exist or is already mature.
func (l *Ledger) AdvancePlantGrowth(id string) bool {
	for i := range l.Plants {
		if l.Plants[i].ID != id {
			continue
		}
		if l.Plants[i].GrowthStage >= StageMature {
			return false
		}
		l.Plants[i].GrowthStage++
		return true
	}
	return false
}

// RecentSessions returns up to n of the most recent sessions, oldest first.
func (l *Ledger) RecentSessions(n int) []FocusSession {
	if n <= 0 {
		return nil
	}
	start := len(l.Sessions) - n
	if start < 0 {
		start = 0
	}
	out := make([]FocusSession, len(l.Sessions)-start)
	copy(out, l.Sessions[start:])
	return out
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := *l
	if l.Plants != nil {
		c.Plants = make([]Plant, len(l.Plants))
		copy(c.Plants, l.Plants)
	}
	if l.Sessions != nil {
		c.Sessions = make([]FocusSession, len(l.Sessions))
		copy(c.Sessions, l.Sessions)
	}
	return &c
}
