package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// RecentSessionsWindow is the number of sessions shown on the profile.
const RecentSessionsWindow = 7

// ShowProfileOutput contains the aggregated statistics.
// Fields are ordered to minimize memory padding.
type ShowProfileOutput struct {
	Profile           *domain.Profile       // nil when nobody is logged in
	Recent            []domain.FocusSession // Oldest first
	Coins             int
	Seeds             int
	TotalFocusMinutes int
	Plants            int
	MaturePlants      int
	Sessions          int
}

// ShowProfile is the use case for the read-only profile view.
type ShowProfile struct {
	profiles domain.ProfileRepository
	ledger   domain.LedgerRepository
}

// NewShowProfile creates a new ShowProfile use case.
func NewShowProfile(profiles domain.ProfileRepository, ledger domain.LedgerRepository) *ShowProfile {
	return &ShowProfile{
		profiles: profiles,
		ledger:   ledger,
	}
}

// Execute aggregates the ledger into profile statistics.
func (uc *ShowProfile) Execute(_ context.Context) (*ShowProfileOutput, error) {
	profile, err := uc.profiles.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	l, err := uc.ledger.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	out := &ShowProfileOutput{
		Profile:           profile,
		Recent:            l.RecentSessions(RecentSessionsWindow),
		Coins:             l.Coins,
		Seeds:             l.Seeds,
		TotalFocusMinutes: l.TotalFocusMinutes,
		Plants:            len(l.Plants),
		Sessions:          len(l.Sessions),
	}
	for _, p := range l.Plants {
		if p.IsMature() {
			out.MaturePlants++
		}
	}
	return out, nil
}
