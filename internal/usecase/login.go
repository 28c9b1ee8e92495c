package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// LoginInput contains the parameters for logging in.
type LoginInput struct {
	Name string // Display name (required)
}

// LoginOutput contains the stored profile.
type LoginOutput struct {
	Profile *domain.Profile
}

// Login is the use case for setting the local display name.
type Login struct {
	profiles domain.ProfileRepository
	logger   domain.Logger
}

// NewLogin creates a new Login use case.
func NewLogin(profiles domain.ProfileRepository, logger domain.Logger) *Login {
	return &Login{
		profiles: profiles,
		logger:   logger,
	}
}

// Execute stores the profile. Logging in again replaces the name; the
// ledger and tasks are untouched.
func (uc *Login) Execute(_ context.Context, in LoginInput) (*LoginOutput, error) {
	profile, err := domain.NewProfile(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.profiles.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("profile", fmt.Sprintf("logged in as %q", profile.Name))
	}
	return &LoginOutput{Profile: profile}, nil
}

// Logout is the use case for clearing the local profile.
type Logout struct {
	profiles domain.ProfileRepository
	logger   domain.Logger
}

// NewLogout creates a new Logout use case.
func NewLogout(profiles domain.ProfileRepository, logger domain.Logger) *Logout {
	return &Logout{
		profiles: profiles,
		logger:   logger,
	}
}

// Execute clears the profile. Progress is kept for the next login.
func (uc *Logout) Execute(_ context.Context) error {
	profile, err := uc.profiles.LoadProfile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return domain.ErrNotLoggedIn
	}
	if err := uc.profiles.ClearProfile(); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("profile", fmt.Sprintf("%q logged out", profile.Name))
	}
	return nil
}
