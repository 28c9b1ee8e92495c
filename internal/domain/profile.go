package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Profile is the locally logged-in user.
type Profile struct {
	Name string `json:"name"`
}

// NewProfile validates and trims a display name.
func NewProfile(name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Profile{Name: name}, nil
}

// Initial returns the upper-cased first letter of the name, or "U".
func (p *Profile) Initial() string {
	if p == nil || p.Name == "" {
		return "U"
	}
	r, _ := utf8.DecodeRuneInString(p.Name)
	return string(unicode.ToUpper(r))
}

// DisplayName returns the name, or a placeholder for an anonymous profile.
func (p *Profile) DisplayName() string {
	if p == nil || p.Name == "" {
		return "Focus Traveler"
	}
	return p.Name
}
