// Package ids generates entity IDs.
package ids

import (
	"github.com/google/uuid"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Ensure Generator implements domain.IDGenerator.
var _ domain.IDGenerator = Generator{}

// Generator produces random (version 4) UUIDs.
type Generator struct{}

// NewID returns a new UUID string.
func (Generator) NewID() string {
	return uuid.New().String()
}

// Short returns the display form of an ID: its first 8 characters.
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
