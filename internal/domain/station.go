package domain

import (
	"time"

	"github.com/google/uuid"
)

// Station is a stop on a line.
// Position is the zero-based insertion index; it never changes once assigned.
type Station struct {
	ID        uuid.UUID
	LineID    uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}
