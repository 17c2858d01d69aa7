// Package domain contains the persisted records and sentinel errors shared by
// the repo, service, and handler packages. The in-memory linked list itself
// lives in internal/line; these types describe how a line is stored and
// reported.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Line is a named train line. Its stations are stored separately and ordered
// by Station.Position.
type Line struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary reports the size of a line.
type Summary struct {
	LineID uuid.UUID
	Name   string
	Count  int
	Empty  bool
}

// SearchResult is the answer to a station lookup on a line.
// Name is nil when the caller supplied no name; in that case Contains is
// false and Index is -1.
type SearchResult struct {
	Name     *string
	Contains bool
	Index    int
}
