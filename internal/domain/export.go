package domain

import "github.com/google/uuid"

// ExportRow is a single row in the full-data export: one row per station,
// with the line fields repeated. A line with no stations yields one row with
// Position -1 and an empty StationName.
type ExportRow struct {
	LineID      uuid.UUID
	LineName    string
	Position    int
	StationName string
}
