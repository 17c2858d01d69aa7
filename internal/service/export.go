package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trainline/backend/internal/domain"
	"github.com/pkordes/trainline/backend/internal/repo"
)

// ExportService assembles a flat export of every line and its stations.
type ExportService struct {
	lines    repo.LineRepo
	stations repo.StationRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(lines repo.LineRepo, stations repo.StationRepo) *ExportService {
	return &ExportService{lines: lines, stations: stations}
}

// Export returns one row per station, lines in creation order and stations
// head to tail. A line with no stations contributes a single row with
// Position -1.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	lines, err := s.lines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, l := range lines {
		stations, err := s.stations.ListByLineID(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: line %s: %w", l.ID, err)
		}
		if len(stations) == 0 {
			rows = append(rows, domain.ExportRow{LineID: l.ID, LineName: l.Name, Position: -1})
			continue
		}
		for _, st := range stations {
			rows = append(rows, domain.ExportRow{
				LineID:      l.ID,
				LineName:    l.Name,
				Position:    st.Position,
				StationName: st.Name,
			})
		}
	}
	return rows, nil
}
