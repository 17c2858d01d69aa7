// Package service contains the business logic for the train line API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// Queries over a line's stations are answered by rebuilding an in-memory
// line.Line from the persisted stations, so the list semantics live in one
// place.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trainline/backend/internal/domain"
	"github.com/pkordes/trainline/backend/internal/line"
	"github.com/pkordes/trainline/backend/internal/repo"
)

// LineService implements business logic for lines and their stations.
type LineService struct {
	lines    repo.LineRepo
	stations repo.StationRepo
}

// NewLineService constructs a LineService backed by the provided repos.
func NewLineService(lines repo.LineRepo, stations repo.StationRepo) *LineService {
	return &LineService{lines: lines, stations: stations}
}

// Create validates and persists a new line. When initialStation is non-nil
// it becomes the line's first station.
// Returns domain.ErrValidation if name is blank. Station names are never
// validated: any text, including "", is a valid station name.
func (s *LineService) Create(ctx context.Context, name string, initialStation *string) (domain.Line, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Line{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	result, err := s.lines.Create(ctx, domain.Line{Name: name}, initialStation)
	if err != nil {
		return domain.Line{}, fmt.Errorf("service.LineService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single line.
// Returns domain.ErrNotFound if it does not exist.
func (s *LineService) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	result, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return domain.Line{}, fmt.Errorf("service.LineService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of lines and the total number of lines.
// Always returns a non-nil slice.
func (s *LineService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error) {
	lines, total, err := s.lines.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.LineService.List: %w", err)
	}
	if lines == nil {
		lines = []domain.Line{}
	}
	return lines, total, nil
}

// AppendStation adds a station named name to the end of the line.
// Returns domain.ErrNotFound if the line does not exist.
func (s *LineService) AppendStation(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error) {
	if _, err := s.lines.GetByID(ctx, lineID); err != nil {
		return domain.Station{}, fmt.Errorf("service.LineService.AppendStation: %w", err)
	}
	result, err := s.stations.Append(ctx, lineID, name)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.LineService.AppendStation: %w", err)
	}
	return result, nil
}

// Stations returns the stations of a line from head to tail.
// Always returns a non-nil slice.
func (s *LineService) Stations(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error) {
	if _, err := s.lines.GetByID(ctx, lineID); err != nil {
		return nil, fmt.Errorf("service.LineService.Stations: %w", err)
	}
	stations, err := s.stations.ListByLineID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("service.LineService.Stations: %w", err)
	}
	if stations == nil {
		return []domain.Station{}, nil
	}
	return stations, nil
}

// Load rebuilds the in-memory line from its persisted stations.
// The returned line is owned by the caller.
func (s *LineService) Load(ctx context.Context, lineID uuid.UUID) (*line.Line, error) {
	rec, err := s.lines.GetByID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("service.LineService.Load: %w", err)
	}
	stations, err := s.stations.ListByLineID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("service.LineService.Load: %w", err)
	}
	return buildLine(rec.Name, stations), nil
}

// Summary reports how many stations the line has.
func (s *LineService) Summary(ctx context.Context, lineID uuid.UUID) (domain.Summary, error) {
	l, err := s.Load(ctx, lineID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service.LineService.Summary: %w", err)
	}
	return domain.Summary{
		LineID: lineID,
		Name:   l.Name(),
		Count:  l.Count(),
		Empty:  l.IsEmpty(),
	}, nil
}

// Search looks up a station by exact name. A nil name is treated as not
// found rather than as an error.
func (s *LineService) Search(ctx context.Context, lineID uuid.UUID, name *string) (domain.SearchResult, error) {
	l, err := s.Load(ctx, lineID)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.LineService.Search: %w", err)
	}
	if name == nil {
		return domain.SearchResult{Index: -1}, nil
	}
	return domain.SearchResult{
		Name:     name,
		Contains: l.Contains(*name),
		Index:    l.IndexOf(*name),
	}, nil
}

// Reverse returns the station names from tail to head separated by "\n".
func (s *LineService) Reverse(ctx context.Context, lineID uuid.UUID) (string, error) {
	l, err := s.Load(ctx, lineID)
	if err != nil {
		return "", fmt.Errorf("service.LineService.Reverse: %w", err)
	}
	return l.ReverseSequence(), nil
}

// buildLine appends stations in the order given; callers pass them sorted
// by position.
func buildLine(name string, stations []domain.Station) *line.Line {
	l := line.New(name)
	for _, st := range stations {
		l.Append(st.Name)
	}
	return l
}
