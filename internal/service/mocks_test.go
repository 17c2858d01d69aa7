package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trainline/backend/internal/domain"
	"github.com/pkordes/trainline/backend/internal/repo"
)

// mockLineRepo is a hand-written test double for repo.LineRepo.
// Each method is a function field; set only the ones your test needs.
type mockLineRepo struct {
	create    func(ctx context.Context, line domain.Line, initialStation *string) (domain.Line, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Line, error)
	list      func(ctx context.Context) ([]domain.Line, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error)
}

func (m *mockLineRepo) Create(ctx context.Context, line domain.Line, initialStation *string) (domain.Line, error) {
	return m.create(ctx, line, initialStation)
}
func (m *mockLineRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	return m.getByID(ctx, id)
}
func (m *mockLineRepo) List(ctx context.Context) ([]domain.Line, error) {
	return m.list(ctx)
}
func (m *mockLineRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error) {
	return m.listPaged(ctx, p)
}

// compile-time check: mockLineRepo must satisfy repo.LineRepo.
var _ repo.LineRepo = (*mockLineRepo)(nil)

// mockStationRepo is a hand-written test double for repo.StationRepo.
type mockStationRepo struct {
	appendFn     func(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error)
	listByLineID func(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error)
}

func (m *mockStationRepo) Append(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error) {
	return m.appendFn(ctx, lineID, name)
}
func (m *mockStationRepo) ListByLineID(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error) {
	return m.listByLineID(ctx, lineID)
}

// compile-time check: mockStationRepo must satisfy repo.StationRepo.
var _ repo.StationRepo = (*mockStationRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// foundLineRepo returns a LineRepo whose GetByID always finds a line named name.
func foundLineRepo(name string) *mockLineRepo {
	return &mockLineRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Line, error) {
			return domain.Line{ID: id, Name: name}, nil
		},
	}
}

// missingLineRepo returns a LineRepo whose GetByID never finds anything.
func missingLineRepo() *mockLineRepo {
	return &mockLineRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Line, error) {
			return domain.Line{}, domain.ErrNotFound
		},
	}
}

// stationsRepo returns a StationRepo that lists names as stations in order.
func stationsRepo(names ...string) *mockStationRepo {
	return &mockStationRepo{
		listByLineID: func(_ context.Context, lineID uuid.UUID) ([]domain.Station, error) {
			out := make([]domain.Station, len(names))
			for i, n := range names {
				out[i] = domain.Station{ID: uuid.New(), LineID: lineID, Name: n, Position: i}
			}
			return out, nil
		},
	}
}

func strPtr(s string) *string { return &s }
