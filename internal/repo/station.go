package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// StationRepo defines the persistence operations for Stations.
// Stations are append-only: there is no update or delete.
type StationRepo interface {
	// Append stores a new station after the current last station of the line
	// and returns it with its assigned position.
	// Returns domain.ErrNotFound if the line does not exist and
	// domain.ErrConflict if a concurrent append took the same position.
	Append(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error)

	// ListByLineID returns all stations of a line ordered by position.
	ListByLineID(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error)
}

// pgStationRepo is the Postgres implementation of StationRepo.
type pgStationRepo struct {
	db db
}

// NewStationRepo constructs a StationRepo backed by the provided db connection.
func NewStationRepo(db db) StationRepo {
	return &pgStationRepo{db: db}
}

// Append inserts at one past the highest existing position, or 0 for an
// empty line. The UNIQUE (line_id, position) constraint rejects a racing
// writer instead of letting two stations share a slot.
func (r *pgStationRepo) Append(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error) {
	const q = `
		INSERT INTO stations (line_id, name, position)
		SELECT @line_id::uuid, @name, COALESCE(MAX(position) + 1, 0)
		FROM stations
		WHERE line_id = @line_id::uuid
		RETURNING id, line_id, name, position, created_at`

	args := pgx.NamedArgs{"line_id": lineID, "name": name}

	result, err := scanStation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Append: %w", err)
	}
	return result, nil
}

// ListByLineID returns the stations of a line, head first.
func (r *pgStationRepo) ListByLineID(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error) {
	const q = `
		SELECT id, line_id, name, position, created_at
		FROM stations
		WHERE line_id = @line_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"line_id": lineID})
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.ListByLineID: %w", err)
	}
	defer rows.Close()

	stations := []domain.Station{}
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StationRepo.ListByLineID: scan: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StationRepo.ListByLineID: rows: %w", err)
	}
	return stations, nil
}

// scanStation maps a single database row into a domain.Station.
func scanStation(s scanner) (domain.Station, error) {
	var (
		st     domain.Station
		id     pgtype.UUID
		lineID pgtype.UUID
	)
	if err := s.Scan(&id, &lineID, &st.Name, &st.Position, &st.CreatedAt); err != nil {
		return domain.Station{}, mapPgError(err)
	}
	st.ID = uuid.UUID(id.Bytes)
	st.LineID = uuid.UUID(lineID.Bytes)
	return st, nil
}
