package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// LineRepo defines the persistence operations for Lines.
// The service layer depends on this interface, not the Postgres implementation.
type LineRepo interface {
	// Create inserts a new line and returns the persisted record. When
	// initialStation is non-nil it is stored as the line's first station in
	// the same statement.
	Create(ctx context.Context, line domain.Line, initialStation *string) (domain.Line, error)

	// GetByID retrieves a single line by its UUID primary key.
	// Returns domain.ErrNotFound if no line with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error)

	// List returns all lines in creation order.
	List(ctx context.Context) ([]domain.Line, error)

	// ListPaged returns one page of lines in creation order and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error)
}

// pgLineRepo is the Postgres implementation of LineRepo.
type pgLineRepo struct {
	db db
}

// NewLineRepo constructs a LineRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLineRepo(db db) LineRepo {
	return &pgLineRepo{db: db}
}

// Create inserts the line, and optionally its head station, atomically.
func (r *pgLineRepo) Create(ctx context.Context, line domain.Line, initialStation *string) (domain.Line, error) {
	const q = `
		WITH l AS (
			INSERT INTO lines (name)
			VALUES (@name)
			RETURNING id, name, created_at
		), s AS (
			INSERT INTO stations (line_id, name, position)
			SELECT id, @initial_station::text, 0
			FROM l
			WHERE @has_initial::boolean
		)
		SELECT id, name, created_at FROM l`

	args := pgx.NamedArgs{
		"name":            line.Name,
		"initial_station": initialStation, // nil becomes NULL
		"has_initial":     initialStation != nil,
	}

	result, err := scanLine(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Line{}, fmt.Errorf("repo.LineRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a line by primary key.
func (r *pgLineRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	const q = `
		SELECT id, name, created_at
		FROM lines
		WHERE id = @id`

	result, err := scanLine(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Line{}, fmt.Errorf("repo.LineRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns every line, oldest first.
func (r *pgLineRepo) List(ctx context.Context) ([]domain.Line, error) {
	const q = `
		SELECT id, name, created_at
		FROM lines
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.LineRepo.List: %w", err)
	}
	lines, err := collectLines(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.LineRepo.List: %w", err)
	}
	return lines, nil
}

// ListPaged returns the requested page of lines and the total number of lines.
func (r *pgLineRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error) {
	const countQ = `SELECT count(*) FROM lines`
	const q = `
		SELECT id, name, created_at
		FROM lines
		ORDER BY created_at, id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.LineRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LineRepo.ListPaged: %w", err)
	}
	lines, err := collectLines(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LineRepo.ListPaged: %w", err)
	}
	return lines, total, nil
}

// collectLines drains rows into a non-nil slice and closes them.
func collectLines(rows pgx.Rows) ([]domain.Line, error) {
	defer rows.Close()

	lines := []domain.Line{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return lines, nil
}

// scanLine maps a single database row into a domain.Line.
func scanLine(s scanner) (domain.Line, error) {
	var (
		l  domain.Line
		id pgtype.UUID
	)
	if err := s.Scan(&id, &l.Name, &l.CreatedAt); err != nil {
		return domain.Line{}, mapPgError(err)
	}
	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}
