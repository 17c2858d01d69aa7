// Package repo contains all database access logic for the train line API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// Postgres error codes mapped onto domain sentinels.
const (
	pgUniqueViolation          = "23505"
	pgForeignKeyViolation      = "23503"
	pgCharacterNotInRepertoire = "22021" // NUL bytes or invalid UTF-8 in text
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapPgError translates driver errors into domain sentinels where one applies.
// Unrecognised errors are returned unchanged.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrConflict
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		case pgCharacterNotInRepertoire:
			return fmt.Errorf("%w: text must be valid UTF-8 without NUL bytes", domain.ErrValidation)
		}
	}
	return err
}
