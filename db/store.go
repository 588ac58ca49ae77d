package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/changelog-api/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Querier is the subset of *pgxpool.Pool (and pgx.Tx) the stores use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IsUniqueViolation reports whether err is a unique violation on a constraint
// whose name contains constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		strings.Contains(pgErr.ConstraintName, constraint)
}

// NotFoundOr maps pgx.ErrNoRows to a NotFoundError for resource and anything
// else to a DatabaseError describing op.
func NotFoundOr(err error, resource, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewNotFoundError(resource+" not found", nil)
	}
	return apperror.NewDatabaseError(fmt.Sprintf("failed to %s %s", op, resource), err)
}

// ParseID validates a client supplied id. Ids that are not UUIDs cannot exist,
// so they are reported as not found rather than reaching the database.
func ParseID(raw, resource string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperror.NewNotFoundError(resource+" not found", nil)
	}
	return id.String(), nil
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}
