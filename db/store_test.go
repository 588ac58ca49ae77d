package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/apperror"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	assert.True(t, IsUniqueViolation(dup, "username"))
	assert.False(t, IsUniqueViolation(dup, "email"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "users_username_key"}, "username"))
	assert.False(t, IsUniqueViolation(errors.New("boom"), "username"))
}

func TestNotFoundOr(t *testing.T) {
	t.Parallel()

	err := NotFoundOr(pgx.ErrNoRows, "product", "get")
	require.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "product not found", err.Error())

	err = NotFoundOr(errors.New("conn reset"), "product", "get")
	ae, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.DatabaseError, ae.Type)
	assert.Equal(t, "failed to get product", ae.Message)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id := NewID()
	got, err := ParseID(id, "product")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = ParseID("  ", "update")
	assert.Empty(t, got)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "update not found", err.Error())

	_, err = ParseID("1; DROP TABLE products", "product")
	assert.True(t, apperror.IsNotFound(err))
}
