package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/internal/domain"
)

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraintJobApplication})
	name, ok := uniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, constraintJobApplication, name)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("boom"))
	assert.False(t, ok)
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), domain.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, notFound(other))
	assert.NoError(t, notFound(nil))
}
