package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"go-jobboard-backend/internal/domain"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const (
	constraintIdentityEmail  = "identities_email_key"
	constraintJobApplication = "job_applications_job_candidate_key"
)

// uniqueViolation returns the violated constraint name, or "" when err is
// not a unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound and leaves other errors alone.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
