package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type identityRepo struct {
	db *pgxpool.Pool
}

func NewIdentityRepository(db *pgxpool.Pool) domain.IdentityRepository {
	return &identityRepo{db: db}
}

const identityColumns = `id, email, password_hash, role, created_at`

func (r *identityRepo) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`
	return scanIdentity(r.db.QueryRow(ctx, query, id))
}

func (r *identityRepo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE email = $1`
	return scanIdentity(r.db.QueryRow(ctx, query, email))
}

func (r *identityRepo) CreateCandidate(ctx context.Context, identity *domain.Identity, profile *domain.CandidateProfile) error {
	return r.withIdentity(ctx, identity, func(tx pgx.Tx) error {
		query := `INSERT INTO candidate_profiles (identity_id, full_name, agree_terms)
		          VALUES ($1, $2, $3) RETURNING id, created_at`
		profile.IdentityID = identity.ID
		return tx.QueryRow(ctx, query, identity.ID, profile.FullName, profile.AgreeTerms).
			Scan(&profile.ID, &profile.CreatedAt)
	})
}

func (r *identityRepo) CreateCompany(ctx context.Context, identity *domain.Identity, profile *domain.CompanyProfile) error {
	return r.withIdentity(ctx, identity, func(tx pgx.Tx) error {
		query := `INSERT INTO company_profiles
		          (identity_id, company_name, industry, company_size, contact_person, phone_number, website, agree_terms)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
		profile.IdentityID = identity.ID
		return tx.QueryRow(ctx, query,
			identity.ID, profile.CompanyName, profile.Industry, profile.CompanySize,
			profile.ContactPerson, profile.PhoneNumber, profile.Website, profile.AgreeTerms,
		).Scan(&profile.ID, &profile.CreatedAt)
	})
}

// withIdentity inserts the identity and runs insertProfile in the same
// transaction, so either both rows exist or neither does.
func (r *identityRepo) withIdentity(ctx context.Context, identity *domain.Identity, insertProfile func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO identities (id, email, password_hash, role)
	          VALUES ($1, $2, $3, $4) RETURNING created_at`
	err = tx.QueryRow(ctx, query, identity.ID, identity.Email, identity.PasswordHash, identity.Role).
		Scan(&identity.CreatedAt)
	if err != nil {
		if name, ok := uniqueViolation(err); ok && name == constraintIdentityEmail {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert identity: %w", err)
	}

	if err := insertProfile(tx); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return tx.Commit(ctx)
}

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var identity domain.Identity
	err := row.Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.Role, &identity.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &identity, nil
}
