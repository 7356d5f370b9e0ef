package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

func (r *companyProfileRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.CompanyProfile, error) {
	query := `
		SELECT id, identity_id, company_name, industry, company_size,
		       contact_person, phone_number, website, agree_terms, created_at
		FROM company_profiles
		WHERE identity_id = $1`

	var p domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&p.ID, &p.IdentityID, &p.CompanyName, &p.Industry, &p.CompanySize,
		&p.ContactPerson, &p.PhoneNumber, &p.Website, &p.AgreeTerms, &p.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
