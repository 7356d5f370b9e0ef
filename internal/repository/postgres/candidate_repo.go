package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, identity_id, full_name, agree_terms, created_at
	          FROM candidate_profiles WHERE identity_id = $1`
	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, identityID).Scan(&p.ID, &p.IdentityID, &p.FullName, &p.AgreeTerms, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
