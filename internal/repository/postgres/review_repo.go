package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (author_name, company_name, rating, text, author_kind, is_visible)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		review.AuthorName, review.CompanyName, review.Rating, review.Text, review.AuthorKind, review.IsVisible,
	).Scan(&review.ID, &review.CreatedAt)
}

// ListVisible returns the newest visible reviews, at most limit of them
func (r *reviewRepo) ListVisible(ctx context.Context, limit int) ([]domain.Review, error) {
	query := `
		SELECT id, author_name, company_name, rating, text, author_kind, is_visible, created_at
		FROM reviews
		WHERE is_visible
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.AuthorName, &rv.CompanyName, &rv.Rating, &rv.Text,
			&rv.AuthorKind, &rv.IsVisible, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
