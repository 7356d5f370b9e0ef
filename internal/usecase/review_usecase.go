package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo   domain.ReviewRepository
	validate     *validator.Validate
	landingLimit int
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, validate *validator.Validate, landingLimit int) domain.ReviewUsecase {
	return &reviewUsecase{reviewRepo: reviewRepo, validate: validate, landingLimit: landingLimit}
}

// SubmitReview publishes a review immediately. Out-of-range ratings are
// clamped, never rejected.
func (u *reviewUsecase) SubmitReview(ctx context.Context, input *domain.ReviewInput) (*domain.Review, error) {
	input.Text = strings.TrimSpace(input.Text)
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	if input.Text == "" {
		return nil, apperror.Validation("Please write a review.").WithRedirect(domain.RedirectLanding)
	}
	if err := validateInput(u.validate, input, domain.RedirectLanding); err != nil {
		return nil, err
	}

	review := &domain.Review{
		AuthorName:  input.AuthorName,
		CompanyName: optionalString(input.CompanyName),
		Rating:      ClampRating(input.Rating),
		Text:        input.Text,
		AuthorKind:  normalizeAuthorKind(input.AuthorKind),
		IsVisible:   true,
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperror.Internal(err)
	}
	return review, nil
}

func (u *reviewUsecase) Landing(ctx context.Context) (*domain.LandingView, error) {
	reviews, err := u.reviewRepo.ListVisible(ctx, u.landingLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.LandingView{Reviews: reviews}, nil
}

// ClampRating forces a rating into [MinRating, MaxRating]. A missing rating
// counts as the maximum.
func ClampRating(rating *int) int {
	if rating == nil {
		return domain.MaxRating
	}
	return max(domain.MinRating, min(domain.MaxRating, *rating))
}

func normalizeAuthorKind(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case domain.AuthorKindStudent, domain.AuthorKindCompany:
		return k
	}
	return domain.AuthorKindStudent
}
