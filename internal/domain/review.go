package domain

import (
	"context"
	"time"
)

const (
	AuthorKindStudent = "student"
	AuthorKindCompany = "company"

	MinRating = 1
	MaxRating = 5
)

// Review is a public testimonial. It has no link to an Identity.
type Review struct {
	ID          int64     `json:"id"`
	AuthorName  string    `json:"author_name"`
	CompanyName *string   `json:"company_name,omitempty"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	AuthorKind  string    `json:"author_kind"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewInput is the raw form. Rating is nil when missing or not a number.
type ReviewInput struct {
	AuthorName  string `json:"author_name" validate:"max=150,no_emoji"`
	CompanyName string `json:"company_name" validate:"max=200"`
	Rating      *int   `json:"rating"`
	Text        string `json:"text" validate:"max=4000"`
	AuthorKind  string `json:"author_kind"`
}

type LandingView struct {
	Reviews []Review `json:"reviews"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	ListVisible(ctx context.Context, limit int) ([]Review, error)
}

type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *ReviewInput) (*Review, error)
	Landing(ctx context.Context) (*LandingView, error)
}
