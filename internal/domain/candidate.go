package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID         int64     `json:"id"`
	IdentityID string    `json:"identity_id"`
	FullName   string    `json:"full_name"`
	AgreeTerms bool      `json:"agree_terms"`
	CreatedAt  time.Time `json:"created_at"`
}

type CandidateRepository interface {
	GetByIdentityID(ctx context.Context, identityID string) (*CandidateProfile, error)
}

type CandidateDashboard struct {
	Profile      *CandidateProfile    `json:"profile"`
	OpenJobs     Page[JobWithCompany] `json:"open_jobs"`
	Applications []JobApplication     `json:"applications"`
}

type CandidateProfileView struct {
	Profile *CandidateProfile `json:"profile"`
	Email   string            `json:"email"`
	Resumes []Resume          `json:"resumes"`
}

type CandidateUsecase interface {
	Dashboard(ctx context.Context, principal Principal, page int) (*CandidateDashboard, error)
	ProfileView(ctx context.Context, principal Principal) (*CandidateProfileView, error)
}
