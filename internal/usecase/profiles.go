package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const (
	msgCompanyOnly   = "Only company accounts can do this."
	msgCandidateOnly = "Only candidate accounts can do this."
)

// companyFor resolves the caller's company profile. Callers without one get
// a Forbidden error sending them to redirect.
func companyFor(ctx context.Context, repo domain.CompanyProfileRepository, principal domain.Principal, redirect string) (*domain.CompanyProfile, error) {
	if !principal.IsCompany() {
		return nil, apperror.Forbidden(msgCompanyOnly).WithRedirect(redirect)
	}
	company, err := repo.GetByIdentityID(ctx, principal.IdentityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden(msgCompanyOnly).WithRedirect(redirect)
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// candidateFor is companyFor for candidate profiles.
func candidateFor(ctx context.Context, repo domain.CandidateRepository, principal domain.Principal, redirect string) (*domain.CandidateProfile, error) {
	if !principal.IsCandidate() {
		return nil, apperror.Forbidden(msgCandidateOnly).WithRedirect(redirect)
	}
	candidate, err := repo.GetByIdentityID(ctx, principal.IdentityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden(msgCandidateOnly).WithRedirect(redirect)
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}
