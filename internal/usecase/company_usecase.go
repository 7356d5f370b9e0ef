package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyProfileRepo domain.CompanyProfileRepository
	jobRepo            domain.JobRepository
	applicationRepo    domain.ApplicationRepository
}

func NewCompanyUsecase(
	companyProfileRepo domain.CompanyProfileRepository,
	jobRepo domain.JobRepository,
	applicationRepo domain.ApplicationRepository,
) domain.CompanyUsecase {
	return &companyUsecase{
		companyProfileRepo: companyProfileRepo,
		jobRepo:            jobRepo,
		applicationRepo:    applicationRepo,
	}
}

func (u *companyUsecase) Dashboard(ctx context.Context, principal domain.Principal) (*domain.CompanyDashboard, error) {
	company, err := companyFor(ctx, u.companyProfileRepo, principal, domain.RedirectCompanyLogin)
	if err != nil {
		return nil, err
	}

	dash := &domain.CompanyDashboard{Profile: company}
	if dash.JobCount, err = u.jobRepo.CountByCompany(ctx, company.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if dash.ActiveJobCount, err = u.jobRepo.CountActiveByCompany(ctx, company.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if dash.ApplicationCount, err = u.applicationRepo.CountByCompany(ctx, company.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	return dash, nil
}
