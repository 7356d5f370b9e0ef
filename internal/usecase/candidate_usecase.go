package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo   domain.CandidateRepository
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	resumeRepo      domain.ResumeRepository
	pageSize        int
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	applicationRepo domain.ApplicationRepository,
	resumeRepo domain.ResumeRepository,
	pageSize int,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		resumeRepo:      resumeRepo,
		pageSize:        pageSize,
	}
}

// Dashboard shows open postings and the candidate's own applications
func (u *candidateUsecase) Dashboard(ctx context.Context, principal domain.Principal, page int) (*domain.CandidateDashboard, error) {
	candidate, err := candidateFor(ctx, u.candidateRepo, principal, domain.RedirectCandidateLogin)
	if err != nil {
		return nil, err
	}

	jobs, err := openJobsPage(ctx, u.jobRepo, u.pageSize, page)
	if err != nil {
		return nil, err
	}
	apps, err := u.applicationRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CandidateDashboard{
		Profile:      candidate,
		OpenJobs:     *jobs,
		Applications: apps,
	}, nil
}

func (u *candidateUsecase) ProfileView(ctx context.Context, principal domain.Principal) (*domain.CandidateProfileView, error) {
	candidate, err := candidateFor(ctx, u.candidateRepo, principal, domain.RedirectCandidateLogin)
	if err != nil {
		return nil, err
	}
	resumes, err := u.resumeRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.CandidateProfileView{
		Profile: candidate,
		Email:   principal.Email,
		Resumes: resumes,
	}, nil
}
