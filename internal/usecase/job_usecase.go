package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/pagination"
)

const msgDuplicatePosting = "A job with this title and location already exists."

type jobUsecase struct {
	jobRepo            domain.JobRepository
	companyProfileRepo domain.CompanyProfileRepository
	candidateRepo      domain.CandidateRepository
	applicationRepo    domain.ApplicationRepository
	validate           *validator.Validate
	pageSize           int
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	companyProfileRepo domain.CompanyProfileRepository,
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	validate *validator.Validate,
	pageSize int,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
		candidateRepo:      candidateRepo,
		applicationRepo:    applicationRepo,
		validate:           validate,
		pageSize:           pageSize,
	}
}

// SubmitJobPosting edits the posting named by existingID when the caller's
// company owns it, and creates a new one otherwise.
func (u *jobUsecase) SubmitJobPosting(ctx context.Context, principal domain.Principal, input *domain.JobPostingInput, existingID *int64) (*domain.JobSubmitResult, error) {
	company, err := companyFor(ctx, u.companyProfileRepo, principal, domain.RedirectCompanyDashboard)
	if err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)
	input.Requirements = strings.TrimSpace(input.Requirements)
	if err := validateInput(u.validate, input, domain.RedirectCompanyJobs); err != nil {
		return nil, err
	}
	if input.MinSalary != nil && input.MaxSalary != nil && *input.MinSalary > *input.MaxSalary {
		logger.FromContext(ctx).Warn("Job posting has min salary above max salary",
			"company_id", company.ID, "min_salary", *input.MinSalary, "max_salary", *input.MaxSalary)
	}

	if existingID != nil {
		job, err := u.jobRepo.GetByIDForCompany(ctx, *existingID, company.ID)
		switch {
		case err == nil:
			return u.update(ctx, job, input)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, apperror.Internal(err)
		}
		// Unknown or foreign id: fall through to creating a new posting.
	}
	return u.create(ctx, company.ID, input)
}

func (u *jobUsecase) update(ctx context.Context, job *domain.JobPosting, input *domain.JobPostingInput) (*domain.JobSubmitResult, error) {
	applyJobInput(job, input)
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.").WithRedirect(domain.RedirectCompanyJobs)
		}
		return nil, apperror.Internal(err)
	}
	logger.FromContext(ctx).Info("Job posting updated", "job_id", job.ID, "company_id", job.CompanyID)
	return &domain.JobSubmitResult{Job: job, Created: false, Redirect: domain.RedirectCompanyJobs}, nil
}

func (u *jobUsecase) create(ctx context.Context, companyID int64, input *domain.JobPostingInput) (*domain.JobSubmitResult, error) {
	exists, err := u.jobRepo.ExistsSimilar(ctx, companyID, input.Title, input.Location)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict(msgDuplicatePosting).WithRedirect(domain.RedirectCompanyJobs)
	}

	job := &domain.JobPosting{CompanyID: companyID, IsActive: true}
	applyJobInput(job, input)
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.FromContext(ctx).Info("Job posting created", "job_id", job.ID, "company_id", companyID)
	return &domain.JobSubmitResult{Job: job, Created: true, Redirect: domain.RedirectCompanyJobs}, nil
}

func applyJobInput(job *domain.JobPosting, input *domain.JobPostingInput) {
	job.Title = input.Title
	job.Description = input.Description
	job.Location = input.Location
	job.JobType = input.JobType
	job.MinSalary = input.MinSalary
	job.MaxSalary = input.MaxSalary
	job.Requirements = input.Requirements
	job.ApplicationDeadline = input.ApplicationDeadline
}

// ListCompanyJobs returns one page of the caller's postings, newest first
func (u *jobUsecase) ListCompanyJobs(ctx context.Context, principal domain.Principal, page int) (*domain.Page[domain.CompanyJobListItem], error) {
	company, err := companyFor(ctx, u.companyProfileRepo, principal, domain.RedirectCompanyDashboard)
	if err != nil {
		return nil, err
	}

	total, err := u.jobRepo.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	w := pagination.Paginate(total, u.pageSize, page)
	items, err := u.jobRepo.FetchByCompany(ctx, company.ID, w.Size, w.Offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return newPage(items, w), nil
}

// ListOpenJobs returns one page of active postings, newest first
func (u *jobUsecase) ListOpenJobs(ctx context.Context, page int) (*domain.Page[domain.JobWithCompany], error) {
	return openJobsPage(ctx, u.jobRepo, u.pageSize, page)
}

func (u *jobUsecase) GetJobDetail(ctx context.Context, principal *domain.Principal, id int64) (*domain.JobDetailView, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}

	view := &domain.JobDetailView{Job: job}
	switch {
	case principal.IsCompany():
		company, err := u.companyProfileRepo.GetByIdentityID(ctx, principal.IdentityID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		view.IsOwner = company != nil && company.ID == job.CompanyID
	case principal.IsCandidate():
		candidate, err := u.candidateRepo.GetByIdentityID(ctx, principal.IdentityID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return view, nil
			}
			return nil, apperror.Internal(err)
		}
		view.IsCandidate = true
		view.HasApplied, err = u.applicationRepo.ExistsForCandidate(ctx, job.ID, candidate.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return view, nil
}

func openJobsPage(ctx context.Context, repo domain.JobRepository, size, page int) (*domain.Page[domain.JobWithCompany], error) {
	total, err := repo.CountActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	w := pagination.Paginate(total, size, page)
	items, err := repo.FetchActive(ctx, w.Size, w.Offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return newPage(items, w), nil
}

func newPage[T any](items []T, w pagination.Window) *domain.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{
		Items:      items,
		Number:     w.Page,
		Size:       w.Size,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages,
		HasPrev:    w.HasPrev(),
		HasNext:    w.HasNext(),
	}
}
