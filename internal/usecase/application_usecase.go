package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
)

const (
	msgAlreadyApplied      = "You have already applied for this job."
	msgApplicationNotFound = "Application not found."
	msgJobNotFound         = "Job not found."
)

type applicationUsecase struct {
	applicationRepo    domain.ApplicationRepository
	jobRepo            domain.JobRepository
	candidateRepo      domain.CandidateRepository
	companyProfileRepo domain.CompanyProfileRepository
	store              domain.FileStore
	audit              *security.SecurityLogger
	validate           *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	companyProfileRepo domain.CompanyProfileRepository,
	store domain.FileStore,
	audit *security.SecurityLogger,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:    applicationRepo,
		jobRepo:            jobRepo,
		candidateRepo:      candidateRepo,
		companyProfileRepo: companyProfileRepo,
		store:              store,
		audit:              audit,
		validate:           validate,
	}
}

// ApplyToJob records one application per (job, candidate). The explicit
// existence check handles the common double submit; the table constraint
// catches the concurrent one and is reported the same way.
func (u *applicationUsecase) ApplyToJob(ctx context.Context, principal domain.Principal, jobID int64, input *domain.ApplicationInput, resume *domain.Upload) (*domain.JobApplication, error) {
	detail := domain.JobDetailPath(jobID)

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}
	candidate, err := candidateFor(ctx, u.candidateRepo, principal, detail)
	if err != nil {
		return nil, err
	}

	trimApplicationInput(input)
	if err := validateInput(u.validate, input, detail); err != nil {
		return nil, err
	}

	applied, err := u.applicationRepo.ExistsForCandidate(ctx, job.ID, candidate.ID)
	if err != nil {
		return nil, apperror.Application(err).WithRedirect(detail)
	}
	if applied {
		u.audit.LogDuplicateApplication(ctx, principal.IdentityID, job.ID, false)
		return nil, apperror.DuplicateApplication(msgAlreadyApplied).WithRedirect(detail)
	}

	app := &domain.JobApplication{
		JobID:          job.ID,
		CandidateID:    candidate.ID,
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		DateOfBirth:    input.DateOfBirth,
		Education:      input.Education,
		Experience:     input.Experience,
		ExpectedSalary: input.ExpectedSalary,
		Skills:         input.Skills,
		PortfolioURL:   input.PortfolioURL,
		CoverLetter:    input.CoverLetter,
		Status:         domain.ApplicationStatusPending,
	}

	var attached *storedFile
	if resume != nil {
		attached, err = storeResume(ctx, u.store, u.audit, principal, resume, storage.PrefixApplications, detail)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindValidation {
				return nil, err
			}
			return nil, apperror.Application(err).WithRedirect(detail)
		}
		app.ResumeHandle = &attached.Handle
		app.ResumeFilename = &attached.Filename
		app.ResumeContentType = &attached.ContentType
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if attached != nil {
			if delErr := u.store.Delete(ctx, attached.Handle); delErr != nil {
				logger.FromContext(ctx).Error("Failed to remove orphaned application resume", "handle", attached.Handle, "error", delErr)
			}
		}
		if errors.Is(err, domain.ErrDuplicateApplication) {
			u.audit.LogDuplicateApplication(ctx, principal.IdentityID, job.ID, true)
			return nil, apperror.DuplicateApplication(msgAlreadyApplied).WithRedirect(detail)
		}
		logger.FromContext(ctx).Error("Failed to store application", "job_id", job.ID, "candidate_id", candidate.ID, "error", err)
		return nil, apperror.Application(err).WithRedirect(detail)
	}

	logger.FromContext(ctx).Info("Application submitted", "application_id", app.ID, "job_id", job.ID)
	return app, nil
}

func trimApplicationInput(input *domain.ApplicationInput) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Education = strings.TrimSpace(input.Education)
	input.Experience = strings.TrimSpace(input.Experience)
	input.PortfolioURL = strings.TrimSpace(input.PortfolioURL)
	input.CoverLetter = strings.TrimSpace(input.CoverLetter)

	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	input.Skills = skills
}

// ListApplicants lists applications for a posting owned by the caller's company
func (u *applicationUsecase) ListApplicants(ctx context.Context, principal domain.Principal, jobID int64) (*domain.ApplicantList, error) {
	job, err := u.ownedJob(ctx, principal, jobID)
	if err != nil {
		return nil, err
	}
	apps, err := u.applicationRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ApplicantList{Job: job, Applications: apps}, nil
}

func (u *applicationUsecase) GetApplicationDetail(ctx context.Context, principal domain.Principal, id int64) (*domain.JobApplication, error) {
	company, err := companyFor(ctx, u.companyProfileRepo, principal, domain.RedirectCompanyDashboard)
	if err != nil {
		return nil, err
	}
	app, err := u.applicationRepo.GetByIDForCompany(ctx, id, company.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgApplicationNotFound).WithRedirect(domain.RedirectCompanyJobs)
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// OpenApplicationResume streams the resume attached to an application the
// caller's company received.
func (u *applicationUsecase) OpenApplicationResume(ctx context.Context, principal domain.Principal, id int64) (*domain.FileDownload, error) {
	app, err := u.GetApplicationDetail(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if app.ResumeHandle == nil {
		return nil, apperror.NotFound("No resume attached to this application.")
	}

	body, err := u.store.Open(ctx, *app.ResumeHandle)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, apperror.NotFound("Resume file is no longer available.")
		}
		return nil, apperror.Internal(err)
	}
	download := &domain.FileDownload{Body: body, Size: -1}
	if app.ResumeFilename != nil {
		download.Filename = *app.ResumeFilename
	}
	if app.ResumeContentType != nil {
		download.ContentType = *app.ResumeContentType
	}
	return download, nil
}

// ExportApplicants renders the applicant list of an owned posting as a spreadsheet
func (u *applicationUsecase) ExportApplicants(ctx context.Context, principal domain.Principal, jobID int64) ([]byte, string, error) {
	list, err := u.ListApplicants(ctx, principal, jobID)
	if err != nil {
		return nil, "", err
	}
	data, filename, err := exportApplicantsExcel(list.Job, list.Applications)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return data, filename, nil
}

// ownedJob resolves a posting through the caller's company; postings of
// other companies are reported as missing.
func (u *applicationUsecase) ownedJob(ctx context.Context, principal domain.Principal, jobID int64) (*domain.JobPosting, error) {
	company, err := companyFor(ctx, u.companyProfileRepo, principal, domain.RedirectCompanyDashboard)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByIDForCompany(ctx, jobID, company.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.audit.LogUnauthorizedAccess(ctx, principal.IdentityID, "job_applicants")
			return nil, apperror.NotFound(msgJobNotFound).WithRedirect(domain.RedirectCompanyJobs)
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}
