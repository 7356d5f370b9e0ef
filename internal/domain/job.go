package domain

import (
	"context"
	"time"
)

// Employment types accepted for a posting.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

type JobPosting struct {
	ID                  int64      `json:"id"`
	CompanyID           int64      `json:"company_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	MinSalary           *float64   `json:"min_salary"`
	MaxSalary           *float64   `json:"max_salary"`
	Requirements        string     `json:"requirements"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// JobWithCompany extends JobPosting with the owning company's public fields.
type JobWithCompany struct {
	JobPosting
	CompanyName    string  `json:"company_name"`
	Industry       string  `json:"industry"`
	CompanyWebsite *string `json:"company_website"`
}

// CompanyJobListItem is a posting as seen by its owner, with the number of
// applications received so far.
type CompanyJobListItem struct {
	JobPosting
	ApplicationCount int64 `json:"application_count"`
}

// JobPostingInput carries the mutable fields of a posting. IsActive nil means
// "active" on create and "unchanged" on edit.
type JobPostingInput struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"required"`
	Location            string     `json:"location" validate:"required,max=200"`
	JobType             string     `json:"job_type" validate:"required,job_type"`
	MinSalary           *float64   `json:"min_salary" validate:"omitempty,gte=0"`
	MaxSalary           *float64   `json:"max_salary" validate:"omitempty,gte=0"`
	Requirements        string     `json:"requirements" validate:"required"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            *bool      `json:"is_active"`
}

// JobDetailView is a posting plus view-only flags about the caller. The flags
// are computed per request and never stored.
type JobDetailView struct {
	Job         *JobWithCompany `json:"job"`
	IsOwner     bool            `json:"is_owner"`
	IsCandidate bool            `json:"is_candidate"`
	HasApplied  bool            `json:"has_applied"`
}

type JobSubmitResult struct {
	Job      *JobPosting `json:"job"`
	Created  bool        `json:"created"`
	Redirect string      `json:"redirect"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	GetByIDForCompany(ctx context.Context, id, companyID int64) (*JobPosting, error)
	// Update overwrites the mutable fields; created_at is never touched.
	Update(ctx context.Context, job *JobPosting) error
	// ExistsSimilar reports whether the company already has a posting whose
	// title and location match case-insensitively.
	ExistsSimilar(ctx context.Context, companyID int64, title, location string) (bool, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	CountActiveByCompany(ctx context.Context, companyID int64) (int64, error)
	FetchByCompany(ctx context.Context, companyID int64, limit int, offset int64) ([]CompanyJobListItem, error)
	CountActive(ctx context.Context) (int64, error)
	FetchActive(ctx context.Context, limit int, offset int64) ([]JobWithCompany, error)
}

type JobUsecase interface {
	SubmitJobPosting(ctx context.Context, principal Principal, input *JobPostingInput, existingID *int64) (*JobSubmitResult, error)
	ListCompanyJobs(ctx context.Context, principal Principal, page int) (*Page[CompanyJobListItem], error)
	ListOpenJobs(ctx context.Context, page int) (*Page[JobWithCompany], error)
	GetJobDetail(ctx context.Context, principal *Principal, id int64) (*JobDetailView, error)
}
