package domain

import (
	"context"
	"time"
)

// Application status values. Candidates only ever create pending applications.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// JobApplication joins one candidate to one posting. The applicant fields are
// a snapshot taken at submission and may differ from the candidate profile.
type JobApplication struct {
	ID                int64      `json:"id"`
	JobID             int64      `json:"job_id"`
	CandidateID       int64      `json:"candidate_id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Education         string     `json:"education"`
	Experience        string     `json:"experience"`
	ExpectedSalary    *float64   `json:"expected_salary,omitempty"`
	Skills            []string   `json:"skills"`
	PortfolioURL      string     `json:"portfolio_url"`
	CoverLetter       string     `json:"cover_letter"`
	ResumeHandle      *string    `json:"-"`
	ResumeFilename    *string    `json:"resume_filename,omitempty"`
	ResumeContentType *string    `json:"resume_content_type,omitempty"`
	Status            string     `json:"status"`
	AppliedAt         time.Time  `json:"applied_at"`

	// Joined data for list responses
	JobTitle *string `json:"job_title,omitempty"`
}

type ApplicationInput struct {
	FullName       string     `json:"full_name" validate:"required,max=150,valid_name"`
	Email          string     `json:"email" validate:"required,email,max=254"`
	Phone          string     `json:"phone" validate:"required,valid_phone"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Education      string     `json:"education" validate:"max=2000"`
	Experience     string     `json:"experience" validate:"max=4000"`
	ExpectedSalary *float64   `json:"expected_salary" validate:"omitempty,gte=0"`
	Skills         []string   `json:"skills" validate:"max=50,dive,max=100"`
	PortfolioURL   string     `json:"portfolio_url" validate:"omitempty,url,max=300"`
	CoverLetter    string     `json:"cover_letter" validate:"max=8000"`
}

type ApplicantList struct {
	Job          *JobPosting      `json:"job"`
	Applications []JobApplication `json:"applications"`
}

type ApplicationRepository interface {
	// Create inserts the application. A second row for the same (job,
	// candidate) pair fails with ErrDuplicateApplication.
	Create(ctx context.Context, app *JobApplication) error
	ExistsForCandidate(ctx context.Context, jobID, candidateID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64) ([]JobApplication, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]JobApplication, error)
	// GetByIDForCompany only resolves applications on postings owned by companyID.
	GetByIDForCompany(ctx context.Context, id, companyID int64) (*JobApplication, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
}

type ApplicationUsecase interface {
	// Candidate operations
	ApplyToJob(ctx context.Context, principal Principal, jobID int64, input *ApplicationInput, resume *Upload) (*JobApplication, error)

	// Company operations
	ListApplicants(ctx context.Context, principal Principal, jobID int64) (*ApplicantList, error)
	GetApplicationDetail(ctx context.Context, principal Principal, id int64) (*JobApplication, error)
	OpenApplicationResume(ctx context.Context, principal Principal, id int64) (*FileDownload, error)
	ExportApplicants(ctx context.Context, principal Principal, jobID int64) ([]byte, string, error)
}
