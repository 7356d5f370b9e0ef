package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobboard-backend/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.full_name, a.email, a.phone,
	a.date_of_birth, a.education, a.experience, a.expected_salary, a.skills,
	a.portfolio_url, a.cover_letter, a.resume_handle, a.resume_filename,
	a.resume_content_type, a.status, a.applied_at, j.title`

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	var skills []string
	err := row.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.FullName, &app.Email, &app.Phone,
		&app.DateOfBirth, &app.Education, &app.Experience, &app.ExpectedSalary, pq.Array(&skills),
		&app.PortfolioURL, &app.CoverLetter, &app.ResumeHandle, &app.ResumeFilename,
		&app.ResumeContentType, &app.Status, &app.AppliedAt, &app.JobTitle,
	)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	app.Skills = skills
	return &app, nil
}

// Create inserts a new application. The table's unique (job_id, candidate_id)
// constraint is reported as domain.ErrDuplicateApplication.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `
		INSERT INTO job_applications
		(job_id, candidate_id, full_name, email, phone, date_of_birth, education, experience,
		 expected_salary, skills, portfolio_url, cover_letter, resume_handle, resume_filename,
		 resume_content_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, applied_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	skills := app.Skills
	if skills == nil {
		skills = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.FullName, app.Email, app.Phone, app.DateOfBirth,
		app.Education, app.Experience, app.ExpectedSalary, pq.Array(skills),
		app.PortfolioURL, app.CoverLetter, app.ResumeHandle, app.ResumeFilename,
		app.ResumeContentType, app.Status,
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		if name, ok := uniqueViolation(err); ok && name == constraintJobApplication {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *applicationRepo) ExistsForCandidate(ctx context.Context, jobID, candidateID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

// ListByJob returns all applications for a job, newest first
func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC, a.id DESC`
	return r.list(ctx, query, jobID)
}

// ListByCandidate returns the candidate's own applications with job titles
func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC, a.id DESC`
	return r.list(ctx, query, candidateID)
}

// GetByIDForCompany resolves an application only through a posting owned by
// companyID, so missing and foreign rows look the same.
func (r *applicationRepo) GetByIDForCompany(ctx context.Context, id, companyID int64) (*domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.id = $1 AND j.company_id = $2`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

func (r *applicationRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE j.company_id = $1`
	var total int64
	err := r.db.QueryRow(ctx, query, companyID).Scan(&total)
	return total, err
}

func (r *applicationRepo) list(ctx context.Context, query string, arg int64) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
