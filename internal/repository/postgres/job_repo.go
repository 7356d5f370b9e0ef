package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, j.description, j.location, j.job_type,
	j.min_salary, j.max_salary, j.requirements, j.application_deadline, j.is_active,
	j.created_at, j.updated_at`

func jobScanDest(job *domain.JobPosting) []any {
	return []any{
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Location, &job.JobType,
		&job.MinSalary, &job.MaxSalary, &job.Requirements, &job.ApplicationDeadline, &job.IsActive,
		&job.CreatedAt, &job.UpdatedAt,
	}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings
	          (company_id, title, description, location, job_type, min_salary, max_salary,
	           requirements, application_deadline, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.Location, job.JobType,
		job.MinSalary, job.MaxSalary, job.Requirements, job.ApplicationDeadline, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings j WHERE j.id = $1`
	var job domain.JobPosting
	if err := r.db.QueryRow(ctx, query, id).Scan(jobScanDest(&job)...); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// GetByIDWithCompany retrieves a posting with its company's public details
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `, cp.company_name, cp.industry, cp.website
		FROM job_postings j
		JOIN company_profiles cp ON cp.id = j.company_id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	dest := append(jobScanDest(&job.JobPosting), &job.CompanyName, &job.Industry, &job.CompanyWebsite)
	if err := r.db.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

func (r *jobRepo) GetByIDForCompany(ctx context.Context, id, companyID int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings j WHERE j.id = $1 AND j.company_id = $2`
	var job domain.JobPosting
	if err := r.db.QueryRow(ctx, query, id, companyID).Scan(jobScanDest(&job)...); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// Update overwrites the mutable fields. created_at is never touched.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `
		UPDATE job_postings
		SET title = $3, description = $4, location = $5, job_type = $6,
		    min_salary = $7, max_salary = $8, requirements = $9,
		    application_deadline = $10, is_active = $11, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.CompanyID, job.Title, job.Description, job.Location, job.JobType,
		job.MinSalary, job.MaxSalary, job.Requirements, job.ApplicationDeadline, job.IsActive,
	).Scan(&job.UpdatedAt)
	return notFound(err)
}

// ExistsSimilar reports whether the company already has a posting with the
// same title and location, ignoring case.
func (r *jobRepo) ExistsSimilar(ctx context.Context, companyID int64, title, location string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM job_postings
			WHERE company_id = $1 AND LOWER(title) = LOWER($2) AND LOWER(location) = LOWER($3)
		)`
	var exists bool
	err := r.db.QueryRow(ctx, query, companyID, title, location).Scan(&exists)
	return exists, err
}

func (r *jobRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE company_id = $1`, companyID).Scan(&total)
	return total, err
}

func (r *jobRepo) CountActiveByCompany(ctx context.Context, companyID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE company_id = $1 AND is_active`, companyID).Scan(&total)
	return total, err
}

// FetchByCompany lists the company's postings newest first with their application counts
func (r *jobRepo) FetchByCompany(ctx context.Context, companyID int64, limit int, offset int64) ([]domain.CompanyJobListItem, error) {
	query := `
		SELECT ` + jobColumns + `, COUNT(a.id)
		FROM job_postings j
		LEFT JOIN job_applications a ON a.job_id = j.id
		WHERE j.company_id = $1
		GROUP BY j.id
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CompanyJobListItem{}
	for rows.Next() {
		var item domain.CompanyJobListItem
		dest := append(jobScanDest(&item.JobPosting), &item.ApplicationCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *jobRepo) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE is_active`).Scan(&total)
	return total, err
}

// FetchActive lists active postings newest first for candidates
func (r *jobRepo) FetchActive(ctx context.Context, limit int, offset int64) ([]domain.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `, cp.company_name, cp.industry, cp.website
		FROM job_postings j
		JOIN company_profiles cp ON cp.id = j.company_id
		WHERE j.is_active
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JobWithCompany, error) {
		var job domain.JobWithCompany
		dest := append(jobScanDest(&job.JobPosting), &job.CompanyName, &job.Industry, &job.CompanyWebsite)
		err := row.Scan(dest...)
		return job, err
	})
}
