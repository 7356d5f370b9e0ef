package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

// resumeRepo has no update or delete: resume rows are immutable once written.
type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, candidate_id, file_handle, original_filename, content_type, size_bytes, uploaded_at`

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (candidate_id, file_handle, original_filename, content_type, size_bytes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, uploaded_at`
	return r.db.QueryRow(ctx, query,
		resume.CandidateID, resume.FileHandle, resume.OriginalFilename, resume.ContentType, resume.SizeBytes,
	).Scan(&resume.ID, &resume.UploadedAt)
}

func (r *resumeRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE candidate_id = $1 ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) GetByIDForCandidate(ctx context.Context, id, candidateID int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND candidate_id = $2`
	resume, err := scanResume(r.db.QueryRow(ctx, query, id, candidateID))
	if err != nil {
		return nil, notFound(err)
	}
	return resume, nil
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	err := row.Scan(&resume.ID, &resume.CandidateID, &resume.FileHandle, &resume.OriginalFilename,
		&resume.ContentType, &resume.SizeBytes, &resume.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
