package domain

import (
	"context"
	"time"
)

// Resume is an uploaded CV owned by a candidate. Rows are insert-only.
type Resume struct {
	ID               int64     `json:"id"`
	CandidateID      int64     `json:"candidate_id"`
	FileHandle       string    `json:"-"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]Resume, error)
	GetByIDForCandidate(ctx context.Context, id, candidateID int64) (*Resume, error)
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, principal Principal, upload *Upload) (*Resume, error)
	OpenResume(ctx context.Context, principal Principal, id int64) (*FileDownload, error)
}
