package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
)

type resumeUsecase struct {
	resumeRepo    domain.ResumeRepository
	candidateRepo domain.CandidateRepository
	store         domain.FileStore
	audit         *security.SecurityLogger
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	candidateRepo domain.CandidateRepository,
	store domain.FileStore,
	audit *security.SecurityLogger,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:    resumeRepo,
		candidateRepo: candidateRepo,
		store:         store,
		audit:         audit,
	}
}

// UploadResume stores a PDF or DOCX of at most 5 MiB and records it. Nothing
// is written when a rule fails.
func (u *resumeUsecase) UploadResume(ctx context.Context, principal domain.Principal, upload *domain.Upload) (*domain.Resume, error) {
	candidate, err := candidateFor(ctx, u.candidateRepo, principal, domain.RedirectCandidateDashboard)
	if err != nil {
		return nil, err
	}

	stored, err := storeResume(ctx, u.store, u.audit, principal, upload, storage.PrefixResumes, domain.RedirectCandidateProfile)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindValidation {
			return nil, err
		}
		return nil, apperror.Internal(err)
	}

	resume := &domain.Resume{
		CandidateID:      candidate.ID,
		FileHandle:       stored.Handle,
		OriginalFilename: stored.Filename,
		ContentType:      stored.ContentType,
		SizeBytes:        stored.Size,
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		if delErr := u.store.Delete(ctx, stored.Handle); delErr != nil {
			logger.FromContext(ctx).Error("Failed to remove orphaned resume", "handle", stored.Handle, "error", delErr)
		}
		return nil, apperror.Internal(err)
	}

	logger.FromContext(ctx).Info("Resume uploaded", "resume_id", resume.ID, "candidate_id", candidate.ID, "size", resume.SizeBytes)
	return resume, nil
}

func (u *resumeUsecase) OpenResume(ctx context.Context, principal domain.Principal, id int64) (*domain.FileDownload, error) {
	candidate, err := candidateFor(ctx, u.candidateRepo, principal, domain.RedirectCandidateDashboard)
	if err != nil {
		return nil, err
	}
	resume, err := u.resumeRepo.GetByIDForCandidate(ctx, id, candidate.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found.").WithRedirect(domain.RedirectCandidateProfile)
		}
		return nil, apperror.Internal(err)
	}

	body, err := u.store.Open(ctx, resume.FileHandle)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, apperror.NotFound("Resume file is no longer available.").WithRedirect(domain.RedirectCandidateProfile)
		}
		return nil, apperror.Internal(err)
	}
	return &domain.FileDownload{
		Filename:    resume.OriginalFilename,
		ContentType: resume.ContentType,
		Size:        resume.SizeBytes,
		Body:        body,
	}, nil
}
