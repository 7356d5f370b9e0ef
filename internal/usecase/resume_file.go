package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
)

const maxFilenameLen = 255

// storedFile describes a blob accepted and written by storeResume.
type storedFile struct {
	Handle      string
	Filename    string
	ContentType string
	Size        int64
}

// storeResume validates upload against the resume rules and writes it under
// prefix. Rule violations come back as Validation errors with redirect; the
// blob is only written once every rule passed.
func storeResume(ctx context.Context, store domain.FileStore, audit *security.SecurityLogger, principal domain.Principal, upload *domain.Upload, prefix, redirect string) (*storedFile, error) {
	reject := func(err error) error {
		audit.LogUploadRejected(ctx, principal.IdentityID, err.Error(), uploadSize(upload))
		return apperror.Validation(security.ResumeRejectionMessage(err)).WithRedirect(redirect)
	}

	if upload == nil || upload.Body == nil {
		return nil, reject(security.ErrEmptyUpload)
	}
	contentType, err := security.ValidateResumeHeader(upload.Filename, upload.ContentType, upload.Size)
	if err != nil {
		return nil, reject(err)
	}
	head, body, err := security.ReadHead(upload.Body)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := security.SniffResume(contentType, head); err != nil {
		return nil, reject(err)
	}

	key := storage.NewKey(prefix, security.ResumeExtension(contentType, upload.Filename))
	handle, err := store.Put(ctx, key, body, upload.Size, contentType)
	if err != nil {
		return nil, err
	}
	return &storedFile{
		Handle:      handle,
		Filename:    cleanFilename(upload.Filename),
		ContentType: contentType,
		Size:        upload.Size,
	}, nil
}

func uploadSize(upload *domain.Upload) int64 {
	if upload == nil {
		return 0
	}
	return upload.Size
}

// cleanFilename keeps only the base name a browser sent, trimmed to fit the column.
func cleanFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	if !utf8.ValidString(name) {
		name = strings.ToValidUTF8(name, "_")
	}
	for len(name) > maxFilenameLen {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return name
}
