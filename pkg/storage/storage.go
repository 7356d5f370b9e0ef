// Package storage holds uploaded files as opaque blobs addressed by a handle.
package storage

import (
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"

	"go-jobboard-backend/internal/domain"
)

var (
	ErrBlobNotFound  = errors.New("blob not found")
	ErrInvalidHandle = errors.New("invalid blob handle")
)

const (
	PrefixResumes      = "resumes"
	PrefixApplications = "applications"
)

var (
	_ domain.FileStore = (*LocalStore)(nil)
	_ domain.FileStore = (*S3Store)(nil)
)

// NewKey returns a fresh object key under prefix. The client's file name is
// never part of the key; only its extension is kept.
func NewKey(prefix, ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(prefix, uuid.NewString()+ext)
}
