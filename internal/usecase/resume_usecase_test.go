package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
)

func docxBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   `<?xml version="1.0"?><w:document/>`,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUploadResume(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockResumeRepo, *MockCandidateRepo, *memoryStore, domain.ResumeUsecase) {
		resumes := new(MockResumeRepo)
		candidates := new(MockCandidateRepo)
		store := newMemoryStore()
		uc := usecase.NewResumeUsecase(resumes, candidates, store, security.NewNopSecurityLogger())
		return resumes, candidates, store, uc
	}

	t.Run("pdf at the size limit is stored verbatim", func(t *testing.T) {
		resumes, candidates, store, uc := setup()
		candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		resumes.On("Create", ctx, mock.MatchedBy(func(r *domain.Resume) bool {
			return r.CandidateID == 20 && r.SizeBytes == security.MaxResumeBytes &&
				r.ContentType == security.MIMEPDF && r.OriginalFilename == "cv.pdf"
		})).Return(nil).Once()

		resume, err := uc.UploadResume(ctx, candidatePrincipal, pdfUpload(int(security.MaxResumeBytes)))
		require.NoError(t, err)
		assert.Equal(t, security.MaxResumeBytes, resume.SizeBytes)
		assert.Equal(t, 1, store.len())
		resumes.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("docx is accepted", func(t *testing.T) {
		resumes, candidates, _, uc := setup()
		candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		resumes.On("Create", ctx, mock.Anything).Return(nil)

		data := docxBytes(t)
		_, err := uc.UploadResume(ctx, candidatePrincipal, &domain.Upload{
			Filename:    "C:\\Users\\ada\\cv.docx",
			ContentType: security.MIMEDOCX,
			Size:        int64(len(data)),
			Body:        bytes.NewReader(data),
		})
		require.NoError(t, err)
	})

	rejected := []struct {
		name   string
		upload *domain.Upload
	}{
		{"over the limit", pdfUpload(int(security.MaxResumeBytes) + 1)},
		{"plain text", &domain.Upload{Filename: "cv.txt", ContentType: "text/plain", Size: 5, Body: bytes.NewReader([]byte("hello"))}},
		{"pdf label on other bytes", &domain.Upload{Filename: "cv.pdf", ContentType: security.MIMEPDF, Size: 5, Body: bytes.NewReader([]byte("hello"))}},
		{"no file", nil},
		{"empty file", &domain.Upload{Filename: "cv.pdf", ContentType: security.MIMEPDF, Size: 0, Body: bytes.NewReader(nil)}},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			resumes, candidates, store, uc := setup()
			candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)

			_, err := uc.UploadResume(ctx, candidatePrincipal, tc.upload)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.NotEmpty(t, appErr.Message)
			resumes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Equal(t, 0, store.len())
		})
	}

	t.Run("size message names the limit", func(t *testing.T) {
		_, candidates, _, uc := setup()
		candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		_, err := uc.UploadResume(ctx, candidatePrincipal, pdfUpload(int(security.MaxResumeBytes)+1))
		assert.Contains(t, err.Error(), "5 MB")
	})

	t.Run("company accounts are forbidden", func(t *testing.T) {
		_, _, _, uc := setup()
		_, err := uc.UploadResume(ctx, companyPrincipal, pdfUpload(100))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindAuthorization, appErr.Kind)
		assert.Equal(t, domain.RedirectCandidateDashboard, appErr.Redirect)
	})

	t.Run("failed insert removes the blob", func(t *testing.T) {
		resumes, candidates, store, uc := setup()
		candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		resumes.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := uc.UploadResume(ctx, candidatePrincipal, pdfUpload(100))
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		assert.Equal(t, 0, store.len())
	})
}

func TestOpenResumeOwnership(t *testing.T) {
	ctx := context.Background()
	resumes := new(MockResumeRepo)
	candidates := new(MockCandidateRepo)
	uc := usecase.NewResumeUsecase(resumes, candidates, newMemoryStore(), security.NewNopSecurityLogger())

	candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
	resumes.On("GetByIDForCandidate", ctx, int64(8), int64(20)).Return(nil, domain.ErrNotFound)

	_, err := uc.OpenResume(ctx, candidatePrincipal, 8)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
