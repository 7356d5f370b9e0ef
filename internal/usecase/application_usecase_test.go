package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
)

type applicationFixture struct {
	apps       *MockApplicationRepo
	jobs       *MockJobRepo
	candidates *MockCandidateRepo
	companies  *MockCompanyProfileRepo
	store      *memoryStore
}

func newApplicationFixture() *applicationFixture {
	return &applicationFixture{
		apps:       new(MockApplicationRepo),
		jobs:       new(MockJobRepo),
		candidates: new(MockCandidateRepo),
		companies:  new(MockCompanyProfileRepo),
		store:      newMemoryStore(),
	}
}

func (f *applicationFixture) usecase(apps domain.ApplicationRepository) domain.ApplicationUsecase {
	if apps == nil {
		apps = f.apps
	}
	return usecase.NewApplicationUsecase(apps, f.jobs, f.candidates, f.companies, f.store, security.NewNopSecurityLogger(), newValidator())
}

func applicationInput() *domain.ApplicationInput {
	return &domain.ApplicationInput{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "+628123456789",
		Skills:      []string{" Go ", "", "SQL"},
		CoverLetter: "Hello",
	}
}

var openJob = &domain.JobPosting{ID: 5, CompanyID: 10, Title: "Backend Engineer", IsActive: true}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a pending snapshot", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(false, nil)
		f.apps.On("Create", ctx, mock.MatchedBy(func(a *domain.JobApplication) bool {
			return a.JobID == 5 && a.CandidateID == 20 && a.Status == domain.ApplicationStatusPending &&
				assert.ObjectsAreEqual([]string{"Go", "SQL"}, a.Skills) && a.ResumeHandle == nil
		})).Return(nil)

		app, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)
		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 404, applicationInput(), nil)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("company accounts are forbidden and sent back to the job", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		_, err := f.usecase(nil).ApplyToJob(ctx, companyPrincipal, 5, applicationInput(), nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindAuthorization, appErr.Kind)
		assert.Equal(t, "/jobs/5", appErr.Redirect)
	})

	t.Run("pre-check rejects a second application", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(true, nil)

		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), pdfUpload(1024))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindDuplicateApplication, appErr.Kind)
		assert.Equal(t, "/jobs/5", appErr.Redirect)
		f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.store.len())
	})

	t.Run("constraint violation maps to duplicate and removes the attachment", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(false, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), pdfUpload(1024))
		assert.Equal(t, apperror.KindDuplicateApplication, apperror.KindOf(err))
		assert.Equal(t, 0, f.store.len())
		assert.Len(t, f.store.deleted, 1)
	})

	t.Run("other storage failures are generic application errors", func(t *testing.T) {
		f := newApplicationFixture()
		cause := errors.New("disk full")
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(false, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(cause)

		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), nil)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindApplication, appErr.Kind)
		assert.ErrorIs(t, err, cause)
		assert.NotContains(t, appErr.Message, "disk full")
	})

	t.Run("attached resume is validated and stored", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(false, nil)
		f.apps.On("Create", ctx, mock.MatchedBy(func(a *domain.JobApplication) bool {
			return a.ResumeHandle != nil && *a.ResumeFilename == "cv.pdf" && *a.ResumeContentType == security.MIMEPDF
		})).Return(nil)

		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), pdfUpload(2048))
		require.NoError(t, err)
		assert.Equal(t, 1, f.store.len())
	})

	t.Run("oversized attachment is a validation error", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)
		f.apps.On("ExistsForCandidate", ctx, int64(5), int64(20)).Return(false, nil)

		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), pdfUpload(int(security.MaxResumeBytes)+1))
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid snapshot fields", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
		f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)

		input := applicationInput()
		input.Email = "nope"
		_, err := f.usecase(nil).ApplyToJob(ctx, candidatePrincipal, 5, input, nil)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestApplyToJobConcurrentDoubleSubmit(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture()
	f.jobs.On("GetByID", ctx, int64(5)).Return(openJob, nil)
	f.candidates.On("GetByIdentityID", ctx, "candidate-1").Return(ada, nil)

	repo := &memoryApplicationRepo{}
	uc := f.usecase(repo)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = uc.ApplyToJob(ctx, candidatePrincipal, 5, applicationInput(), nil)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperror.KindDuplicateApplication, apperror.KindOf(err))
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.count(5, 20))
}

func TestApplicantReviewOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("owner lists applicants", func(t *testing.T) {
		f := newApplicationFixture()
		apps := []domain.JobApplication{{ID: 2, JobID: 5}, {ID: 1, JobID: 5}}
		f.companies.On("GetByIdentityID", ctx, "company-1").Return(acme, nil)
		f.jobs.On("GetByIDForCompany", ctx, int64(5), int64(10)).Return(openJob, nil)
		f.apps.On("ListByJob", ctx, int64(5)).Return(apps, nil)

		list, err := f.usecase(nil).ListApplicants(ctx, companyPrincipal, 5)
		require.NoError(t, err)
		assert.Len(t, list.Applications, 2)
		assert.Equal(t, int64(2), list.Applications[0].ID)
	})

	t.Run("another company's job is not found", func(t *testing.T) {
		f := newApplicationFixture()
		f.companies.On("GetByIdentityID", ctx, "company-1").Return(acme, nil)
		f.jobs.On("GetByIDForCompany", ctx, int64(7), int64(10)).Return(nil, domain.ErrNotFound)

		_, err := f.usecase(nil).ListApplicants(ctx, companyPrincipal, 7)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		f.apps.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
	})

	t.Run("another company's application is not found", func(t *testing.T) {
		f := newApplicationFixture()
		f.companies.On("GetByIdentityID", ctx, "company-1").Return(acme, nil)
		f.apps.On("GetByIDForCompany", ctx, int64(99), int64(10)).Return(nil, domain.ErrNotFound)

		_, err := f.usecase(nil).GetApplicationDetail(ctx, companyPrincipal, 99)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

		_, err = f.usecase(nil).OpenApplicationResume(ctx, companyPrincipal, 99)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("candidates cannot list applicants", func(t *testing.T) {
		f := newApplicationFixture()
		_, err := f.usecase(nil).ListApplicants(ctx, candidatePrincipal, 5)
		assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
	})
}

func TestOpenApplicationResume(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture()
	_, err := f.store.Put(ctx, "applications/a.pdf", bytes.NewReader([]byte("%PDF-1.4")), 8, security.MIMEPDF)
	require.NoError(t, err)

	app := &domain.JobApplication{
		ID:                3,
		ResumeHandle:      ptr("applications/a.pdf"),
		ResumeFilename:    ptr("cv.pdf"),
		ResumeContentType: ptr(security.MIMEPDF),
	}
	f.companies.On("GetByIdentityID", ctx, "company-1").Return(acme, nil)
	f.apps.On("GetByIDForCompany", ctx, int64(3), int64(10)).Return(app, nil)

	download, err := f.usecase(nil).OpenApplicationResume(ctx, companyPrincipal, 3)
	require.NoError(t, err)
	defer download.Body.Close()

	body, err := io.ReadAll(download.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, "cv.pdf", download.Filename)
}

func TestExportApplicants(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture()
	apps := []domain.JobApplication{{
		ID:             1,
		JobID:          5,
		FullName:       "Ada Lovelace",
		Email:          "ada@example.com",
		Skills:         []string{"Go", "SQL"},
		ExpectedSalary: ptr(1500.0),
		Status:         domain.ApplicationStatusPending,
		AppliedAt:      time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}}
	f.companies.On("GetByIdentityID", ctx, "company-1").Return(acme, nil)
	f.jobs.On("GetByIDForCompany", ctx, int64(5), int64(10)).Return(openJob, nil)
	f.apps.On("ListByJob", ctx, int64(5)).Return(apps, nil)

	data, filename, err := f.usecase(nil).ExportApplicants(ctx, companyPrincipal, 5)
	require.NoError(t, err)
	assert.Regexp(t, `^applicants_5_backend_engineer_\d{8}_\d{6}\.xlsx$`, filename)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	name, err := book.GetCellValue("Applicants", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
	skills, err := book.GetCellValue("Applicants", "I2")
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", skills)
}
