package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-jobboard-backend/internal/domain"
)

type mockAuthUC struct {
	mock.Mock
}

func (m *mockAuthUC) RegisterCandidate(ctx context.Context, req *domain.CandidateRegistration) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUC) RegisterCompany(ctx context.Context, req *domain.CompanyRegistration) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUC) Login(ctx context.Context, role domain.Role, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, role, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockAuthUC) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthUC) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type mockJobUC struct {
	mock.Mock
}

func (m *mockJobUC) SubmitJobPosting(ctx context.Context, principal domain.Principal, input *domain.JobPostingInput, existingID *int64) (*domain.JobSubmitResult, error) {
	args := m.Called(ctx, principal, input, existingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSubmitResult), args.Error(1)
}

func (m *mockJobUC) ListCompanyJobs(ctx context.Context, principal domain.Principal, page int) (*domain.Page[domain.CompanyJobListItem], error) {
	args := m.Called(ctx, principal, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.CompanyJobListItem]), args.Error(1)
}

func (m *mockJobUC) ListOpenJobs(ctx context.Context, page int) (*domain.Page[domain.JobWithCompany], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.JobWithCompany]), args.Error(1)
}

func (m *mockJobUC) GetJobDetail(ctx context.Context, principal *domain.Principal, id int64) (*domain.JobDetailView, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDetailView), args.Error(1)
}

type mockApplicationUC struct {
	mock.Mock
}

func (m *mockApplicationUC) ApplyToJob(ctx context.Context, principal domain.Principal, jobID int64, input *domain.ApplicationInput, resume *domain.Upload) (*domain.JobApplication, error) {
	args := m.Called(ctx, principal, jobID, input, resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *mockApplicationUC) ListApplicants(ctx context.Context, principal domain.Principal, jobID int64) (*domain.ApplicantList, error) {
	args := m.Called(ctx, principal, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicantList), args.Error(1)
}

func (m *mockApplicationUC) GetApplicationDetail(ctx context.Context, principal domain.Principal, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *mockApplicationUC) OpenApplicationResume(ctx context.Context, principal domain.Principal, id int64) (*domain.FileDownload, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileDownload), args.Error(1)
}

func (m *mockApplicationUC) ExportApplicants(ctx context.Context, principal domain.Principal, jobID int64) ([]byte, string, error) {
	args := m.Called(ctx, principal, jobID)
	data, _ := args.Get(0).([]byte)
	return data, args.String(1), args.Error(2)
}

type mockReviewUC struct {
	mock.Mock
}

func (m *mockReviewUC) SubmitReview(ctx context.Context, input *domain.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewUC) Landing(ctx context.Context) (*domain.LandingView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandingView), args.Error(1)
}
