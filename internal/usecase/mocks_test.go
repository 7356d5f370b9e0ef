package usecase_test

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Mock Repositories

type MockIdentityRepo struct {
	mock.Mock
}

func (m *MockIdentityRepo) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityRepo) CreateCandidate(ctx context.Context, identity *domain.Identity, profile *domain.CandidateProfile) error {
	return m.Called(ctx, identity, profile).Error(0)
}

func (m *MockIdentityRepo) CreateCompany(ctx context.Context, identity *domain.Identity, profile *domain.CompanyProfile) error {
	return m.Called(ctx, identity, profile).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobRepo) GetByIDForCompany(ctx context.Context, id, companyID int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) ExistsSimilar(ctx context.Context, companyID int64, title, location string) (bool, error) {
	args := m.Called(ctx, companyID, title, location)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) CountActiveByCompany(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) FetchByCompany(ctx context.Context, companyID int64, limit int, offset int64) ([]domain.CompanyJobListItem, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyJobListItem), args.Error(1)
}

func (m *MockJobRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) FetchActive(ctx context.Context, limit int, offset int64) ([]domain.JobWithCompany, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) ExistsForCandidate(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByIDForCompany(ctx context.Context, id, companyID int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Resume, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByIDForCandidate(ctx context.Context, id, candidateID int64) (*domain.Resume, error) {
	args := m.Called(ctx, id, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) ListVisible(ctx context.Context, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// memoryApplicationRepo enforces the (job, candidate) uniqueness the way the
// database constraint does, so concurrent submissions can be exercised.
type memoryApplicationRepo struct {
	MockApplicationRepo
	mu     sync.Mutex
	nextID int64
	rows   []domain.JobApplication
}

func (r *memoryApplicationRepo) Create(_ context.Context, app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.JobID == app.JobID && row.CandidateID == app.CandidateID {
			return domain.ErrDuplicateApplication
		}
	}
	r.nextID++
	app.ID = r.nextID
	r.rows = append(r.rows, *app)
	return nil
}

func (r *memoryApplicationRepo) ExistsForCandidate(_ context.Context, jobID, candidateID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.JobID == jobID && row.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryApplicationRepo) count(jobID, candidateID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, row := range r.rows {
		if row.JobID == jobID && row.CandidateID == candidateID {
			n++
		}
	}
	return n
}

// memoryStore is an in-memory FileStore.
type memoryStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	putErr  error
	deleted []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = data
	return key, nil
}

func (s *memoryStore) Open(_ context.Context, handle string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[handle]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryStore) Delete(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, handle)
	s.deleted = append(s.deleted, handle)
	return nil
}

func (s *memoryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

func pdfBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	return data
}

func pdfUpload(size int) *domain.Upload {
	return &domain.Upload{
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(size),
		Body:        bytes.NewReader(pdfBytes(size)),
	}
}

func ptr[T any](v T) *T { return &v }
