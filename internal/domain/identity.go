package domain

import (
	"context"
	"time"
)

// Role tags an Identity as exactly one kind of account.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleCompany
}

// Identity is the login record. PasswordHash never leaves the server.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated caller, passed explicitly into every usecase
// that acts on behalf of someone.
type Principal struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
}

func (p *Principal) IsCandidate() bool { return p != nil && p.Role == RoleCandidate }
func (p *Principal) IsCompany() bool   { return p != nil && p.Role == RoleCompany }

// Account is an Identity together with its role profile. Exactly one of
// Candidate or Company is set, matching Identity.Role.
type Account struct {
	Identity  Identity          `json:"identity"`
	Candidate *CandidateProfile `json:"candidate,omitempty"`
	Company   *CompanyProfile   `json:"company,omitempty"`
}

// Session is what a successful login hands back to the transport layer.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Principal Principal `json:"principal"`
	Redirect  string    `json:"redirect"`
}

type CandidateRegistration struct {
	FullName        string `json:"full_name" form:"fullName" validate:"required,max=150,valid_name,no_emoji"`
	Email           string `json:"email" form:"email" validate:"required,email,max=254"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" form:"confirmPassword" validate:"required"`
	AgreeTerms      bool   `json:"terms" form:"-"`
}

type CompanyRegistration struct {
	CompanyName     string `json:"company_name" form:"companyName" validate:"required,max=200,no_emoji"`
	Industry        string `json:"industry" form:"industry" validate:"required,max=100"`
	CompanySize     string `json:"company_size" form:"companySize" validate:"required,max=50"`
	Email           string `json:"email" form:"companyEmail" validate:"required,email,max=254"`
	ContactPerson   string `json:"contact_person" form:"contactPerson" validate:"required,max=150,valid_name"`
	PhoneNumber     string `json:"phone_number" form:"phoneNumber" validate:"required,valid_phone"`
	Website         string `json:"website" form:"website" validate:"omitempty,url,max=200"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" form:"confirmPassword" validate:"required"`
	AgreeTerms      bool   `json:"terms" form:"-"`
}

type IdentityRepository interface {
	GetByID(ctx context.Context, id string) (*Identity, error)
	GetByEmail(ctx context.Context, email string) (*Identity, error)
	// CreateCandidate inserts the identity and its candidate profile atomically.
	CreateCandidate(ctx context.Context, identity *Identity, profile *CandidateProfile) error
	// CreateCompany inserts the identity and its company profile atomically.
	CreateCompany(ctx context.Context, identity *Identity, profile *CompanyProfile) error
}

type AuthUsecase interface {
	RegisterCandidate(ctx context.Context, req *CandidateRegistration) (redirect string, err error)
	RegisterCompany(ctx context.Context, req *CompanyRegistration) (redirect string, err error)
	Login(ctx context.Context, role Role, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to the caller, reloading the role
	// from the identity store.
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
