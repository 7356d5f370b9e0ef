package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
)

const (
	msgPasswordMismatch = "Passwords do not match."
	msgEmailTaken       = "Email already registered."
	msgInvalidLogin     = "Invalid email or password."
)

type authUsecase struct {
	identityRepo domain.IdentityRepository
	hasher       *security.PasswordHasher
	sessions     *security.SessionManager
	audit        *security.SecurityLogger
	validate     *validator.Validate
}

func NewAuthUsecase(
	identityRepo domain.IdentityRepository,
	hasher *security.PasswordHasher,
	sessions *security.SessionManager,
	audit *security.SecurityLogger,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		identityRepo: identityRepo,
		hasher:       hasher,
		sessions:     sessions,
		audit:        audit,
		validate:     validate,
	}
}

func (u *authUsecase) RegisterCandidate(ctx context.Context, req *domain.CandidateRegistration) (string, error) {
	req.Email = normalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	if err := u.checkRegistration(ctx, req, req.Email, req.Password, req.ConfirmPassword, domain.RedirectCandidateRegister); err != nil {
		return "", err
	}

	identity, err := u.newIdentity(req.Email, req.Password, domain.RoleCandidate)
	if err != nil {
		return "", err
	}
	profile := &domain.CandidateProfile{
		FullName:   req.FullName,
		AgreeTerms: req.AgreeTerms,
	}
	if err := u.identityRepo.CreateCandidate(ctx, identity, profile); err != nil {
		return "", u.createError(err, domain.RedirectCandidateRegister)
	}

	u.audit.LogRegister(ctx, identity.Email, string(identity.Role))
	return domain.RedirectCandidateLogin, nil
}

func (u *authUsecase) RegisterCompany(ctx context.Context, req *domain.CompanyRegistration) (string, error) {
	req.Email = normalizeEmail(req.Email)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.ContactPerson = strings.TrimSpace(req.ContactPerson)
	req.Website = strings.TrimSpace(req.Website)

	if err := u.checkRegistration(ctx, req, req.Email, req.Password, req.ConfirmPassword, domain.RedirectCompanyRegister); err != nil {
		return "", err
	}

	identity, err := u.newIdentity(req.Email, req.Password, domain.RoleCompany)
	if err != nil {
		return "", err
	}
	profile := &domain.CompanyProfile{
		CompanyName:   req.CompanyName,
		Industry:      strings.TrimSpace(req.Industry),
		CompanySize:   strings.TrimSpace(req.CompanySize),
		ContactPerson: req.ContactPerson,
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		Website:       optionalString(req.Website),
		AgreeTerms:    req.AgreeTerms,
	}
	if err := u.identityRepo.CreateCompany(ctx, identity, profile); err != nil {
		return "", u.createError(err, domain.RedirectCompanyRegister)
	}

	u.audit.LogRegister(ctx, identity.Email, string(identity.Role))
	return domain.RedirectCompanyLogin, nil
}

// checkRegistration runs the checks shared by both roles, in the order the
// user sees them: matching passwords, field rules, then a free e-mail.
func (u *authUsecase) checkRegistration(ctx context.Context, req any, email, password, confirm, redirect string) error {
	if password != confirm {
		return apperror.Validation(msgPasswordMismatch).WithRedirect(redirect)
	}
	if err := validateInput(u.validate, req, redirect); err != nil {
		return err
	}

	_, err := u.identityRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return apperror.Conflict(msgEmailTaken).WithRedirect(redirect)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return apperror.Internal(err)
	}
}

func (u *authUsecase) newIdentity(email, password string, role domain.Role) (*domain.Identity, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// createError maps a failed insert. A concurrent registration that won the
// race on the e-mail surfaces exactly like the pre-check.
func (u *authUsecase) createError(err error, redirect string) error {
	if errors.Is(err, domain.ErrEmailTaken) {
		return apperror.Conflict(msgEmailTaken).WithRedirect(redirect)
	}
	return apperror.Internal(err)
}

func (u *authUsecase) Login(ctx context.Context, role domain.Role, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	invalid := apperror.Unauthenticated(msgInvalidLogin).WithRedirect(domain.LoginPath(role))

	identity, err := u.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn a hash comparison so unknown e-mails cost the same as wrong passwords.
			u.hasher.Verify(dummyHash, password)
			u.audit.LogLoginFailed(ctx, email, string(role), "unknown_email")
			return nil, invalid
		}
		return nil, apperror.Internal(err)
	}

	if !u.hasher.Verify(identity.PasswordHash, password) {
		u.audit.LogLoginFailed(ctx, email, string(role), "bad_password")
		return nil, invalid
	}
	if identity.Role != role {
		u.audit.LogLoginFailed(ctx, email, string(role), "wrong_role")
		return nil, invalid
	}

	token, expiresAt, err := u.sessions.Issue(ctx, identity.ID, identity.Email, string(identity.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.audit.LogLoginSuccess(ctx, identity.ID, string(identity.Role))
	logger.FromContext(ctx).Info("User logged in", "identity_id", identity.ID, "role", identity.Role)

	return &domain.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: domain.Principal{
			IdentityID: identity.ID,
			Email:      identity.Email,
			Role:       identity.Role,
		},
		Redirect: domain.DashboardPath(identity.Role),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, token); err != nil {
		return apperror.Internal(err)
	}
	u.audit.LogLogout(ctx)
	return nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := u.sessions.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, security.ErrInvalidSession) {
			return nil, apperror.Unauthenticated("Please log in to continue.")
		}
		return nil, apperror.Internal(err)
	}

	identity, err := u.identityRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthenticated("Please log in to continue.")
		}
		return nil, apperror.Internal(err)
	}

	return &domain.Principal{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       identity.Role,
	}, nil
}

// dummyHash is a bcrypt hash of a random string, used to equalize timing.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3sLd6kLZQUgxNh2vGqZ9i2O"
