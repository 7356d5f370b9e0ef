package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidSession covers every reason a token cannot be used: bad
// signature, expiry, or a session that was revoked.
var ErrInvalidSession = errors.New("invalid or expired session")

// SessionClaims is the JWT payload of a session token.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues HS256 session tokens and tracks them in a
// SessionStore so a logout takes effect before the token expires.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration, store SessionStore) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the identity and registers it in the store.
func (m *SessionManager) Issue(ctx context.Context, identityID, email, role string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	if err := m.store.Save(ctx, claims.ID, identityID, m.ttl); err != nil {
		return "", time.Time{}, fmt.Errorf("register session: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks signature, expiry and that the session has not been revoked.
func (m *SessionManager) Verify(ctx context.Context, token string) (*SessionClaims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	ok, err := m.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !ok {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Revoke forgets the session behind token. Tokens that no longer parse are
// already unusable, so they are ignored.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *SessionManager) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
