package security

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager("secret", time.Hour, NewMemorySessionStore())

	token, expiresAt, err := m.Issue(ctx, "identity-1", "ada@example.com", "candidate")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "identity-1", claims.Subject)
	assert.Equal(t, "candidate", claims.Role)

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// revoking twice or revoking garbage is not an error
	assert.NoError(t, m.Revoke(ctx, token))
	assert.NoError(t, m.Revoke(ctx, "garbage"))
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	m := NewSessionManager("secret", time.Minute, store)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, _, err := m.Issue(ctx, "identity-1", "a@b.test", "company")
	require.NoError(t, err)

	later := issued.Add(2 * time.Minute)
	m.now = func() time.Time { return later }
	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	store.now = func() time.Time { return later }
	ok, err := store.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager("secret", time.Hour, NewMemorySessionStore())

	other := NewSessionManager("other-secret", time.Hour, NewMemorySessionStore())
	forged, _, err := other.Issue(ctx, "identity-1", "a@b.test", "company")
	require.NoError(t, err)
	_, err = m.Verify(ctx, forged)
	assert.ErrorIs(t, err, ErrInvalidSession)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "identity-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(ctx, unsigned)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// valid signature but never registered in the store
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "identity-1", "jti": "x"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(ctx, noExp)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestNewSessionManagerDefaultTTL(t *testing.T) {
	m := NewSessionManager("secret", 0, NewMemorySessionStore())
	assert.Equal(t, 24*time.Hour, m.TTL())
}
