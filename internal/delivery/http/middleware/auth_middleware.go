package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

// SessionCookieName carries the session token for browser clients.
const SessionCookieName = "session_token"

// SessionToken returns the bearer token, falling back to the session cookie.
func SessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth rejects requests without a live session. loginRedirect is where
// an anonymous caller is sent.
func RequireAuth(authUC domain.AuthUsecase, loginRedirect string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); ok {
			c.Next()
			return
		}
		ok, err := authenticate(c, authUC)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !ok {
			_ = c.Error(apperror.Unauthenticated("Please log in to continue.").WithRedirect(loginRedirect))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid session is presented and
// otherwise lets the request through anonymously.
func OptionalAuth(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := authenticate(c, authUC); err != nil {
			logger.FromContext(c.Request.Context()).Warn("Session lookup failed, continuing anonymously", "error", err)
		}
		c.Next()
	}
}

// authenticate stores the caller in the context. A missing or dead session is
// (false, nil); err is only set when the lookup itself failed.
func authenticate(c *gin.Context, authUC domain.AuthUsecase) (bool, error) {
	token := SessionToken(c)
	if token == "" {
		return false, nil
	}
	principal, err := authUC.Authenticate(c.Request.Context(), token)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindAuthentication {
			return false, nil
		}
		return false, err
	}
	c.Set(string(domain.KeyPrincipal), *principal)
	c.Set(string(domain.KeySession), token)
	return true, nil
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(string(domain.KeyPrincipal))
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
