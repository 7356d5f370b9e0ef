package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	secureCookie bool
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, secureCookie bool) {
	handler := &AuthHandler{authUC: authUC, secureCookie: secureCookie}

	public.POST("/candidate/register", handler.RegisterCandidate)
	public.POST("/company/register", handler.RegisterCompany)
	public.POST("/candidate/login", handler.login(domain.RoleCandidate))
	public.POST("/company/login", handler.login(domain.RoleCompany))
	public.POST("/logout", handler.Logout)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterCandidate godoc
// @Summary      Register a candidate
// @Description  Creates a candidate identity and profile. Accepts JSON or form fields fullName, email, password, confirmPassword, terms.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateRegistration  true  "Registration"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /candidate/register [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req domain.CandidateRegistration
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(badBody(domain.RedirectCandidateRegister))
		return
	}
	req.AgreeTerms = req.AgreeTerms || formFlag(c, "terms")

	redirect, err := h.authUC.RegisterCandidate(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessRedirect(c, http.StatusCreated, "Registration successful. Please log in.", redirect, nil)
}

// RegisterCompany godoc
// @Summary      Register a company
// @Description  Creates a company identity and profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CompanyRegistration  true  "Registration"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /company/register [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req domain.CompanyRegistration
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(badBody(domain.RedirectCompanyRegister))
		return
	}
	req.AgreeTerms = req.AgreeTerms || formFlag(c, "terms")

	redirect, err := h.authUC.RegisterCompany(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessRedirect(c, http.StatusCreated, "Registration successful. Please log in.", redirect, nil)
}

// Login godoc
// @Summary      Log in
// @Description  Starts a session for a candidate (/candidate/login) or company (/company/login). The token is returned and set as the session_token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.Session}
// @Failure      401   {object}  response.Response
// @Router       /candidate/login [post]
// @Router       /company/login [post]
func (h *AuthHandler) login(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			_ = c.Error(badBody(domain.LoginPath(role)))
			return
		}

		session, err := h.authUC.Login(c.Request.Context(), role, strings.TrimSpace(req.Email), req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}

		h.setSessionCookie(c, session.Token, int(time.Until(session.ExpiresAt).Seconds()))
		response.SuccessRedirect(c, http.StatusOK, "Login successful", session.Redirect, session)
	}
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current session and clears the cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.authUC.Logout(c.Request.Context(), token); err != nil {
			_ = c.Error(err)
			return
		}
	}
	h.setSessionCookie(c, "", -1)
	response.SuccessRedirect(c, http.StatusOK, "Logged out", domain.RedirectLanding, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
}
