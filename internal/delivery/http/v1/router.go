package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ResumeUC      domain.ResumeUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	ReviewUC      domain.ReviewUsecase
	HealthUC      usecase.HealthUsecase

	FrontendURL  string
	Production   bool
	SecureCookie bool
}

// csrfExempt are the anonymous form posts. They carry no session, so a
// forged submission gains nothing.
var csrfExempt = []string{
	"/v1/candidate/register",
	"/v1/company/register",
	"/v1/candidate/login",
	"/v1/company/login",
	"/v1/reviews",
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.FrontendURL, deps.Production)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Production))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.CSRFMiddleware(deps.SecureCookie, csrfExempt...))
	v1.Use(middleware.OptionalAuth(deps.AuthUC))

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Anonymous callers are welcome here; the principal is set when present.
	NewAuthHandler(v1, deps.AuthUC, deps.SecureCookie)
	NewReviewHandler(v1, deps.ReviewUC)

	candidate := v1.Group("/candidate", middleware.RequireAuth(deps.AuthUC, domain.RedirectCandidateLogin))
	company := v1.Group("/company", middleware.RequireAuth(deps.AuthUC, domain.RedirectCompanyLogin))
	applying := v1.Group("", middleware.RequireAuth(deps.AuthUC, domain.RedirectCandidateLogin))

	NewJobHandler(v1, company, deps.JobUC)
	NewApplicationHandler(applying, company, deps.ApplicationUC)
	NewCandidateHandler(candidate, deps.CandidateUC, deps.ResumeUC)
	NewCompanyHandler(company, deps.CompanyUC)

	return r
}
