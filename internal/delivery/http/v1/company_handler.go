package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(r *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}
	r.GET("/dashboard", handler.Dashboard)
}

// CompanyDashboard godoc
// @Summary      Company dashboard
// @Description  Profile plus posting, active posting and application counts.
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyDashboard}
// @Failure      403  {object}  response.Response
// @Router       /company/dashboard [get]
// @Security     BearerAuth
func (h *CompanyHandler) Dashboard(c *gin.Context) {
	dash, err := h.companyUC.Dashboard(c.Request.Context(), principal(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company dashboard", dash)
}
