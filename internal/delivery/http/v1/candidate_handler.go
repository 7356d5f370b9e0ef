package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/pagination"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	resumeUC    domain.ResumeUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, resumeUC domain.ResumeUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, resumeUC: resumeUC}

	r.GET("/dashboard", handler.Dashboard)
	r.GET("/profile", handler.Profile)
	r.POST("/resumes", handler.UploadResume)
	r.GET("/resumes/:id/file", handler.DownloadResume)
}

// CandidateDashboard godoc
// @Summary      Candidate dashboard
// @Description  A page of open jobs plus the caller's own applications.
// @Tags         candidates
// @Produce      json
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  response.Response{data=domain.CandidateDashboard}
// @Failure      403   {object}  response.Response
// @Router       /candidate/dashboard [get]
// @Security     BearerAuth
func (h *CandidateHandler) Dashboard(c *gin.Context) {
	dash, err := h.candidateUC.Dashboard(c.Request.Context(), principal(c), pagination.ParsePage(c.Query("page")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate dashboard", dash)
}

// CandidateProfile godoc
// @Summary      Candidate profile
// @Description  The caller's profile and uploaded resumes.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfileView}
// @Failure      403  {object}  response.Response
// @Router       /candidate/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) Profile(c *gin.Context) {
	view, err := h.candidateUC.ProfileView(c.Request.Context(), principal(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", view)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Multipart field "resume": PDF or DOCX, at most 5 MB.
// @Tags         candidates
// @Accept       mpfd
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      201     {object}  response.Response{data=domain.Resume}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /candidate/resumes [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	upload, closeFile, err := formUpload(c, "resume")
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeFile()

	resume, err := h.resumeUC.UploadResume(c.Request.Context(), principal(c), upload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessRedirect(c, http.StatusCreated, "Resume uploaded successfully.", domain.RedirectCandidateProfile, resume)
}

// DownloadResume godoc
// @Summary      Download own resume
// @Tags         candidates
// @Produce      application/pdf
// @Param        id   path  int  true  "Resume ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /candidate/resumes/{id}/file [get]
// @Security     BearerAuth
func (h *CandidateHandler) DownloadResume(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Resume not found."))
		return
	}
	file, err := h.resumeUC.OpenResume(c.Request.Context(), principal(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	sendFile(c, file)
}
