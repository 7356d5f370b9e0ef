package v1

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(candidate *gin.RouterGroup, company *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidate.POST("/jobs/:id/apply", handler.Apply)

	company.GET("/jobs/:id/applicants", handler.ListApplicants)
	company.GET("/jobs/:id/applicants/export", handler.ExportApplicants)
	company.GET("/applications/:id", handler.GetDetail)
	company.GET("/applications/:id/resume", handler.DownloadResume)
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submits one application per candidate and posting. Multipart forms may attach a PDF or DOCX resume (max 5 MB) as "resume"; skills are comma separated.
// @Tags         applications
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        id    path      int                      true  "Job ID"
// @Param        body  body      domain.ApplicationInput  true  "Applicant details"
// @Success      201   {object}  response.Response{data=domain.JobApplication}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Job not found."))
		return
	}
	redirect := domain.JobDetailPath(jobID)

	var (
		input  domain.ApplicationInput
		resume *domain.Upload
	)
	if isJSON(c) {
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(badBody(redirect))
			return
		}
	} else {
		if input, err = applicationFromForm(c, redirect); err != nil {
			_ = c.Error(err)
			return
		}
		var closeFile func()
		resume, closeFile, err = formUpload(c, "resume")
		if err != nil {
			_ = c.Error(err)
			return
		}
		defer closeFile()
	}

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), principal(c), jobID, &input, resume)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessRedirect(c, http.StatusCreated, "Your application has been submitted.", domain.RedirectCandidateDashboard, app)
}

func applicationFromForm(c *gin.Context, redirect string) (domain.ApplicationInput, error) {
	var err error
	in := domain.ApplicationInput{
		FullName:     c.PostForm("full_name"),
		Email:        c.PostForm("email"),
		Phone:        c.PostForm("phone"),
		Education:    c.PostForm("education"),
		Experience:   c.PostForm("experience"),
		Skills:       splitSkills(c.PostFormArray("skills")),
		PortfolioURL: c.PostForm("portfolio_url"),
		CoverLetter:  c.PostForm("cover_letter"),
	}
	if in.DateOfBirth, err = formDate(c, "date_of_birth", "Date of birth", redirect); err != nil {
		return in, err
	}
	if in.ExpectedSalary, err = formFloat(c, "expected_salary", "Expected salary", redirect); err != nil {
		return in, err
	}
	return in, nil
}

// ListApplicants godoc
// @Summary      List applicants
// @Description  Applications for one of the caller's postings, newest first.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.ApplicantList}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Job not found."))
		return
	}
	list, err := h.applicationUC.ListApplicants(c.Request.Context(), principal(c), jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants", list)
}

// ExportApplicants godoc
// @Summary      Export applicants
// @Description  The applicant list of one of the caller's postings as an Excel workbook.
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  int  true  "Job ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /company/jobs/{id}/applicants/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ExportApplicants(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Job not found."))
		return
	}
	data, filename, err := h.applicationUC.ExportApplicants(c.Request.Context(), principal(c), jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetApplicationDetail godoc
// @Summary      Application detail
// @Description  One application on a posting the caller owns. Foreign and missing ids are both 404.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.JobApplication}
// @Failure      404  {object}  response.Response
// @Router       /company/applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Application not found."))
		return
	}
	app, err := h.applicationUC.GetApplicationDetail(c.Request.Context(), principal(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", app)
}

// DownloadApplicationResume godoc
// @Summary      Download an applicant's resume
// @Tags         applications
// @Produce      application/pdf
// @Param        id   path  int  true  "Application ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /company/applications/{id}/resume [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Application not found."))
		return
	}
	file, err := h.applicationUC.OpenApplicationResume(c.Request.Context(), principal(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	sendFile(c, file)
}

