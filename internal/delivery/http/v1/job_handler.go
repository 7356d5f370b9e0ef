package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/pagination"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, company *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListOpen)
	public.GET("/jobs/:id", handler.GetDetail)

	company.POST("/jobs", handler.Submit)
	company.GET("/jobs", handler.ListCompanyJobs)
}

// JobPostingRequest is the JSON body of a post-or-edit submission. Form
// submissions use the same field names.
type JobPostingRequest struct {
	domain.JobPostingInput
	JobID *int64 `json:"job_id"`
}

// SubmitJob godoc
// @Summary      Post or edit a job
// @Description  Creates a posting, or overwrites one when job_id names a posting owned by the caller. A posting with the same title and location (ignoring case) is rejected as a duplicate.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobPostingRequest  true  "Posting"
// @Success      200   {object}  response.Response{data=domain.JobSubmitResult}
// @Success      201   {object}  response.Response{data=domain.JobSubmitResult}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /company/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Submit(c *gin.Context) {
	var (
		req JobPostingRequest
		err error
	)
	if isJSON(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(badBody(domain.RedirectCompanyJobs))
			return
		}
	} else if req, err = jobPostingFromForm(c); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.jobUC.SubmitJobPosting(c.Request.Context(), principal(c), &req.JobPostingInput, req.JobID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	code, message := http.StatusOK, "Job updated"
	if result.Created {
		code, message = http.StatusCreated, "Job posted"
	}
	response.SuccessRedirect(c, code, message, result.Redirect, result)
}

func jobPostingFromForm(c *gin.Context) (JobPostingRequest, error) {
	var req JobPostingRequest
	var err error
	in := &req.JobPostingInput

	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.Location = c.PostForm("location")
	in.JobType = c.PostForm("job_type")
	in.Requirements = c.PostForm("requirements")
	in.IsActive = formOptionalFlag(c, "is_active")

	if in.MinSalary, err = formFloat(c, "min_salary", "Minimum salary", domain.RedirectCompanyJobs); err != nil {
		return req, err
	}
	if in.MaxSalary, err = formFloat(c, "max_salary", "Maximum salary", domain.RedirectCompanyJobs); err != nil {
		return req, err
	}
	if in.ApplicationDeadline, err = formDate(c, "application_deadline", "Application deadline", domain.RedirectCompanyJobs); err != nil {
		return req, err
	}

	// An unparsable id is treated like no id: the submission creates.
	if raw := strings.TrimSpace(c.PostForm("job_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.JobID = &id
		}
	}
	return req, nil
}

// ListCompanyJobs godoc
// @Summary      List own postings
// @Description  The caller's postings, newest first, with application counts. Out-of-range pages are clamped.
// @Tags         jobs
// @Produce      json
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /company/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListCompanyJobs(c *gin.Context) {
	page, err := h.jobUC.ListCompanyJobs(c.Request.Context(), principal(c), pagination.ParsePage(c.Query("page")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company jobs", page)
}

// ListOpenJobs godoc
// @Summary      List open jobs
// @Description  Active postings, newest first.
// @Tags         jobs
// @Produce      json
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListOpen(c *gin.Context) {
	page, err := h.jobUC.ListOpenJobs(c.Request.Context(), pagination.ParsePage(c.Query("page")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Open jobs", page)
}

// GetJobDetail godoc
// @Summary      Job detail
// @Description  A posting with flags describing the caller: owner, candidate, already applied.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobDetailView}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperror.NotFound("Job not found."))
		return
	}
	view, err := h.jobUC.GetJobDetail(c.Request.Context(), optionalPrincipal(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", view)
}
