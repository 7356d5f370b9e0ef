package v1

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(public *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	public.GET("/", handler.Landing)
	public.POST("/reviews", handler.Submit)
}

// ReviewRequest is the JSON body of a review. Rating may be a number or a
// numeric string; anything else counts as missing.
type ReviewRequest struct {
	AuthorName  string `json:"author_name"`
	CompanyName string `json:"company_name"`
	Rating      any    `json:"rating" swaggertype:"integer"`
	Text        string `json:"text"`
	AuthorKind  string `json:"author_kind"`
}

// Landing godoc
// @Summary      Landing page data
// @Description  The most recent visible reviews.
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.LandingView}
// @Router       / [get]
func (h *ReviewHandler) Landing(c *gin.Context) {
	view, err := h.reviewUC.Landing(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Landing", view)
}

// SubmitReview godoc
// @Summary      Submit a review
// @Description  Publishes a review immediately. Ratings outside 1-5 are clamped; a missing rating counts as 5.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      ReviewRequest  true  "Review"
// @Success      201   {object}  response.Response{data=domain.Review}
// @Failure      400   {object}  response.Response
// @Router       /reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var input domain.ReviewInput
	if isJSON(c) {
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(badBody(domain.RedirectLanding))
			return
		}
		input = domain.ReviewInput{
			AuthorName:  req.AuthorName,
			CompanyName: req.CompanyName,
			Rating:      parseRating(req.Rating),
			Text:        req.Text,
			AuthorKind:  req.AuthorKind,
		}
	} else {
		input = domain.ReviewInput{
			AuthorName:  c.PostForm("author_name"),
			CompanyName: c.PostForm("company_name"),
			Rating:      parseRating(c.PostForm("rating")),
			Text:        c.PostForm("text"),
			AuthorKind:  c.PostForm("author_kind"),
		}
	}

	review, err := h.reviewUC.SubmitReview(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessRedirect(c, http.StatusCreated, "Thank you for your review!", domain.RedirectLanding, review)
}

// parseRating reads a rating from a JSON value or a form string. Values that
// are not whole numbers yield nil.
func parseRating(v any) *int {
	switch r := v.(type) {
	case float64:
		if r != math.Trunc(r) || math.Abs(r) > math.MaxInt32 {
			return nil
		}
		n := int(r)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil
		}
		return &n
	}
	return nil
}
