package v1

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const dateLayout = "2006-01-02"

// principal returns the caller set by the auth middleware. Routes behind
// RequireAuth always have one.
func principal(c *gin.Context) domain.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

func optionalPrincipal(c *gin.Context) *domain.Principal {
	if p, ok := middleware.PrincipalFrom(c); ok {
		return &p
	}
	return nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NotFound("Not found.")
	}
	return id, nil
}

func isJSON(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON
}

func badBody(redirect string) *apperror.AppError {
	return apperror.Validation("Invalid request body.").WithRedirect(redirect)
}

// formFloat parses an optional decimal form value. Blank means absent.
func formFloat(c *gin.Context, field, label, redirect string) (*float64, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.Validation(label + " must be a number.").WithRedirect(redirect)
	}
	return &v, nil
}

// formDate parses an optional YYYY-MM-DD form value. Blank means absent.
func formDate(c *gin.Context, field, label, redirect string) (*time.Time, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperror.Validation(label + " must be a date (YYYY-MM-DD).").WithRedirect(redirect)
	}
	return &v, nil
}

// formFlag reads a checkbox. Browsers send "on" for ticked boxes and nothing
// otherwise.
func formFlag(c *gin.Context, field string) bool {
	v, ok := c.GetPostForm(field)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}

// formOptionalFlag is formFlag that tells "not sent" apart from "unticked".
func formOptionalFlag(c *gin.Context, field string) *bool {
	if _, ok := c.GetPostForm(field); !ok {
		return nil
	}
	v := formFlag(c, field)
	return &v
}

// splitSkills accepts repeated skills fields and comma-separated lists.
func splitSkills(values []string) []string {
	var skills []string
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}
	return skills
}

// formUpload turns the named multipart file into an Upload. A missing file or
// an empty file name yields nil; the returned closer is always safe to call.
func formUpload(c *gin.Context, field string) (*domain.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, noop, nil
		}
		return nil, noop, apperror.Validation("Could not read the uploaded file.")
	}
	if fh.Filename == "" {
		return nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, apperror.Internal(err)
	}
	return uploadFrom(fh, f), func() { _ = f.Close() }, nil
}

func uploadFrom(fh *multipart.FileHeader, body io.Reader) *domain.Upload {
	return &domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        body,
	}
}

// sendFile streams a stored file as an attachment.
func sendFile(c *gin.Context, file *domain.FileDownload) {
	defer file.Body.Close()
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename})
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, file.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}
