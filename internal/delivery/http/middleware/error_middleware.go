package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// The client only ever sees the generic message.
			logger.FromContext(c.Request.Context()).Error("Request failed",
				"path", c.FullPath(), "kind", appErr.Kind, "error", appErr.Err)
		}
		response.ErrorRedirect(c, appErr.Code, appErr.Message, appErr.Redirect, appErr.Details)
	}
}
