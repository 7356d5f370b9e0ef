package response

import (
	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/domain"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Redirect  string      `json:"redirect,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	SuccessRedirect(c, code, message, "", data)
}

// SuccessRedirect sends a success response telling the client where to go next.
func SuccessRedirect(c *gin.Context, code int, message, redirect string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Redirect:  redirect,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	ErrorRedirect(c, code, message, "", err)
}

func ErrorRedirect(c *gin.Context, code int, message, redirect string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		Redirect:  redirect,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
