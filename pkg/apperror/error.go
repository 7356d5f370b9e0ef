package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of its HTTP status.
type Kind string

const (
	KindValidation           Kind = "validation"
	KindConflict             Kind = "conflict"
	KindAuthentication       Kind = "authentication"
	KindAuthorization        Kind = "authorization"
	KindNotFound             Kind = "not_found"
	KindDuplicateApplication Kind = "duplicate_application"
	KindApplication          Kind = "application"
	KindInternal             Kind = "internal"
)

type AppError struct {
	Code     int    `json:"code"`
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	Details  any    `json:"details,omitempty"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithRedirect returns a copy of e carrying the page the client should go to.
func (e *AppError) WithRedirect(path string) *AppError {
	cp := *e
	cp.Redirect = path
	return &cp
}

// WithDetails returns a copy of e carrying per-field messages.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

func Unauthenticated(message string) *AppError {
	return New(http.StatusUnauthorized, KindAuthentication, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindAuthorization, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func DuplicateApplication(message string) *AppError {
	return New(http.StatusConflict, KindDuplicateApplication, message, nil)
}

// Application reports a failed submission without exposing the cause to the client.
func Application(err error) *AppError {
	return New(http.StatusInternalServerError, KindApplication, "Your application could not be submitted. Please try again.", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// KindOf returns the kind of err, or KindInternal for errors that are not AppErrors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
