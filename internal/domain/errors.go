package domain

import "errors"

// Storage-level sentinels. Repositories translate driver errors into these so
// usecases never inspect driver types.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("application already exists for job and candidate")
)
