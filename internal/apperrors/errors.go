package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a monetary cell that could not be normalized.
// Row-level: callers skip the row and the import continues.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidDate indicates a date cell that could not be normalized.
// Row-level: callers skip the row and the import continues.
var ErrInvalidDate = errors.New("invalid date")

// ErrHeaderNotFound indicates that no header row matched the bank's sentinel
// labels within the bounded scan. Fatal to the import job.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrColumnsNotFound indicates the header row was located but one or more
// required columns could not be mapped. Fatal to the import job.
var ErrColumnsNotFound = errors.New("required columns not found")

// ErrLookupFailed indicates a registry lookup exhausted its attempts or got a
// terminal non-2xx response. Enrichment-level: never fatal to an import job.
var ErrLookupFailed = errors.New("registry lookup failed")

// AppError carries a status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
