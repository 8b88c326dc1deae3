// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectID is returned when the supplied project id is not a valid UUID.
	ErrInvalidProjectID = errors.New("invalid project id")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProjectNotFound  ProjectErrorCode = "PRJ-010001"
	ErrCodeInvalidProjectID ProjectErrorCode = "PRJ-010002"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
