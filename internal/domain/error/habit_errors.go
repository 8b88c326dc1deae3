// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrHabitNameTooLong is returned when the habit name exceeds the allowed length.
	ErrHabitNameTooLong = errors.New("habit name too long")

	// ErrInvalidHabitID is returned when the supplied habit id is not a valid UUID.
	ErrInvalidHabitID = errors.New("invalid habit id")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound    HabitErrorCode = "HAB-010001"
	ErrCodeHabitNameTooLong HabitErrorCode = "HAB-010002"
	ErrCodeInvalidHabitID   HabitErrorCode = "HAB-010003"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
