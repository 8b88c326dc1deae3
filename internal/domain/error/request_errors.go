// Package error defines domain-specific errors for the Habit Tracker application.
package error

// RequestErrorCode defines error codes for request-level errors.
type RequestErrorCode string

const (
	ErrCodeRateLimited    RequestErrorCode = "REQ-010001"
	ErrCodeInvalidRequest RequestErrorCode = "REQ-010002"
)
