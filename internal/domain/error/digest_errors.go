// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Digest email domain errors.
var (
	// ErrDigestQueueFailed is returned when a digest fails to be queued.
	ErrDigestQueueFailed = errors.New("failed to queue digest")

	// ErrDigestRecipientRequired is returned when no recipient email is supplied.
	ErrDigestRecipientRequired = errors.New("digest recipient email is required")

	// ErrInvalidTemplate is returned when an invalid digest template is specified.
	ErrInvalidTemplate = errors.New("invalid digest template")

	// ErrTemplateRenderFailed is returned when digest template rendering fails.
	ErrTemplateRenderFailed = errors.New("failed to render digest template")

	// ErrDigestJobNotFound is returned when a digest job is not found.
	ErrDigestJobNotFound = errors.New("digest job not found")

	// ErrPermanentDigestFailure is returned when a digest fails with a permanent error.
	ErrPermanentDigestFailure = errors.New("permanent digest failure")

	// ErrTemporaryDigestFailure is returned when a digest fails with a temporary error.
	ErrTemporaryDigestFailure = errors.New("temporary digest failure")
)

// DigestErrorCode defines error codes for digest errors.
// Format: DIG-XXYYYY where XX is category and YYYY is specific error.
type DigestErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeDigestQueueFailed       DigestErrorCode = "DIG-010001"
	ErrCodeDigestJobNotFound       DigestErrorCode = "DIG-010002"
	ErrCodeDigestRecipientRequired DigestErrorCode = "DIG-010003"

	// Send errors (02XXXX)
	ErrCodePermanentDigestFailure DigestErrorCode = "DIG-020001"
	ErrCodeTemporaryDigestFailure DigestErrorCode = "DIG-020002"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate      DigestErrorCode = "DIG-030001"
	ErrCodeTemplateRenderFailed DigestErrorCode = "DIG-030002"
)

// DigestError represents a digest error with code and message.
type DigestError struct {
	Code    DigestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DigestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DigestError) Unwrap() error {
	return e.Err
}

// NewDigestError creates a new DigestError with the given code and message.
func NewDigestError(code DigestErrorCode, message string, err error) *DigestError {
	return &DigestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
