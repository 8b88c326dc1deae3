// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Stats domain errors.
var (
	// ErrInvalidGranularity is returned when the granularity selector is not recognized.
	ErrInvalidGranularity = errors.New("invalid granularity")

	// ErrInvalidDateKey is returned when a completion date key cannot be parsed.
	// Date keys are validated at the input boundary, so hitting this during an
	// aggregation pass indicates corrupted stored state; the pass is aborted
	// rather than skipping the offending key.
	ErrInvalidDateKey = errors.New("invalid date key")
)

// StatsErrorCode defines error codes for stats errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGranularity StatsErrorCode = "STA-010001"

	// Data integrity errors (02XXXX)
	ErrCodeInvalidDateKey StatsErrorCode = "STA-020001"
)

// StatsError represents a stats error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
