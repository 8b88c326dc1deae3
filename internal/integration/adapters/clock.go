// Package adapters provides implementations of application adapter interfaces.
package adapters

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// SystemClock implements adapter.Clock using the wall clock in the local
// calendar, which is the calendar completion keys are recorded against.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current local instant.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements adapter.Clock with a settable instant for tests.
type FixedClock struct {
	Instant time.Time
}

// Now returns the configured instant.
func (c *FixedClock) Now() time.Time {
	return c.Instant
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.Clock = (*SystemClock)(nil)
	_ adapter.Clock = (*FixedClock)(nil)
)
