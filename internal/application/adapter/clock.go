// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current instant to time-dependent use cases. Every
// time-window computation takes "now" through this interface so tests can
// run against a fixed instant instead of the wall clock.
type Clock interface {
	// Now returns the current instant in the local calendar.
	Now() time.Time
}
