// Package clock provides the system time to the application.
//
// The query engine reads the clock exactly once per query through this
// interface, so tests can pin the current instant with a fixed
// implementation.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct {
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by the system clock.
func New() Clock {
	return &systemClock{}
}
