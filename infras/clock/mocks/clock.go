package mocks

import (
	"time"
	"zeit/infras/clock"
)

type fixedClock time.Time

// Now implements clock.Clock.
func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

// NewFixed returns a Clock frozen at the given instant.
func NewFixed(t time.Time) clock.Clock {
	return fixedClock(t)
}
