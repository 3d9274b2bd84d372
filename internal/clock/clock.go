// Package clock abstracts time so that services stamping database rows
// (score dates, account creation) can be tested deterministically.
package clock

import "time"

// Clock provides time operations that can be swapped out in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// New creates a new RealClock.
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed implements Clock with a constant time value. Intended for tests.
type Fixed struct {
	T time.Time
}

// Now returns the configured constant time.
func (f Fixed) Now() time.Time {
	return f.T
}
