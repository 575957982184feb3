package engine

import "time"

// TimeProvider supplies the current time to the clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the system time with its monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
