package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests and replays.
// Safe for concurrent use; the location of the start time is kept
type MockTimeProvider struct {
	start time.Time
	nanos atomic.Int64 // offset from start
}

// NewMockTimeProvider creates a provider frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.nanos.Load()))
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.nanos.Store(int64(t.Sub(m.start)))
}

// Advance moves the time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}
