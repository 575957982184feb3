package engine

import (
	"sync/atomic"
	"time"
)

// Clock decides when a timer firing is due. Once stopped it never fires again
type Clock interface {
	// Fire reports whether one tick should run at now
	Fire(now time.Time) bool

	// Stop halts the clock permanently
	Stop()

	// Stopped reports whether Stop has been called
	Stopped() bool
}

// IntervalClock fires at most once per call when at least one interval has
// elapsed since the previous firing. Missed firings are coalesced into one,
// so a stalled host never triggers a burst of catch-up ticks.
// Used by frame-driven hosts that poll it every frame
type IntervalClock struct {
	interval time.Duration
	last     time.Time
	started  bool
	stopped  atomic.Bool
}

// NewIntervalClock creates a clock with the given period
func NewIntervalClock(interval time.Duration) *IntervalClock {
	return &IntervalClock{interval: interval}
}

// Fire reports whether a period has elapsed. The first call only anchors the clock
func (c *IntervalClock) Fire(now time.Time) bool {
	if c.stopped.Load() || c.interval <= 0 {
		return false
	}
	if !c.started {
		c.last = now
		c.started = true
		return false
	}

	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return false
	}

	// Keep the phase, drop the extra periods
	c.last = c.last.Add(elapsed - elapsed%c.interval)
	return true
}

// Stop halts the clock
func (c *IntervalClock) Stop() {
	c.stopped.Store(true)
}

// Stopped reports whether the clock was stopped
func (c *IntervalClock) Stopped() bool {
	return c.stopped.Load()
}

// TimerClock wraps a time.Ticker for hosts that select on a channel.
// Each value received from C is one firing
type TimerClock struct {
	ticker  *time.Ticker
	stopped atomic.Bool
}

// NewTimerClock starts a ticker with the given period
func NewTimerClock(interval time.Duration) *TimerClock {
	return &TimerClock{ticker: time.NewTicker(interval)}
}

// C returns the ticker channel
func (c *TimerClock) C() <-chan time.Time {
	return c.ticker.C
}

// Fire reports true for every firing until the clock is stopped
func (c *TimerClock) Fire(time.Time) bool {
	return !c.stopped.Load()
}

// Stop stops the underlying ticker
func (c *TimerClock) Stop() {
	if c.stopped.CompareAndSwap(false, true) {
		c.ticker.Stop()
	}
}

// Stopped reports whether the clock was stopped
func (c *TimerClock) Stopped() bool {
	return c.stopped.Load()
}
