package constants

import "time"

// Game Loop Timing
const (
	// TickDelay is the fixed delay between two board updates (timer period)
	TickDelay = 60 * time.Millisecond

	// FrameRate is the number of host frames per second for the window frontend
	FrameRate = 60
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)
