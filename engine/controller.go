package engine

import (
	"log"
	"sync"
	"time"
)

// Controller owns the board and is the only path to mutate it.
// A single mutex guards tick and input so hosts may deliver keys from another goroutine
type Controller struct {
	mu     sync.Mutex
	board  *Board
	router *EventRouter
	clock  Clock
	trace  bool
}

// NewController wires a board to its event router and clock
func NewController(board *Board, router *EventRouter, clock Clock) *Controller {
	return &Controller{
		board:  board,
		router: router,
		clock:  clock,
	}
}

// Step runs one board tick when the clock fires at now.
// The clock is stopped for good when the game ends.
// Events are dispatched after the lock is released. Returns true if a tick ran
func (c *Controller) Step(now time.Time) bool {
	c.mu.Lock()
	ticked := c.step(now)
	c.mu.Unlock()

	if c.router != nil {
		c.router.DispatchAll()
	}
	return ticked
}

func (c *Controller) step(now time.Time) bool {
	if c.clock.Stopped() || !c.clock.Fire(now) {
		return false
	}

	c.board.Tick()
	if c.trace {
		head := c.board.Head()
		log.Printf("tick %d: head %d,%d", c.board.tick, head.X, head.Y)
	}
	if c.board.Status() == StatusOver {
		c.clock.Stop()
	}
	return true
}

// SetTrace enables logging the head position after every tick
func (c *Controller) SetTrace(on bool) {
	c.mu.Lock()
	c.trace = on
	c.mu.Unlock()
}

// Steer applies a direction change. Returns true when accepted
func (c *Controller) Steer(d Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board.SetDirection(d)
}

// Snapshot returns a copy of the board for rendering
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board.Snapshot()
}

// Stopped reports whether the tick loop has halted
func (c *Controller) Stopped() bool {
	return c.clock.Stopped()
}

// Config returns the board configuration
func (c *Controller) Config() Config {
	return c.board.Config()
}
