package engine

import (
	"github.com/lixenwraith/snake/constants"
)

// Status is the game lifecycle state
type Status uint8

const (
	StatusRunning Status = iota
	StatusOver
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// EventSink receives events produced by the board during a tick
type EventSink interface {
	Push(event GameEvent)
}

// Board owns the authoritative snake state and advances it one tick at a time.
// It is not safe for concurrent use; Controller serializes access.
type Board struct {
	cfg    Config
	rng    RandSource
	events EventSink

	// segments always holds at least dots+1 entries. Index dots is the slot
	// just past the tail: move writes the old tail there and growth exposes it
	segments  []Point
	dots      int
	ball      Point
	direction Direction
	score     int
	status    Status
	tick      uint64
}

// NewBoard creates an initialized board. A nil events sink discards events
func NewBoard(cfg Config, rng RandSource, events EventSink) *Board {
	b := &Board{
		cfg:    cfg,
		rng:    rng,
		events: events,
	}
	b.Initialize()
	return b
}

// Initialize resets the snake to its starting length centered on the board,
// heading right, with a fresh ball, zero score and running status
func (b *Board) Initialize() {
	b.dots = b.cfg.InitialDots
	b.segments = make([]Point, b.dots+1)
	for z := 0; z < b.dots; z++ {
		b.segments[z] = Point{
			X: b.cfg.BoardWidth/2 - z*b.cfg.CellSize,
			Y: b.cfg.BoardHeight / 2,
		}
	}

	b.direction = DirectionRight
	b.score = 0
	b.status = StatusRunning
	b.tick = 0
	b.RelocateBall()
}

// RelocateBall places the ball on a random grid-aligned cell.
// The snake body is not consulted, the ball may land under it
func (b *Board) RelocateBall() {
	b.ball = Point{
		X: b.rng.Intn(b.cfg.RandPos) * b.cfg.CellSize,
		Y: b.rng.Intn(b.cfg.RandPos) * b.cfg.CellSize,
	}
}

// Tick performs one update: eat check, collision check, then movement.
// It is a no-op once the game is over
func (b *Board) Tick() {
	if b.status != StatusRunning {
		return
	}
	b.tick++

	b.checkBall()
	b.checkCollision()

	if b.status == StatusRunning {
		b.move()
	}
}

// SetDirection changes the heading unless d reverses the current one.
// Returns true when the heading was applied
func (b *Board) SetDirection(d Direction) bool {
	if b.status != StatusRunning || !d.Valid() {
		return false
	}
	if d == b.direction.Opposite() {
		return false
	}
	b.direction = d
	return true
}

// checkBall grows the snake and scores when the head sits on the ball
func (b *Board) checkBall() {
	if b.segments[0] != b.ball {
		return
	}

	b.grow()
	b.score += b.cfg.ScorePerBall
	b.emit(EventBallEaten)
	b.RelocateBall()
}

// grow exposes the slot past the tail without seeding it; move fills it on the next tick
func (b *Board) grow() {
	if b.dots >= b.cfg.MaxDots() {
		return
	}
	b.dots++
	for len(b.segments) < b.dots+1 {
		b.segments = append(b.segments, Point{})
	}
}

// checkCollision ends the game on self or wall contact
func (b *Board) checkCollision() {
	head := b.segments[0]

	for z := b.dots; z > 1; z-- {
		if z > constants.SelfCollisionMinIndex && b.segments[z] == head {
			b.status = StatusOver
		}
	}

	if head.Y >= b.cfg.BoardHeight-b.cfg.CellSize || head.Y < 0 ||
		head.X >= b.cfg.BoardWidth-b.cfg.CellSize || head.X < 0 {
		b.status = StatusOver
	}

	if b.status == StatusOver {
		b.emit(EventGameOver)
	}
}

// move shifts every segment onto its predecessor, tail first, then steps the head
func (b *Board) move() {
	for z := b.dots; z > 0; z-- {
		b.segments[z] = b.segments[z-1]
	}

	dx, dy := b.direction.Delta()
	b.segments[0] = b.segments[0].Add(dx*b.cfg.CellSize, dy*b.cfg.CellSize)
}

func (b *Board) emit(t EventType) {
	if b.events == nil {
		return
	}
	b.events.Push(GameEvent{
		Type:  t,
		Score: b.score,
		Dots:  b.dots,
		Tick:  b.tick,
	})
}

// Status returns the lifecycle state
func (b *Board) Status() Status {
	return b.status
}

// Score returns the current score
func (b *Board) Score() int {
	return b.score
}

// Dots returns the snake length
func (b *Board) Dots() int {
	return b.dots
}

// Head returns the head position
func (b *Board) Head() Point {
	return b.segments[0]
}

// Ball returns the ball position
func (b *Board) Ball() Point {
	return b.ball
}

// Direction returns the active heading
func (b *Board) Direction() Direction {
	return b.direction
}

// Config returns the board configuration
func (b *Board) Config() Config {
	return b.cfg
}
