// Package engine holds the snake board, its event plumbing and the loop
// controller that drives it.
//
// Event Flow:
//  1. Board pushes an event while ticking: ball eaten, game over
//  2. Events are stored in a lock-free ring buffer (capacity: constants.EventQueueSize)
//  3. Controller dispatches them after the tick through EventRouter
//  4. Handlers (sound, logging) react; none of them mutate the board
//
// Sound handlers start playback and return immediately, so a cue may still
// be playing when the next tick runs.
package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/constants"
)

// EventType represents the type of game event
type EventType int

const (
	// EventBallEaten signals that the head reached the ball.
	// Score and Dots carry the values after growth
	EventBallEaten EventType = iota

	// EventGameOver signals the transition to StatusOver. Pushed once per game
	EventGameOver
)

// String returns the event name
func (e EventType) String() string {
	switch e {
	case EventBallEaten:
		return "BallEaten"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent is a single board notification
type GameEvent struct {
	Type  EventType
	Score int    // Score when the event fired
	Dots  int    // Snake length when the event fired
	Tick  uint64 // Board tick that produced the event
}

// EventQueue is a lock-free ring buffer of game events.
// Push is safe from any goroutine; Consume expects a single consumer.
// When full, the oldest events are overwritten
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   atomic.Uint64 // next read index
	tail   atomic.Uint64 // next write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest one on overflow
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail&constants.EventBufferMask] = event

			currentHead := eq.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	result := eq.collect(currentHead, currentTail)
	if result == nil {
		return nil
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			break
		}
	}
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	return eq.collect(eq.head.Load(), eq.tail.Load())
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > constants.EventQueueSize {
		return constants.EventQueueSize
	}
	return int(available)
}

func (eq *EventQueue) collect(head, tail uint64) []GameEvent {
	available := tail - head
	if available == 0 {
		return nil
	}
	if available > constants.EventQueueSize {
		available = constants.EventQueueSize
		head = tail - constants.EventQueueSize
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(head+i)&constants.EventBufferMask]
	}
	return result
}
