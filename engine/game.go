package engine

import "fmt"

// Game bundles a controller with the event plumbing frontends subscribe to
type Game struct {
	Controller *Controller
	Router     *EventRouter
	Queue      *EventQueue
}

// NewGame validates cfg and builds an initialized board driven by clock
func NewGame(cfg Config, rng RandSource, clock Clock) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	queue := NewEventQueue()
	router := NewEventRouter(queue)
	board := NewBoard(cfg, rng, queue)

	return &Game{
		Controller: NewController(board, router, clock),
		Router:     router,
		Queue:      queue,
	}, nil
}
