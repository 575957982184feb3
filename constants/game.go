package constants

// Board Geometry (logical units)
const (
	// BoardWidth is the logical width of the playing field
	BoardWidth = 1000

	// BoardHeight is the logical height of the playing field
	BoardHeight = 800

	// CellSize is the grid unit for every position and movement
	CellSize = 15

	// RandPos is the exclusive upper bound of the ball cell index on each axis
	RandPos = 29
)

// Snake Rules
const (
	// InitialDots is the snake length at game start
	InitialDots = 4

	// ScorePerBall is awarded each time the head reaches the ball
	ScorePerBall = 10

	// SelfCollisionMinIndex is the lowest segment index tested against the head.
	// Segments at or below it never collide.
	SelfCollisionMinIndex = 4
)
