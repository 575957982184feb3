package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snake/constants"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid board config")

// Config holds the board geometry and scoring rules
type Config struct {
	// BoardWidth is the logical width of the field
	BoardWidth int

	// BoardHeight is the logical height of the field
	BoardHeight int

	// CellSize is the grid unit for positions and movement
	CellSize int

	// RandPos is the exclusive bound of the ball cell index per axis
	RandPos int

	// InitialDots is the snake length after Initialize
	InitialDots int

	// ScorePerBall is added to the score for each ball eaten
	ScorePerBall int
}

// DefaultConfig returns the literal game constants
func DefaultConfig() Config {
	return Config{
		BoardWidth:   constants.BoardWidth,
		BoardHeight:  constants.BoardHeight,
		CellSize:     constants.CellSize,
		RandPos:      constants.RandPos,
		InitialDots:  constants.InitialDots,
		ScorePerBall: constants.ScorePerBall,
	}
}

// MaxDots is the number of cells on the board, the bound on snake length
func (c Config) MaxDots() int {
	if c.CellSize <= 0 {
		return 0
	}
	return (c.BoardWidth / c.CellSize) * (c.BoardHeight / c.CellSize)
}

// Validate checks that the geometry can hold the initial snake
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.BoardWidth < c.CellSize || c.BoardHeight < c.CellSize:
		return fmt.Errorf("%w: board %dx%d smaller than one cell", ErrInvalidConfig, c.BoardWidth, c.BoardHeight)
	case c.RandPos <= 0:
		return fmt.Errorf("%w: ball range %d", ErrInvalidConfig, c.RandPos)
	case c.InitialDots < 1:
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialDots)
	case c.InitialDots >= c.MaxDots():
		return fmt.Errorf("%w: initial length %d does not fit %d cells", ErrInvalidConfig, c.InitialDots, c.MaxDots())
	case c.ScorePerBall < 0:
		return fmt.Errorf("%w: negative score per ball", ErrInvalidConfig)
	}
	return nil
}
