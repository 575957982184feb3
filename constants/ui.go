package constants

import "image/color"

// Window Layout
const (
	// WindowWidth is the visible window width; the board is scaled into it
	WindowWidth = BoardWidth / 2

	// WindowHeight is the visible window height
	WindowHeight = BoardHeight / 2

	// WindowTitle is the window caption
	WindowTitle = "Snake Game"
)

// Text Overlay
const (
	// ScoreTextX is the left edge of the running score text
	ScoreTextX = 10

	// ScoreTextY is the baseline of the running score text
	ScoreTextY = 10

	// GameOverLineSpacing separates the "Game Over" line from the final score
	GameOverLineSpacing = 20

	GameOverText = "Game Over"
	ScoreFormat  = "Score: %d"
)

// Image Assets
const (
	BallImageFile    = "ball.png"
	SegmentImageFile = "snake.png"
)

// Colors
var (
	ColorBackground  = color.White
	ColorText        = color.Black
	ColorBallFill    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	ColorSegmentFill = color.RGBA{R: 40, G: 160, B: 60, A: 255}
)
