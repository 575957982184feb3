// Package render composes a frame from a board snapshot without touching any
// display. Frontends draw the resulting Scene with their own primitives
package render

import (
	"fmt"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Measurer reports the pixel width of a string in the frontend's font
type Measurer interface {
	TextWidth(s string) int
}

// SpriteKind selects the image drawn for a sprite op
type SpriteKind uint8

const (
	SpriteBall SpriteKind = iota
	SpriteSegment
)

// SpriteOp draws one image with its top-left corner at (X, Y) in board coordinates
type SpriteOp struct {
	Kind SpriteKind
	X, Y int
}

// TextOp draws a string starting at X with its baseline at Y
type TextOp struct {
	Text string
	X, Y int
}

// Scene is one frame, drawn over a cleared background in order: sprites then text
type Scene struct {
	Width, Height int
	Sprites       []SpriteOp
	Texts         []TextOp
	Over          bool
}

// ScoreText formats the score line
func ScoreText(score int) string {
	return fmt.Sprintf(constants.ScoreFormat, score)
}

// Compose builds the scene for a snapshot on a board of the given size.
// While running: ball, every segment from the head back, then the score at the top-left.
// When over: only the game-over line and the score, both centered
func Compose(snap engine.Snapshot, width, height int, m Measurer) Scene {
	sc := Scene{Width: width, Height: height, Over: snap.Over()}

	if !sc.Over {
		sc.Sprites = make([]SpriteOp, 0, len(snap.Segments)+1)
		sc.Sprites = append(sc.Sprites, SpriteOp{Kind: SpriteBall, X: snap.Ball.X, Y: snap.Ball.Y})
		for _, p := range snap.Segments {
			sc.Sprites = append(sc.Sprites, SpriteOp{Kind: SpriteSegment, X: p.X, Y: p.Y})
		}
		sc.Texts = []TextOp{{Text: ScoreText(snap.Score), X: constants.ScoreTextX, Y: constants.ScoreTextY}}
		return sc
	}

	score := ScoreText(snap.Score)
	sc.Texts = []TextOp{
		{Text: constants.GameOverText, X: centered(width, m, constants.GameOverText), Y: height / 2},
		{Text: score, X: centered(width, m, score), Y: height/2 + constants.GameOverLineSpacing},
	}
	return sc
}

// TextTop returns the top edge of a text op drawn in a face with the given
// ascent. Lines whose glyphs would rise above the board are pushed down to 0
func TextTop(op TextOp, ascent int) int {
	return max(op.Y-ascent, 0)
}

func centered(width int, m Measurer, s string) int {
	if m == nil {
		return width / 2
	}
	return (width - m.TextWidth(s)) / 2
}

// FixedMeasurer measures every rune as the same width, as in monospace faces
type FixedMeasurer int

// TextWidth returns the rune count times the advance
func (f FixedMeasurer) TextWidth(s string) int {
	return len([]rune(s)) * int(f)
}
