// Package window runs the game in a desktop window through ebiten.
// The board is laid out at its logical size and ebiten scales it into the window
package window

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/snake/asset"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// textScale enlarges the 7x13 bitmap face so it stays readable after the
// board is halved into the window
const textScale = 2

// keyBindings is scanned in order each frame
var keyBindings = []struct {
	native ebiten.Key
	key    input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyEscape, input.KeyQuit},
}

// Game implements ebiten.Game on top of a controller
type Game struct {
	ctrl       *engine.Controller
	clock      engine.TimeProvider
	cfg        engine.Config
	ball       *ebiten.Image
	segment    *ebiten.Image
	face       *text.GoXFace
	loggedOver bool
	pressed    []input.Key
}

// NewGame prepares GPU images for the sprites
func NewGame(ctrl *engine.Controller, sprites *asset.Sprites, tp engine.TimeProvider) *Game {
	return &Game{
		ctrl:    ctrl,
		clock:   tp,
		cfg:     ctrl.Config(),
		ball:    toEbiten(sprites.Ball),
		segment: toEbiten(sprites.Segment),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

func toEbiten(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	return ebiten.NewImageFromImage(img)
}

// Update applies just-pressed keys then advances the board when the clock fires
func (g *Game) Update() error {
	g.pressed = g.pressed[:0]
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.native) {
			g.pressed = append(g.pressed, b.key)
		}
	}
	if !input.ApplyKeys(g.ctrl, g.pressed) {
		return ebiten.Termination
	}

	g.ctrl.Step(g.clock.Now())

	if g.ctrl.Stopped() && !g.loggedOver {
		log.Printf("window: game over, score %d", g.ctrl.Snapshot().Score)
		g.loggedOver = true
	}
	return nil
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(constants.ColorBackground)

	sc := render.Compose(g.ctrl.Snapshot(), g.cfg.BoardWidth, g.cfg.BoardHeight, g)

	for _, op := range sc.Sprites {
		img := g.segment
		if op.Kind == render.SpriteBall {
			img = g.ball
		}
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(op.X), float64(op.Y))
		screen.DrawImage(img, opts)
	}

	ascent := int(g.face.Metrics().HAscent * textScale)
	for _, op := range sc.Texts {
		opts := &text.DrawOptions{}
		opts.GeoM.Scale(textScale, textScale)
		opts.GeoM.Translate(float64(op.X), float64(render.TextTop(op, ascent)))
		opts.ColorScale.ScaleWithColor(constants.ColorText)
		text.Draw(screen, op.Text, g.face, opts)
	}
}

// Layout keeps the logical board size regardless of the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.BoardWidth, g.cfg.BoardHeight
}

// TextWidth measures s in the scaled face
func (g *Game) TextWidth(s string) int {
	return int(text.Advance(s, g.face) * textScale)
}

// Run opens the window and blocks until it is closed or Esc is pressed
func Run(ctrl *engine.Controller, sprites *asset.Sprites, tp engine.TimeProvider) error {
	ebiten.SetWindowSize(constants.WindowWidth, constants.WindowHeight)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowResizable(false)
	ebiten.SetTPS(constants.FrameRate)

	if err := ebiten.RunGame(NewGame(ctrl, sprites, tp)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
