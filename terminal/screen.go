// Package terminal runs the game in a text terminal through tcell.
// Each board cell maps to one terminal cell and sprites become solid blocks
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

const blockRune = '█'

// Screen draws snapshots onto a tcell screen
type Screen struct {
	screen tcell.Screen
	ctrl   *engine.Controller
	cell   int

	background tcell.Style
	textStyle  tcell.Style
	ballStyle  tcell.Style
	bodyStyle  tcell.Style
}

// New binds an initialized tcell screen to a controller
func New(screen tcell.Screen, ctrl *engine.Controller) *Screen {
	bg := toTcell(constants.ColorBackground)
	return &Screen{
		screen:     screen,
		ctrl:       ctrl,
		cell:       ctrl.Config().CellSize,
		background: tcell.StyleDefault.Background(bg).Foreground(bg),
		textStyle:  tcell.StyleDefault.Background(bg).Foreground(toTcell(constants.ColorText)),
		ballStyle:  tcell.StyleDefault.Background(bg).Foreground(toTcell(constants.ColorBallFill)),
		bodyStyle:  tcell.StyleDefault.Background(bg).Foreground(toTcell(constants.ColorSegmentFill)),
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Size returns the board size in terminal cells
func (s *Screen) Size() (int, int) {
	cfg := s.ctrl.Config()
	return cfg.BoardWidth / s.cell, cfg.BoardHeight / s.cell
}

// TextWidth measures text in board units, one cell per rune
func (s *Screen) TextWidth(str string) int {
	return render.FixedMeasurer(s.cell).TextWidth(str)
}

// Draw renders the current snapshot and shows it
func (s *Screen) Draw() {
	cfg := s.ctrl.Config()
	sc := render.Compose(s.ctrl.Snapshot(), cfg.BoardWidth, cfg.BoardHeight, s)

	s.screen.SetStyle(s.background)
	s.screen.Clear()

	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, s.background)
		}
	}

	for _, op := range sc.Sprites {
		style := s.bodyStyle
		if op.Kind == render.SpriteBall {
			style = s.ballStyle
		}
		s.setCell(op.X/s.cell, op.Y/s.cell, blockRune, style)
	}

	for _, op := range sc.Texts {
		x, y := op.X/s.cell, op.Y/s.cell
		for i, r := range []rune(op.Text) {
			s.setCell(x+i, y, r, s.textStyle)
		}
	}

	s.screen.Show()
}

// setCell drops writes outside the board so stale or off-board segments are not drawn
func (s *Screen) setCell(x, y int, r rune, style tcell.Style) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// HandleEvent applies one terminal event. Returns false when the player quits
func (s *Screen) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !input.Apply(s.ctrl, input.Translate(TranslateKey(ev))) {
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.Draw()
	}
	return true
}

// TranslateKey maps a tcell key event to a frontend-neutral key
func TranslateKey(ev *tcell.EventKey) input.Key {
	return translate(ev.Key(), ev.Rune())
}

func translate(k tcell.Key, r rune) input.Key {
	switch k {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return input.KeyQuit
		}
	}
	return input.KeyNone
}
