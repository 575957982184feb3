package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/snake/asset"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/logging"
	"github.com/lixenwraith/snake/status"
	"github.com/lixenwraith/snake/terminal"
	"github.com/lixenwraith/snake/window"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

var (
	frontendFlag = flag.String("frontend", frontendWindow, "Frontend: window, terminal")
	assetsFlag   = flag.String("assets", ".", "Directory holding ball.png, snake.png, eat.wav and gameover.wav")
	seedFlag     = flag.Uint64("seed", 0, "Ball placement seed, 0 picks one from the clock")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/snake.log")
)

func main() {
	flag.Parse()

	logFile := logging.Setup(*debugFlag)

	session := uuid.New()
	log.SetPrefix(logging.SessionPrefix(session))
	log.Printf("session %s starting, frontend=%s assets=%s", session, *frontendFlag, *assetsFlag)

	err := run(*frontendFlag, *assetsFlag, *seedFlag)
	if err != nil {
		log.Printf("exit: %v", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

var errUnknownFrontend = errors.New("unknown frontend")

func run(frontend, assetDir string, seed uint64) error {
	if frontend != frontendWindow && frontend != frontendTerminal {
		return fmt.Errorf("%w %q", errUnknownFrontend, frontend)
	}

	cfg := engine.DefaultConfig()
	seed = engine.ResolveSeed(seed, time.Now())
	log.Printf("seed %d", seed)

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	if errs := sound.Load(assetDir); len(errs) > 0 {
		log.Printf("audio: %d cue(s) unavailable", len(errs))
	}

	stats := status.NewRegistry()
	defer func() { log.Printf("session stats: %s", stats.Summary()) }()

	switch frontend {
	case frontendWindow:
		g, err := newGame(cfg, seed, engine.NewIntervalClock(constants.TickDelay), sound, stats)
		if err != nil {
			return err
		}
		sprites, errs := asset.LoadSprites(assetDir)
		if len(errs) > 0 {
			log.Printf("asset: %d sprite(s) drawn as placeholders", len(errs))
		}
		return window.Run(g.Controller, sprites, engine.NewMonotonicTimeProvider())

	case frontendTerminal:
		clock := engine.NewTimerClock(constants.TickDelay)
		g, err := newGame(cfg, seed, clock, sound, stats)
		if err != nil {
			clock.Stop()
			return err
		}
		return runTerminal(g, clock)

	default:
		return fmt.Errorf("%w %q", errUnknownFrontend, frontend)
	}
}

// newGame builds the board and subscribes handlers and the event log to it
func newGame(cfg engine.Config, seed uint64, clock engine.Clock, handlers ...engine.EventHandler) (*engine.Game, error) {
	g, err := engine.NewGame(cfg, engine.NewRandSource(seed), clock)
	if err != nil {
		return nil, err
	}
	for _, h := range handlers {
		g.Router.Register(h)
	}
	g.Router.Register(eventLogger{})
	g.Controller.SetTrace(*debugFlag)
	return g, nil
}

func runTerminal(g *engine.Game, clock *engine.TimerClock) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	return terminal.Run(context.Background(), screen, g.Controller, clock)
}

// eventLogger records board events in the debug log
type eventLogger struct{}

func (eventLogger) HandleEvent(ev engine.GameEvent) {
	log.Printf("tick %d: %s score=%d dots=%d", ev.Tick, ev.Type, ev.Score, ev.Dots)
}

func (eventLogger) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventBallEaten, engine.EventGameOver}
}
