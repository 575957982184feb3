package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/engine"
)

// Run drives the game on an initialized screen until the player quits or ctx ends.
// Input and ticks are applied on the calling goroutine; a poller goroutine only
// forwards events. The caller owns screen and must Fini it afterwards
func Run(ctx context.Context, screen tcell.Screen, ctrl *engine.Controller, clock *engine.TimerClock) error {
	if screen == nil || ctrl == nil || clock == nil {
		return errors.New("terminal: nil screen, controller or clock")
	}
	defer clock.Stop()

	s := New(screen, ctrl)
	s.Draw()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !s.HandleEvent(ev) {
				return nil
			}
		case now := <-clock.C():
			ctrl.Step(now)
			s.Draw()
		}
	}
}
