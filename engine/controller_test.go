package engine

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/snake/constants"
)

type countingHandler struct {
	mu     sync.Mutex
	counts map[EventType]int
}

func newCountingHandler() *countingHandler {
	return &countingHandler{counts: make(map[EventType]int)}
}

func (h *countingHandler) HandleEvent(ev GameEvent) {
	h.mu.Lock()
	h.counts[ev.Type]++
	h.mu.Unlock()
}

func (h *countingHandler) EventTypes() []EventType {
	return []EventType{EventBallEaten, EventGameOver}
}

func (h *countingHandler) count(t EventType) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[t]
}

func newTestGame(t *testing.T) (*Game, *MockTimeProvider) {
	t.Helper()
	g, err := NewGame(DefaultConfig(), NewFixedRand(0), NewIntervalClock(constants.TickDelay))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	tp := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g.Controller.Step(tp.Now()) // anchor
	return g, tp
}

// TestControllerStepsOnInterval verifies ticks only run when the clock fires
func TestControllerStepsOnInterval(t *testing.T) {
	g, tp := newTestGame(t)

	tp.Advance(constants.TickDelay / 2)
	if g.Controller.Step(tp.Now()) {
		t.Error("Tick ran before the interval elapsed")
	}

	for i := 0; i < 3; i++ {
		tp.Advance(constants.TickDelay)
		if !g.Controller.Step(tp.Now()) {
			t.Fatalf("Step %d did not tick", i)
		}
	}

	snap := g.Controller.Snapshot()
	if snap.Head() != (Point{X: 545, Y: 400}) {
		t.Errorf("Expected head (545,400), got %+v", snap.Head())
	}
	if snap.Tick != 3 {
		t.Errorf("Expected tick 3, got %d", snap.Tick)
	}
}

// TestControllerStopsOnGameOver runs into the right wall and checks the loop halts
func TestControllerStopsOnGameOver(t *testing.T) {
	g, tp := newTestGame(t)
	h := newCountingHandler()
	g.Router.Register(h)

	ticks := 0
	for !g.Controller.Stopped() && ticks < 100 {
		tp.Advance(constants.TickDelay)
		if g.Controller.Step(tp.Now()) {
			ticks++
		}
	}

	if !g.Controller.Stopped() {
		t.Fatal("Controller never stopped")
	}
	// 33 moves reach x=995, the 34th tick detects the wall
	if ticks != 34 {
		t.Errorf("Expected 34 ticks, got %d", ticks)
	}
	if !g.Controller.Snapshot().Over() {
		t.Error("Expected board over")
	}
	if n := h.count(EventGameOver); n != 1 {
		t.Errorf("Expected one GameOver event, got %d", n)
	}

	tp.Advance(time.Second)
	if g.Controller.Step(tp.Now()) {
		t.Error("Stopped controller ticked")
	}
	if n := h.count(EventGameOver); n != 1 {
		t.Errorf("GameOver repeated after stop, got %d", n)
	}
}

// TestControllerSteer verifies input goes through SetDirection rules
func TestControllerSteer(t *testing.T) {
	g, tp := newTestGame(t)

	if g.Controller.Steer(DirectionLeft) {
		t.Error("Reverse direction accepted")
	}
	if !g.Controller.Steer(DirectionUp) {
		t.Fatal("Up rejected")
	}

	tp.Advance(constants.TickDelay)
	g.Controller.Step(tp.Now())

	if head := g.Controller.Snapshot().Head(); head != (Point{X: 500, Y: 385}) {
		t.Errorf("Expected head (500,385), got %+v", head)
	}
}

// TestControllerConcurrentSteer exercises input from another goroutine while stepping
func TestControllerConcurrentSteer(t *testing.T) {
	g, tp := newTestGame(t)

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		dirs := []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionRight}
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
				g.Controller.Steer(dirs[i%len(dirs)])
				_ = g.Controller.Snapshot()
			}
		}
	}()

	for i := 0; i < 200 && !g.Controller.Stopped(); i++ {
		tp.Advance(constants.TickDelay)
		g.Controller.Step(tp.Now())
	}
	close(done)
	wg.Wait()

	snap := g.Controller.Snapshot()
	if snap.Dots != len(snap.Segments) {
		t.Errorf("Snapshot inconsistent: dots=%d segments=%d", snap.Dots, len(snap.Segments))
	}
}

// TestNewGameRejectsInvalidConfig verifies configuration errors surface
func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 0

	_, err := NewGame(cfg, NewFixedRand(0), NewIntervalClock(constants.TickDelay))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// TestControllerTrace verifies the per-tick head log is opt-in
func TestControllerTrace(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	g, tp := newTestGame(t)

	tp.Advance(constants.TickDelay)
	g.Controller.Step(tp.Now())
	if buf.Len() != 0 {
		t.Fatalf("Trace logged while disabled: %q", buf.String())
	}

	g.Controller.SetTrace(true)
	for i := 0; i < 2; i++ {
		tp.Advance(constants.TickDelay)
		g.Controller.Step(tp.Now())
	}

	want := "tick 2: head 530,400\ntick 3: head 545,400\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	g.Controller.SetTrace(false)
	tp.Advance(constants.TickDelay)
	g.Controller.Step(tp.Now())
	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("Trace logged after disable: %q", buf.String())
	}
}
