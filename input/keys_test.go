package input

import (
	"testing"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// TestDirectionFor verifies arrow mapping and that other keys are ignored
func TestDirectionFor(t *testing.T) {
	tests := []struct {
		key  Key
		want engine.Direction
		ok   bool
	}{
		{KeyLeft, engine.DirectionLeft, true},
		{KeyRight, engine.DirectionRight, true},
		{KeyUp, engine.DirectionUp, true},
		{KeyDown, engine.DirectionDown, true},
		{KeyNone, 0, false},
		{KeyQuit, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := DirectionFor(tt.key)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestTranslate verifies intent classification
func TestTranslate(t *testing.T) {
	if in := Translate(KeyQuit); in.Type != IntentQuit {
		t.Errorf("Expected quit intent, got %v", in.Type)
	}
	if in := Translate(KeyNone); in.Type != IntentNone {
		t.Errorf("Expected no intent, got %v", in.Type)
	}
	in := Translate(KeyUp)
	if in.Type != IntentSteer || in.Direction != engine.DirectionUp {
		t.Errorf("Expected steer up, got %+v", in)
	}
}

// TestApply verifies intents reach the controller
func TestApply(t *testing.T) {
	g, err := engine.NewGame(engine.DefaultConfig(), engine.NewFixedRand(0), engine.NewIntervalClock(constants.TickDelay))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	if !Apply(g.Controller, Translate(KeyDown)) {
		t.Fatal("Steer intent should keep running")
	}
	if d := g.Controller.Snapshot().Direction; d != engine.DirectionDown {
		t.Errorf("Expected Down, got %v", d)
	}

	// Reverse is ignored by the board but does not quit
	if !Apply(g.Controller, Translate(KeyUp)) {
		t.Fatal("Reverse steer should keep running")
	}
	if d := g.Controller.Snapshot().Direction; d != engine.DirectionDown {
		t.Errorf("Expected Down after reverse, got %v", d)
	}

	if Apply(g.Controller, Translate(KeyQuit)) {
		t.Error("Quit intent should stop")
	}
}

// TestApplyKeysOrder verifies keys pressed together resolve in the order given
func TestApplyKeysOrder(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want engine.Direction
	}{
		// heading Right: Left is rejected before Down turns
		{"left then down", []Key{KeyLeft, KeyDown}, engine.DirectionDown},
		// Down turns first so Left is no longer a reverse
		{"down then left", []Key{KeyDown, KeyLeft}, engine.DirectionLeft},
		{"none", nil, engine.DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.NewGame(engine.DefaultConfig(), engine.NewFixedRand(0), engine.NewIntervalClock(constants.TickDelay))
			if err != nil {
				t.Fatalf("NewGame failed: %v", err)
			}
			if !ApplyKeys(g.Controller, tt.keys) {
				t.Fatal("Arrow keys should keep running")
			}
			if d := g.Controller.Snapshot().Direction; d != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, d)
			}
		})
	}
}

// TestApplyKeysQuit verifies quit stops processing later keys
func TestApplyKeysQuit(t *testing.T) {
	g, err := engine.NewGame(engine.DefaultConfig(), engine.NewFixedRand(0), engine.NewIntervalClock(constants.TickDelay))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	if ApplyKeys(g.Controller, []Key{KeyQuit, KeyDown}) {
		t.Error("Quit should stop")
	}
	if d := g.Controller.Snapshot().Direction; d != engine.DirectionRight {
		t.Errorf("Keys after quit should be ignored, got %v", d)
	}
}
