package input

import "github.com/lixenwraith/snake/engine"

// Key is a frontend-neutral key code. Frontends translate native events into it
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQuit
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyQuit:
		return "Quit"
	default:
		return "None"
	}
}

// keyTable maps arrow keys to steering directions
var keyTable = map[Key]engine.Direction{
	KeyLeft:  engine.DirectionLeft,
	KeyRight: engine.DirectionRight,
	KeyUp:    engine.DirectionUp,
	KeyDown:  engine.DirectionDown,
}

// DirectionFor returns the direction bound to k. Non-arrow keys report false
func DirectionFor(k Key) (engine.Direction, bool) {
	d, ok := keyTable[k]
	return d, ok
}

// Translate resolves a key into an intent
func Translate(k Key) Intent {
	if k == KeyQuit {
		return Intent{Type: IntentQuit}
	}
	if d, ok := DirectionFor(k); ok {
		return Intent{Type: IntentSteer, Direction: d}
	}
	return Intent{}
}

// Apply routes an intent to the controller. Returns false when the intent asks to quit
func Apply(c *engine.Controller, in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false
	case IntentSteer:
		c.Steer(in.Direction)
	}
	return true
}

// ApplyKeys translates and applies keys in order, stopping at the first quit.
// Frontends pass keys pressed in the same frame in a fixed order so that
// combined presses resolve the same way every time
func ApplyKeys(c *engine.Controller, keys []Key) bool {
	for _, k := range keys {
		if !Apply(c, Translate(k)) {
			return false
		}
	}
	return true
}
