package input

import "github.com/lixenwraith/snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone  IntentType = iota
	IntentSteer            // Arrow keys
	IntentQuit             // Esc, Ctrl+C, q, window close
)

// Intent is the frontend-neutral result of a key press
type Intent struct {
	Type      IntentType
	Direction engine.Direction // Valid when Type == IntentSteer
}
