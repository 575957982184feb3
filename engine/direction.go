package engine

// Direction is the heading of the snake head
type Direction uint8

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionUp
	DirectionDown
	directionCount
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "Right"
	case DirectionLeft:
		return "Left"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d < directionCount
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return d
	}
}

// Delta returns the unit step for the heading in screen coordinates (Up decreases Y)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionRight:
		return 1, 0
	case DirectionLeft:
		return -1, 0
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	default:
		return 0, 0
	}
}
