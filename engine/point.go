package engine

// Point is a position on the board in logical units
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
