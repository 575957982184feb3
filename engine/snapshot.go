package engine

// Snapshot is a read-only copy of the board for rendering
type Snapshot struct {
	Segments  []Point // head first, Dots entries
	Ball      Point
	Score     int
	Status    Status
	Direction Direction
	Dots      int
	Tick      uint64
}

// Snapshot copies the visible board state
func (b *Board) Snapshot() Snapshot {
	segments := make([]Point, b.dots)
	copy(segments, b.segments[:b.dots])

	return Snapshot{
		Segments:  segments,
		Ball:      b.ball,
		Score:     b.score,
		Status:    b.status,
		Direction: b.direction,
		Dots:      b.dots,
		Tick:      b.tick,
	}
}

// Head returns the head position, or the zero point for an empty snapshot
func (s Snapshot) Head() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[0]
}

// Over reports whether the snapshot was taken after the game ended
func (s Snapshot) Over() bool {
	return s.Status == StatusOver
}
