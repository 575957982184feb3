package engine

import "testing"

// TestDirectionOpposite verifies each heading reverses and back
func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opp Direction
		dx, dy int
	}{
		{DirectionRight, DirectionLeft, 1, 0},
		{DirectionLeft, DirectionRight, -1, 0},
		{DirectionUp, DirectionDown, 0, -1},
		{DirectionDown, DirectionUp, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Opposite(); got != tt.opp {
				t.Errorf("Expected opposite %v, got %v", tt.opp, got)
			}
			if tt.d.Opposite().Opposite() != tt.d {
				t.Error("Opposite is not an involution")
			}
			if dx, dy := tt.d.Delta(); dx != tt.dx || dy != tt.dy {
				t.Errorf("Expected delta (%d,%d), got (%d,%d)", tt.dx, tt.dy, dx, dy)
			}
		})
	}
}

// TestDirectionInvalid verifies out-of-range values are rejected
func TestDirectionInvalid(t *testing.T) {
	d := Direction(9)
	if d.Valid() {
		t.Error("Direction(9) reported valid")
	}
	if d.String() != "Unknown" {
		t.Errorf("Unexpected name %q", d.String())
	}
	if dx, dy := d.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Expected zero delta, got (%d,%d)", dx, dy)
	}
}
