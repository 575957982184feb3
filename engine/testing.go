package engine

// FixedRand replays a fixed sequence of draws, wrapping around.
// Values are reduced modulo n so any sequence is valid for any bound
type FixedRand struct {
	Values []int
	pos    int
}

// NewFixedRand creates a replaying source
func NewFixedRand(values ...int) *FixedRand {
	return &FixedRand{Values: values}
}

// Intn returns the next value modulo n
func (f *FixedRand) Intn(n int) int {
	if len(f.Values) == 0 || n <= 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
