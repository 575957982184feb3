package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandSource draws uniform integers in [0, n)
type RandSource interface {
	Intn(n int) int
}

// NewRandSource returns a seeded generator for ball placement
func NewRandSource(seed uint64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed keeps a non-zero seed and derives one from now otherwise
func ResolveSeed(seed uint64, now time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(now.UnixNano())
}
