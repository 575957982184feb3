// Package status keeps session counters fed by board events
package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/snake/engine"
)

// Metric keys
const (
	KeyBallsEaten = "balls_eaten"
	KeyGameOvers  = "game_overs"
	KeyScore      = "score"
	KeyDots       = "dots"
	KeyLastTick   = "last_tick"
)

// Registry holds integer session metrics
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{Ints: NewMetricMap[atomic.Int64]()}
}

// Value returns the current value of key, zero when unset
func (r *Registry) Value(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Summary renders all metrics as key=value pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	return strings.Join(parts, " ")
}

// HandleEvent updates counters from a board event
func (r *Registry) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventBallEaten:
		r.Ints.Get(KeyBallsEaten).Add(1)
	case engine.EventGameOver:
		r.Ints.Get(KeyGameOvers).Add(1)
	}
	r.Ints.Get(KeyScore).Store(int64(ev.Score))
	r.Ints.Get(KeyDots).Store(int64(ev.Dots))
	r.Ints.Get(KeyLastTick).Store(int64(ev.Tick))
}

// EventTypes returns the events the registry counts
func (r *Registry) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventBallEaten, engine.EventGameOver}
}
