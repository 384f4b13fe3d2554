package rocket

import (
	"math/rand"

	"github.com/vovakirdan/retro-rocket/internal/config"
)

// RunState is everything one play session mutates. A restart replaces it
// wholesale rather than resetting fields in place.
type RunState struct {
	Craft      Craft
	Stars      []Star
	Obstacles  []Obstacle
	Score      float64 // Seconds survived
	SpawnTimer float64 // Seconds since the last spawn
	Ticks      int
	Thrusting  bool // Input read at the start of the latest tick
	Over       bool
}

// NewRunState creates a fresh run: craft centered vertically at rest, a new
// star field, no obstacles and zeroed timers.
func NewRunState(rng *rand.Rand, cfg config.RocketConfig, g Geometry) *RunState {
	return &RunState{
		Craft:     Craft{Y: g.Height / 2},
		Stars:     NewStars(rng, cfg.Stars, g.Width, g.Height),
		Obstacles: make([]Obstacle, 0, 8),
	}
}
