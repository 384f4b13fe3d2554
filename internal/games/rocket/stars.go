package rocket

import (
	"math/rand"

	"github.com/vovakirdan/retro-rocket/internal/config"
)

// Star is a background point drifting down the surface.
type Star struct {
	X, Y  float64
	Speed float64 // Pixels per tick
}

// NewStars scatters count stars uniformly over a w x h surface.
func NewStars(rng *rand.Rand, cfg config.RocketStars, w, h float64) []Star {
	stars := make([]Star, cfg.Count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Speed: cfg.MinSpeed + rng.Float64()*cfg.SpeedRange,
		}
	}
	return stars
}

// AdvanceStars moves every star down by its speed, faster while thrusting.
// A star that falls past the bottom edge is recycled at the top with a new
// random x; the slice length never changes.
func AdvanceStars(stars []Star, rng *rand.Rand, cfg config.RocketStars, w, h float64, thrusting bool) {
	mult := 1.0
	if thrusting {
		mult = cfg.ThrustMultiplier
	}
	for i := range stars {
		stars[i].Y += stars[i].Speed * mult
		if stars[i].Y > h {
			stars[i].Y = 0
			stars[i].X = rng.Float64() * w
		}
	}
}
