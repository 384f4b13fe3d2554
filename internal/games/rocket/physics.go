// Package rocket implements Retro Rocket: a craft rises on thrust and falls
// under gravity while asteroids, lasers and enemies cross the screen from both
// sides. Touching the ground, the ceiling or any obstacle ends the run.
package rocket

import (
	"github.com/vovakirdan/retro-rocket/internal/config"
)

// Craft is the player-controlled rocket. Its horizontal position is fixed at
// the surface center; only the vertical axis is simulated.
type Craft struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive = downward
}

// Physics holds per-tick accelerations scaled to the current surface height.
type Physics struct {
	Gravity float64
	Thrust  float64
}

// NewPhysics scales the configured accelerations by surfaceH / reference height.
func NewPhysics(cfg config.RocketPhysics, referenceH float64, surfaceH int) Physics {
	k := float64(surfaceH) / referenceH
	return Physics{
		Gravity: cfg.Gravity * k,
		Thrust:  cfg.Thrust * k,
	}
}

// Integrate advances the craft by one tick.
//
// Accelerations are added once per tick, not scaled by frame time, so the
// feel of the game depends on the host refresh rate.
// Position and velocity are never clamped here; boundaries are the loop's job.
func Integrate(c *Craft, p Physics, thrusting bool) {
	c.Velocity += p.Gravity
	if thrusting {
		c.Velocity += p.Thrust
	}
	c.Y += c.Velocity
}
