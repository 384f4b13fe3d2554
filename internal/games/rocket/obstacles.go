package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// Kind identifies the obstacle type.
type Kind int

const (
	KindAsteroid Kind = iota
	KindLaser
	KindEnemy
)

// String returns the obstacle kind name.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindLaser:
		return "laser"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard crossing the surface horizontally.
type Obstacle struct {
	Kind   Kind
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Pixels per tick; positive moves right
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Generator creates obstacles at the surface edges.
type Generator struct {
	rng       *rand.Rand
	cfg       config.RocketObstacles
	reference float64
}

// NewGenerator creates a generator drawing from rng.
// referenceW is the surface width at which obstacle speeds are unscaled.
func NewGenerator(rng *rand.Rand, cfg config.RocketObstacles, referenceW float64) *Generator {
	return &Generator{
		rng:       rng,
		cfg:       cfg,
		reference: referenceW,
	}
}

// Spawn creates one obstacle for a w x h surface.
// Left-spawned obstacles start at x=0 and move right; right-spawned ones start
// at x=w and move left.
func (g *Generator) Spawn(w, h float64) Obstacle {
	x, sign := 0.0, 1.0
	if g.rng.Float64() >= 0.5 {
		x, sign = w, -1.0
	}

	var o Obstacle
	switch r := g.rng.Float64(); {
	case r < g.cfg.AsteroidThreshold:
		side := float64(g.cfg.AsteroidMinSize + g.rng.Intn(g.cfg.AsteroidSizeRange))
		o = Obstacle{Kind: KindAsteroid, Width: side, Height: side}
	case r < g.cfg.LaserThreshold:
		o = Obstacle{Kind: KindLaser, Width: w / g.cfg.LaserWidthDivisor, Height: g.cfg.LaserHeight}
	default:
		o = Obstacle{Kind: KindEnemy, Width: w / g.cfg.EnemyWidthDivisor, Height: h / g.cfg.EnemyHeightDivisor}
	}

	o.X = x
	o.Y = g.cfg.Margin + g.rng.Float64()*math.Max(h-2*g.cfg.Margin, 0)
	o.Speed = (g.cfg.MinSpeed + g.rng.Float64()*g.cfg.SpeedRange) * w / g.reference * sign
	return o
}

// AdvanceObstacles moves each obstacle by its speed and drops the ones that
// are fully outside [0, w). The slice is filtered in place.
func AdvanceObstacles(obs []Obstacle, w float64) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		o.X += o.Speed
		if o.X+o.Width > 0 && o.X < w {
			kept = append(kept, o)
		}
	}
	return kept
}
