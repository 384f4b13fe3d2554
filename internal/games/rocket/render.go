package rocket

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// Renderer paints a RunState into a surface using whole-pixel fills only.
// Its random source drives the flickering flame and asteroid textures and is
// kept separate from the simulation RNG so drawing never alters gameplay.
type Renderer struct {
	rng    *rand.Rand
	cfg    config.RocketRender
	ground config.RocketGround
}

// NewRenderer creates a renderer drawing texture noise from rng.
func NewRenderer(rng *rand.Rand, cfg config.RocketRender, ground config.RocketGround) *Renderer {
	return &Renderer{rng: rng, cfg: cfg, ground: ground}
}

// Draw renders the full scene. Order: background, stars, obstacles, craft, ground.
func (r *Renderer) Draw(dst *core.Surface, st *RunState, g Geometry) {
	dst.Clear(core.ColorBlack)

	for _, s := range st.Stars {
		pixel(dst, s.X, s.Y, 1, core.ColorStar)
	}

	for _, o := range st.Obstacles {
		r.drawObstacle(dst, o)
	}

	r.drawCraft(dst, g.CenterX(), st.Craft.Y, g.Scale, st.Thrusting)
	r.drawGround(dst, g)
}

// pixel fills a size x size square whose top-left corner is (x, y) floored.
func pixel(dst *core.Surface, x, y float64, size int, c color.RGBA) {
	dst.FillRect(int(math.Floor(x)), int(math.Floor(y)), size, size, c)
}

// drawCraft draws the rocket sprite with its top-center at (x, y).
func (r *Renderer) drawCraft(dst *core.Surface, x, y, s float64, thrusting bool) {
	left := x - 5*s

	// Body
	for i := 0.0; i < 10*s; i++ {
		for j := 0.0; j < 20*s; j++ {
			pixel(dst, left+i, y+j, 1, core.ColorHull)
		}
	}

	// Nose
	for i := 0.0; i < 10*s; i++ {
		for j := 0.0; j < 5*s; j++ {
			if i+2*j >= 4*s && i-2*j <= 5*s {
				pixel(dst, left+i, y+j, 1, core.ColorNose)
			}
		}
	}

	// Window
	for i := -2 * s; i <= 2*s; i++ {
		for j := -2 * s; j <= 2*s; j++ {
			if i*i+j*j <= 4*s*s {
				pixel(dst, x+i, y+8*s+j, 1, core.ColorWindow)
			}
		}
	}

	// Fins
	for i := 0.0; i < 4*s; i++ {
		pixel(dst, x-6*s+i, y+17*s+i, 1, core.ColorFin)
		pixel(dst, x+5*s-i, y+17*s+i, 1, core.ColorFin)
	}

	if !thrusting {
		return
	}

	// Flame
	for i := 0.0; i < 8*s; i++ {
		for j := 0.0; j < 5*s; j++ {
			if r.rng.Float64() < r.cfg.FlameFill {
				pixel(dst, x-4*s+i, y+20*s+j, 1, core.ColorFlame)
			}
		}
	}
}

func (r *Renderer) drawObstacle(dst *core.Surface, o Obstacle) {
	switch o.Kind {
	case KindAsteroid:
		for i := 0.0; i < o.Width; i++ {
			for j := 0.0; j < o.Height; j++ {
				if r.rng.Float64() < r.cfg.AsteroidFill {
					pixel(dst, o.X+i, o.Y+j, 1, core.ColorAsteroid)
				}
			}
		}
	case KindLaser:
		for i := 0.0; i < o.Width; i++ {
			pixel(dst, o.X+i, o.Y, 1, core.ColorLaser)
			pixel(dst, o.X+i, o.Y+1, 1, core.ColorLaser)
		}
	case KindEnemy:
		for i := 0.0; i < o.Width; i++ {
			for j := 0.0; j < o.Height; j++ {
				pixel(dst, o.X+i, o.Y+j, 1, core.ColorEnemy)
			}
		}
		for i := -1.0; i <= 1; i++ {
			for j := -1.0; j <= 1; j++ {
				pixel(dst, o.X+o.Width/2+i, o.Y+o.Height/4+j, 1, core.ColorEnemyWindow)
			}
		}
	}
}

func (r *Renderer) drawGround(dst *core.Surface, g Geometry) {
	y := int(g.GroundY)
	for x := 0; x < int(g.Width); x += r.ground.MarkSpacing {
		dst.FillRect(x, y, r.ground.MarkSize, r.ground.MarkSize, core.ColorGround)
	}
}
