package rocket

import (
	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// Geometry holds the surface-derived measurements shared by the simulation
// and the renderer.
type Geometry struct {
	Width   float64 // Surface width
	Height  float64 // Surface height
	Scale   float64 // Width / reference width
	BodyW   float64 // Craft body width in surface pixels
	BodyH   float64 // Craft body height in surface pixels
	GroundY float64 // Row the ground line is drawn on
}

// NewGeometry derives the geometry for a w x h surface.
func NewGeometry(cfg config.RocketConfig, w, h int) Geometry {
	scale := float64(w) / cfg.Surface.ReferenceWidth
	return Geometry{
		Width:   float64(w),
		Height:  float64(h),
		Scale:   scale,
		BodyW:   cfg.Craft.BodyWidth * scale,
		BodyH:   cfg.Craft.BodyHeight * scale,
		GroundY: float64(h - cfg.Ground.Offset),
	}
}

// CenterX returns the craft's fixed horizontal center.
func (g Geometry) CenterX() float64 {
	return g.Width / 2
}

// CraftRect returns the craft's collision rectangle.
func (g Geometry) CraftRect(c Craft) core.Rect {
	return core.NewRect(g.CenterX()-g.BodyW/2, c.Y, g.BodyW, g.BodyH)
}

// Collides reports whether the craft overlaps the obstacle.
func Collides(c Craft, o Obstacle, g Geometry) bool {
	return g.CraftRect(c).Intersects(o.Rect())
}

// CollidesAny checks obstacles in order and stops at the first hit.
func CollidesAny(c Craft, obs []Obstacle, g Geometry) bool {
	craft := g.CraftRect(c)
	for _, o := range obs {
		if craft.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// HitsGround reports whether the craft's bottom edge has reached the ground.
func (g Geometry) HitsGround(c Craft) bool {
	return c.Y+g.BodyH >= g.GroundY
}

// HitsCeiling reports whether the craft has left the top of the surface.
func (g Geometry) HitsCeiling(c Craft) bool {
	return c.Y < 0
}

// OutOfBounds reports whether either boundary ends the run.
func (g Geometry) OutOfBounds(c Craft) bool {
	return g.HitsGround(c) || g.HitsCeiling(c)
}
