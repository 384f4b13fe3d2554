package rocket

import (
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

func defaultGeometry(w, h int) Geometry {
	return NewGeometry(config.DefaultRocketConfig(), w, h)
}

func TestCraftRect(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want core.Rect
	}{
		{"reference surface", 600, 800, core.NewRect(295, 100, 10, 20)},
		{"half-width surface", 300, 800, core.NewRect(147.5, 100, 5, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := defaultGeometry(tc.w, tc.h).CraftRect(Craft{Y: 100})
			if got != tc.want {
				t.Errorf("CraftRect() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	g := defaultGeometry(600, 800)
	craft := Craft{Y: 400} // Box spans x [295, 305), y [400, 420)

	tests := []struct {
		name     string
		o        Obstacle
		expected bool
	}{
		{"craft contains obstacle", Obstacle{X: 298, Y: 405, Width: 2, Height: 2}, true},
		{"obstacle contains craft", Obstacle{X: 200, Y: 300, Width: 200, Height: 200}, true},
		{"laser through craft", Obstacle{X: 250, Y: 410, Width: 60, Height: 2}, true},
		{"gap to the left", Obstacle{X: 280, Y: 405, Width: 14.9, Height: 5}, false},
		{"gap to the right", Obstacle{X: 305.1, Y: 405, Width: 10, Height: 5}, false},
		{"gap above", Obstacle{X: 295, Y: 380, Width: 10, Height: 19.5}, false},
		{"gap below", Obstacle{X: 295, Y: 420.5, Width: 10, Height: 10}, false},
		{"touching right edge", Obstacle{X: 305, Y: 405, Width: 10, Height: 5}, false},
		{"touching bottom edge", Obstacle{X: 295, Y: 420, Width: 10, Height: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(craft, tc.o, g); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			// Symmetry: swapping which box is tested first gives the same answer
			if got := tc.o.Rect().Intersects(g.CraftRect(craft)); got != tc.expected {
				t.Errorf("Reversed intersection = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesAny(t *testing.T) {
	g := defaultGeometry(600, 800)
	craft := Craft{Y: 400}

	miss := Obstacle{X: 10, Y: 10, Width: 5, Height: 5}
	hit := Obstacle{X: 299, Y: 401, Width: 2, Height: 2}

	if CollidesAny(craft, nil, g) {
		t.Error("No obstacles should mean no collision")
	}
	if CollidesAny(craft, []Obstacle{miss, miss}, g) {
		t.Error("Disjoint obstacles should not collide")
	}
	if !CollidesAny(craft, []Obstacle{miss, miss, hit}, g) {
		t.Error("Last obstacle should still be checked")
	}
}

func TestBoundaries(t *testing.T) {
	g := defaultGeometry(600, 800) // Ground row 796, craft height 20

	tests := []struct {
		name    string
		y       float64
		ground  bool
		ceiling bool
	}{
		{"middle", 400, false, false},
		{"just above ground", 775.9, false, false},
		{"bottom reaches ground", 776, true, false},
		{"below ground", 790, true, false},
		{"at top", 0, false, false},
		{"above top", -0.01, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Craft{Y: tc.y}
			if got := g.HitsGround(c); got != tc.ground {
				t.Errorf("HitsGround() = %v, expected %v", got, tc.ground)
			}
			if got := g.HitsCeiling(c); got != tc.ceiling {
				t.Errorf("HitsCeiling() = %v, expected %v", got, tc.ceiling)
			}
			if got := g.OutOfBounds(c); got != (tc.ground || tc.ceiling) {
				t.Errorf("OutOfBounds() = %v", got)
			}
		})
	}
}
