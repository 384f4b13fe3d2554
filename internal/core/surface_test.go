package core

import "testing"

func TestNewSurface(t *testing.T) {
	s := NewSurface(60, 80)

	if s.Width() != 60 {
		t.Errorf("Width() = %d, expected 60", s.Width())
	}
	if s.Height() != 80 {
		t.Errorf("Height() = %d, expected 80", s.Height())
	}
	if got := s.Count(ColorBlack); got != 60*80 {
		t.Errorf("New surface should be black, got %d black pixels", got)
	}
	if len(s.Pix()) != 60*80*4 {
		t.Errorf("Pix() length = %d, expected %d", len(s.Pix()), 60*80*4)
	}
}

func TestNewSurfaceInvalid(t *testing.T) {
	if s := NewSurface(0, 10); s != nil {
		t.Error("Zero width should not produce a surface")
	}
	if s := NewSurface(10, -1); s != nil {
		t.Error("Negative height should not produce a surface")
	}

	var s *Surface
	if s.Valid() {
		t.Error("Nil surface should not be valid")
	}
}

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(10, 10)

	s.Set(5, 5, ColorStar)
	if s.At(5, 5) != ColorStar {
		t.Errorf("At(5, 5) = %v, expected star color", s.At(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorStar)
	s.Set(100, 0, ColorStar)
	s.Set(0, -1, ColorStar)
	s.Set(0, 100, ColorStar)

	if s.Count(ColorStar) != 1 {
		t.Errorf("Expected exactly 1 lit pixel, got %d", s.Count(ColorStar))
	}
	if s.At(-1, 0) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(2, 3, 4, 2, ColorLaser)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			if got := s.At(x, y) == ColorLaser; got != inside {
				t.Errorf("FillRect: pixel (%d, %d) lit=%v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestSurfaceFillRectClipped(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(-3, 8, 5, 5, ColorGround)

	// Only x in [0,2), y in [8,10) is on the surface
	if got := s.Count(ColorGround); got != 4 {
		t.Errorf("Clipped FillRect lit %d pixels, expected 4", got)
	}

	s.FillRect(20, 20, 5, 5, ColorGround)
	if got := s.Count(ColorGround); got != 4 {
		t.Errorf("Off-surface FillRect should draw nothing, count = %d", got)
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(8, 8)
	s.FillRect(0, 0, 8, 8, ColorEnemy)
	s.Clear(ColorBlack)

	if got := s.Count(ColorBlack); got != 64 {
		t.Errorf("After Clear, expected 64 black pixels, got %d", got)
	}
}
