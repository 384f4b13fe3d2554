package core

import (
	"image"
	"image/color"
)

// Surface is a 2D RGBA pixel buffer for rendering game graphics.
// It decouples game rendering from the host, allowing games to draw using
// integer-pixel rectangle fills while the platform handles actual display.
type Surface struct {
	width  int
	height int
	img    *image.RGBA
}

// NewSurface creates a new surface with the given pixel dimensions.
// Returns nil if either dimension is not positive.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	s := &Surface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	s.Clear(ColorBlack)
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Valid reports whether the surface can be drawn into.
func (s *Surface) Valid() bool {
	return s != nil && s.img != nil && s.width > 0 && s.height > 0
}

// Clear fills the entire surface with c.
func (s *Surface) Clear(c color.RGBA) {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Set colors a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// At returns the pixel color at the given position.
// Returns black for out-of-bounds coordinates.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.img.RGBAAt(x, y)
}

// FillRect fills the w x h rectangle at (x, y) with c, clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := Clamp(x, 0, s.width), Clamp(y, 0, s.height)
	x1, y1 := Clamp(x+w, 0, s.width), Clamp(y+h, 0, s.height)
	for py := y0; py < y1; py++ {
		off := s.img.PixOffset(x0, py)
		for px := x0; px < x1; px++ {
			s.img.Pix[off] = c.R
			s.img.Pix[off+1] = c.G
			s.img.Pix[off+2] = c.B
			s.img.Pix[off+3] = c.A
			off += 4
		}
	}
}

// Count returns how many pixels currently hold exactly c.
func (s *Surface) Count(c color.RGBA) int {
	n := 0
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] == c.R && pix[i+1] == c.G && pix[i+2] == c.B && pix[i+3] == c.A {
			n++
		}
	}
	return n
}

// Image exposes the underlying buffer for encoders and GPU uploads.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pix returns the raw RGBA bytes, row-major with no padding.
func (s *Surface) Pix() []byte {
	return s.img.Pix
}
