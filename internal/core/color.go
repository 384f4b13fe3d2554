package core

import "image/color"

// Palette colors for the retro sprites. All fills are fully opaque.
var (
	ColorBlack       = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	ColorStar        = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ColorHull        = color.RGBA{0x8B, 0x8B, 0x8B, 0xFF}
	ColorNose        = color.RGBA{0xFF, 0x63, 0x47, 0xFF}
	ColorWindow      = color.RGBA{0x87, 0xCE, 0xEB, 0xFF}
	ColorFin         = color.RGBA{0x41, 0x69, 0xE1, 0xFF}
	ColorFlame       = color.RGBA{0xFF, 0xA5, 0x00, 0xFF}
	ColorAsteroid    = color.RGBA{0x8B, 0x45, 0x13, 0xFF}
	ColorLaser       = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	ColorEnemy       = color.RGBA{0x00, 0x80, 0x00, 0xFF}
	ColorEnemyWindow = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	ColorGround      = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
)

// Luma returns the approximate perceived brightness of c (0-255 scale * 1000).
func Luma(c color.RGBA) int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}
