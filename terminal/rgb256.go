package terminal

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

var (
	palette256     [240]colorful.Color
	palette256Once sync.Once
)

// buildPalette256 materializes the color-cube and grayscale entries
// (indices 16-255) for nearest-match lookup.
func buildPalette256() {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				idx := 36*r + 6*g + b
				palette256[idx] = colorful.Color{
					R: float64(cubeLevels[r]) / 255,
					G: float64(cubeLevels[g]) / 255,
					B: float64(cubeLevels[b]) / 255,
				}
			}
		}
	}
	for i := 0; i < 24; i++ {
		level := float64(8+10*i) / 255
		palette256[216+i] = colorful.Color{R: level, G: level, B: level}
	}
}

// RGBTo256 returns the xterm 256-palette index nearest to the given
// 24-bit value, by perceptual (Lab) distance. The 16 base colors are
// skipped since their values vary between terminals.
func RGBTo256(r, g, b uint8) uint8 {
	palette256Once.Do(buildPalette256)

	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := 0
	bestDist := c.DistanceLab(palette256[0])
	for i := 1; i < len(palette256); i++ {
		d := c.DistanceLab(palette256[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(16 + best)
}
