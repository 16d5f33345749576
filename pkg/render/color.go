// pkg/render/color.go
package render

import (
	"image/color"

	"go-creep-defense/pkg/utils"
)

// MapColors holds the colours of the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	BuildableColor  color.RGBA
	PlainColor      color.RGBA
	RoadColor       color.RGBA
	SpawnColor      color.RGBA
	ExitColor       color.RGBA
	GridLineColor   color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// HealthColor fades from green at full health to red at zero.
func HealthColor(fraction float64) color.RGBA {
	fraction = utils.Clamp(fraction, 0, 1)
	return color.RGBA{
		R: uint8(220 * (1 - fraction)),
		G: uint8(40 + 160*fraction),
		B: 40,
		A: 255,
	}
}
