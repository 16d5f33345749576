// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator shows the remaining lives as a grid of circles.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// LifeCell returns the column and row of the i-th circle.
func LifeCell(i int) (col, row int) {
	return i % HealthCols, i / HealthCols
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, lives, maxLives int, clr color.RGBA) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	text.Draw(screen, "Lives "+strconv.Itoa(lives)+"/"+strconv.Itoa(maxLives), face, int(i.X), int(i.Y), clr)
	for j := 0; j < maxLives; j++ {
		col, row := LifeCell(j)
		cx := i.X + HealthCircleRadius + float32(col)*step
		cy := i.Y + 8 + HealthCircleRadius + float32(row)*step
		fill := color.RGBA{30, 30, 30, 255}
		if j < lives {
			fill = color.RGBA{200, 60, 60, 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, clr, true)
	}
}

// Height is the vertical space the indicator needs for maxLives circles.
func (i *PlayerHealthIndicator) Height(maxLives int) float32 {
	rows := (maxLives + HealthCols - 1) / HealthCols
	return 8 + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
