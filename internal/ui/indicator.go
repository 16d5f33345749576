// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-creep-defense/internal/component"
)

// StateIndicator is a circle showing the run phase. It pulses briefly when
// clicked.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor maps a run phase to the indicator colour.
func PhaseColor(p component.RunPhase, won bool) color.RGBA {
	switch p {
	case component.NotStarted:
		return color.RGBA{240, 200, 40, 255}
	case component.Running:
		return color.RGBA{80, 180, 80, 255}
	}
	if won {
		return color.RGBA{80, 150, 220, 255}
	}
	return color.RGBA{200, 60, 60, 255}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked reports whether (x, y) is inside the indicator.
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
