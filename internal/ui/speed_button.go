// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"
)

// SpeedSteps are the tick multipliers the speed button cycles through.
var SpeedSteps = []int{1, 2, 4}

// SpeedButton runs the simulation several ticks per frame.
type SpeedButton struct {
	*Button
	current int
}

func NewSpeedButton(rect image.Rectangle) *SpeedButton {
	b := &SpeedButton{Button: NewButton(rect, "")}
	b.refresh()
	return b
}

// Multiplier is the number of ticks to run per frame.
func (b *SpeedButton) Multiplier() int {
	return SpeedSteps[b.current]
}

// Toggle advances to the next speed, wrapping around.
func (b *SpeedButton) Toggle() {
	b.current = (b.current + 1) % len(SpeedSteps)
	b.refresh()
}

func (b *SpeedButton) refresh() {
	b.Text = fmt.Sprintf("Speed x%d (F)", b.Multiplier())
}
