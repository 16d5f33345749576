// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
)

// WaveIndicator shows the wave number in roman numerals and the countdown
// to the next wave.
type WaveIndicator struct {
	X, Y int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Lines returns the indicator text for a snapshot.
func (i *WaveIndicator) Lines(s *app.Snapshot) []string {
	if s.TotalWaves == 0 {
		return []string{"No waves"}
	}
	lines := []string{fmt.Sprintf("Wave %s of %s", toRoman(s.Wave), toRoman(s.TotalWaves))}
	switch s.WaveStage {
	case component.WaveIdle:
		secs := (s.NextWaveIn + config.TicksPerSecond - 1) / config.TicksPerSecond
		lines = append(lines, fmt.Sprintf("Next wave in %ds", secs))
	case component.WaveSpawning:
		lines = append(lines, "Incoming")
	case component.WaveDraining:
		lines = append(lines, "Clearing")
	case component.WavesComplete:
		lines = append(lines, "All waves done")
	}
	return lines
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, s *app.Snapshot, clr color.Color) {
	for n, line := range i.Lines(s) {
		text.Draw(screen, line, face, i.X, i.Y+n*config.TextHeight, clr)
	}
}
