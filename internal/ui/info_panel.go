// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/config"
)

const (
	panelHeight    = 90
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 200
)

// InfoPanel slides up from the bottom of the playfield while something is
// selected.
type InfoPanel struct {
	Width     int
	IsVisible bool
	currentY  float64
	targetY   float64
	lines     []string
}

func NewInfoPanel(width int) *InfoPanel {
	return &InfoPanel{
		Width:    width,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// Update moves the panel towards its target position and refreshes its text
// from the snapshot selection.
func (p *InfoPanel) Update(sel app.SelectionView) {
	p.lines = SelectionLines(sel)
	if len(p.lines) > 0 {
		p.IsVisible = true
		p.targetY = config.ScreenHeight - panelHeight
	} else {
		p.targetY = config.ScreenHeight
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
}

// Contains reports whether (x, y) is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && x < p.Width && float64(y) >= p.currentY
}

// SelectionLines describes the selected entity, two columns per line joined
// by a tab.
func SelectionLines(sel app.SelectionView) []string {
	switch {
	case sel.Tower != nil:
		t := sel.Tower
		lines := []string{
			fmt.Sprintf("%s  level %d/%d", t.Name, t.Level, t.MaxLevel),
			fmt.Sprintf("Damage: %.0f\tRange: %.0f", t.Damage, t.Range),
			fmt.Sprintf("Fire every %d ticks\tSell for $%d", t.FireRate, t.Worth),
		}
		if t.Splash > 0 {
			lines = append(lines, fmt.Sprintf("Splash: %.0f", t.Splash))
		}
		return lines
	case sel.Creep != nil:
		c := sel.Creep
		status := ""
		if c.Slowed {
			status = "\tSlowed"
		}
		return []string{
			fmt.Sprintf("%s  level %d", c.Name, c.Level),
			fmt.Sprintf("Health: %.0f / %.0f\tSpeed: %.2f", c.HP, c.MaxHP, c.Speed),
			fmt.Sprintf("Worth: $%d%s", c.Worth, status),
		}
	}
	return nil
}

func (p *InfoPanel) Draw(screen *ebiten.Image, face font.Face) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		p.Width-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 20, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.DialogBorderColor, true)

	y := panelRect.Min.Y + 20
	for _, line := range p.lines {
		x := panelRect.Min.X + 15
		for _, col := range strings.Split(line, "\t") {
			text.Draw(screen, col, face, x, y, config.MenuTextColor)
			x += columnSpacing
		}
		y += lineHeight
	}
}
