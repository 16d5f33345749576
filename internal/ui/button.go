// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Enabled    bool
	Active     bool // drawn highlighted, e.g. the chosen tower
}

// NewButton creates an enabled button.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{191, 205, 184, 255},
		BgColor:    color.RGBA{40, 52, 34, 255},
		HoverColor: color.RGBA{70, 88, 60, 255},
		Enabled:    true,
	}
}

// Contains reports whether (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports a click on an enabled button.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Enabled && (b.Active || b.Contains(cursorX, cursorY)) {
		bg = b.HoverColor
	}
	fg := b.TextColor
	if !b.Enabled {
		fg.A = 96
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, fg, false)
	DrawCentered(screen, b.Text, face, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), fg)
}
