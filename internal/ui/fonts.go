// internal/ui/fonts.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face used by every widget.
var DefaultFace font.Face = basicfont.Face7x13

// DrawCentered draws s centred in the box at (x, y) of size w x h.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, x, y, w, h int, clr color.Color) {
	b := text.BoundString(face, s)
	tx := x + (w-b.Dx())/2
	ty := y + (h-b.Dy())/2 - b.Min.Y
	text.Draw(screen, s, face, tx, ty, clr)
}
