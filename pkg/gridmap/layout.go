// pkg/gridmap/layout.go
package gridmap

import (
	"math"

	"go-creep-defense/pkg/utils"
)

// Layout maps grid cells onto a playfield of Width x Height pixels.
type Layout struct {
	Width, Height         float64
	CellWidth, CellHeight float64
}

// NewLayout stretches g over a width x height playfield.
func NewLayout(g *Grid, width, height float64) Layout {
	return Layout{
		Width:      width,
		Height:     height,
		CellWidth:  width / float64(g.Width),
		CellHeight: height / float64(g.Height),
	}
}

// CellOrigin returns the top-left corner of c.
func (l Layout) CellOrigin(c Cell) utils.Point {
	return utils.Point{X: float64(c.X) * l.CellWidth, Y: float64(c.Y) * l.CellHeight}
}

// CellCenter returns the centre of c.
func (l Layout) CellCenter(c Cell) utils.Point {
	return utils.Point{X: (float64(c.X) + 0.5) * l.CellWidth, Y: (float64(c.Y) + 0.5) * l.CellHeight}
}

// CellAt returns the cell containing p. The result may lie outside the grid.
func (l Layout) CellAt(p utils.Point) Cell {
	return Cell{X: int(math.Floor(p.X / l.CellWidth)), Y: int(math.Floor(p.Y / l.CellHeight))}
}

// InBounds reports whether p is on the playfield (edges included).
func (l Layout) InBounds(p utils.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= l.Width && p.Y <= l.Height
}

// InCell reports whether p lies inside the axis-aligned bounds of c.
func (l Layout) InCell(p utils.Point, c Cell) bool {
	o := l.CellOrigin(c)
	return p.X >= o.X && p.X < o.X+l.CellWidth && p.Y >= o.Y && p.Y < o.Y+l.CellHeight
}
