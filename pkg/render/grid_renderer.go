// pkg/render/grid_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-creep-defense/internal/app"
	"go-creep-defense/pkg/gridmap"
	"go-creep-defense/pkg/utils"
)

// GridRenderer draws the playfield: the map once into a cached image, then
// towers, creeps and projectiles from a snapshot every frame.
type GridRenderer struct {
	grid     *gridmap.Grid
	layout   gridmap.Layout
	colors   *MapColors
	exits    []gridmap.Cell
	mapImage *ebiten.Image
}

func NewGridRenderer(grid *gridmap.Grid, paths []gridmap.Path, layout gridmap.Layout, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		layout:   layout,
		colors:   colors,
		mapImage: ebiten.NewImage(int(math.Ceil(layout.Width)), int(math.Ceil(layout.Height))),
	}
	for _, p := range paths {
		r.exits = append(r.exits, p.Exit())
	}
	r.RenderMapImage()
	return r
}

// CellColor is the background colour of one cell type.
func (r *GridRenderer) CellColor(t gridmap.CellType) color.RGBA {
	switch t {
	case gridmap.Road:
		return r.colors.RoadColor
	case gridmap.Spawn:
		return r.colors.SpawnColor
	case gridmap.Plain:
		return r.colors.PlainColor
	default:
		return r.colors.BuildableColor
	}
}

// RenderMapImage redraws the cached background.
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			c := gridmap.Cell{X: x, Y: y}
			r.fillCell(r.mapImage, c, r.CellColor(r.grid.At(c)))
		}
	}
	for _, exit := range r.exits {
		r.fillCell(r.mapImage, exit, r.colors.ExitColor)
	}
	for x := 0; x <= r.grid.Width; x++ {
		px := float32(float64(x) * r.layout.CellWidth)
		vector.StrokeLine(r.mapImage, px, 0, px, float32(r.layout.Height), r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
	for y := 0; y <= r.grid.Height; y++ {
		py := float32(float64(y) * r.layout.CellHeight)
		vector.StrokeLine(r.mapImage, 0, py, float32(r.layout.Width), py, r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
}

func (r *GridRenderer) fillCell(dst *ebiten.Image, c gridmap.Cell, clr color.Color) {
	o := r.layout.CellOrigin(c)
	vector.DrawFilledRect(dst, float32(o.X), float32(o.Y), float32(r.layout.CellWidth), float32(r.layout.CellHeight), clr, false)
}

// HighlightCell tints one cell, e.g. under the cursor.
func (r *GridRenderer) HighlightCell(screen *ebiten.Image, c gridmap.Cell, clr color.Color) {
	if r.grid.Contains(c) {
		r.fillCell(screen, c, clr)
	}
}

// DrawRange draws a tower's range circle.
func DrawRange(screen *ebiten.Image, center utils.Point, radius float64, fill, stroke color.Color) {
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(radius), fill, true)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(radius), 1, stroke, true)
}

// Draw paints the map and every entity of s.
func (r *GridRenderer) Draw(screen *ebiten.Image, s *app.Snapshot, style *EntityStyle) {
	screen.DrawImage(r.mapImage, nil)
	for i := range s.Towers {
		r.drawTower(screen, &s.Towers[i], style)
	}
	for i := range s.Creeps {
		drawCreep(screen, &s.Creeps[i], style)
	}
	for _, p := range s.Projectiles {
		radius := float32(math.Max(p.Radius, 1.5))
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), radius, style.ProjectileColor, true)
	}
}

// EntityStyle holds the colours used for entities.
type EntityStyle struct {
	ProjectileColor color.RGBA
	LevelDotColor   color.RGBA
	LevelDotRadius  float32
	SlowedColor     color.RGBA
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t *app.TowerView, style *EntityStyle) {
	size := math.Min(r.layout.CellWidth, r.layout.CellHeight)
	radius := float32(size * 0.4)
	if t.Visuals.RadiusFactor > 0 {
		radius = float32(size * t.Visuals.RadiusFactor)
	}
	cx, cy := float32(t.Center.X), float32(t.Center.Y)
	vector.DrawFilledCircle(screen, cx, cy, radius, t.Visuals.Color, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1.5, DarkenColor(t.Visuals.Color), true)

	// one pip per level along the bottom of the cell
	for _, x := range LevelPips(t.Level, t.Center.X, float64(style.LevelDotRadius)*3) {
		vector.DrawFilledCircle(screen, float32(x), float32(t.Position.Y+r.layout.CellHeight)-style.LevelDotRadius*2, style.LevelDotRadius, style.LevelDotColor, true)
	}
}

// LevelPips returns the x coordinates of level pips centred on cx.
func LevelPips(level int, cx, spacing float64) []float64 {
	xs := make([]float64, level)
	start := cx - spacing*float64(level-1)/2
	for i := range xs {
		xs[i] = start + spacing*float64(i)
	}
	return xs
}

func drawCreep(screen *ebiten.Image, c *app.CreepView, style *EntityStyle) {
	cx, cy := float32(c.Position.X), float32(c.Position.Y)
	body := c.Visuals.Color
	if c.Slowed {
		body = style.SlowedColor
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius), body, true)

	frac := 0.0
	if c.MaxHP > 0 {
		frac = c.HP / c.MaxHP
	}
	w := float32(c.Radius * 2)
	y := cy - float32(c.Radius) - 4
	vector.DrawFilledRect(screen, cx-w/2, y, w, 2, DarkenColor(body), false)
	vector.DrawFilledRect(screen, cx-w/2, y, w*float32(math.Max(frac, 0)), 2, HealthColor(frac), false)
}
