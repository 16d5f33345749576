// internal/term/renderer.go
package term

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/pkg/gridmap"
)

// CellCols is the number of terminal columns per grid cell. Terminal cells
// are roughly twice as tall as they are wide.
const CellCols = 2

var (
	styleBase      = tcell.StyleDefault
	styleBuildable = styleBase.Foreground(tcell.ColorDarkGreen)
	stylePlain     = styleBase.Foreground(tcell.ColorGray)
	styleRoad      = styleBase.Background(tcell.NewRGBColor(60, 60, 50))
	styleSpawn     = styleBase.Background(tcell.NewRGBColor(90, 120, 70))
	styleExit      = styleBase.Background(tcell.NewRGBColor(120, 60, 60))
	styleHUD       = styleBase.Foreground(tcell.ColorSilver)
	styleHint      = styleBase.Foreground(tcell.ColorGray).Dim(true)
	styleAlert     = styleBase.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws snapshots as glyphs: terrain, then projectiles, creeps and
// towers, then a status area below the map.
type Renderer struct {
	screen tcell.Screen
	grid   *gridmap.Grid
	layout gridmap.Layout
	exits  map[gridmap.Cell]bool
}

func NewRenderer(screen tcell.Screen, grid *gridmap.Grid, paths []gridmap.Path, layout gridmap.Layout) *Renderer {
	r := &Renderer{
		screen: screen,
		grid:   grid,
		layout: layout,
		exits:  make(map[gridmap.Cell]bool),
	}
	for _, p := range paths {
		r.exits[p.Exit()] = true
	}
	return r
}

// CellAt maps a screen position to a grid cell.
func (r *Renderer) CellAt(x, y int) (gridmap.Cell, bool) {
	c := gridmap.Cell{X: x / CellCols, Y: y}
	if x < 0 || !r.grid.Contains(c) {
		return gridmap.Cell{}, false
	}
	return c, true
}

// StatusRow is the first screen row below the map.
func (r *Renderer) StatusRow() int {
	return r.grid.Height + 1
}

// Draw renders s with the cursor on cell cursor and shows the screen.
func (r *Renderer) Draw(s *app.Snapshot, cursor gridmap.Cell, towerIDs []string) {
	r.screen.Clear()
	r.drawTerrain()

	for _, p := range s.Projectiles {
		cell := r.layout.CellAt(p.Position)
		r.put(cell, 0, '*', r.cellStyle(cell).Foreground(tcell.ColorWhite).Bold(true))
	}

	crowd := make(map[gridmap.Cell]int)
	for _, c := range s.Creeps {
		cell := r.layout.CellAt(c.Position)
		crowd[cell]++
		st := r.cellStyle(cell).Foreground(toColor(c.Visuals.Color))
		if c.Slowed {
			st = st.Foreground(tcell.ColorLightBlue)
		}
		if sel := s.Selection.Creep; sel != nil && sel.ID == c.ID {
			st = st.Reverse(true)
		}
		r.put(cell, 0, glyph(c.Visuals.Glyph, '@'), st)
		if crowd[cell] > 1 {
			r.put(cell, 1, '+', st)
		}
	}

	for _, t := range s.Towers {
		st := styleBase.Foreground(toColor(t.Visuals.Color)).Bold(true)
		if sel := s.Selection.Tower; sel != nil && sel.ID == t.ID {
			st = st.Reverse(true)
		}
		r.put(t.Cell, 0, glyph(t.Visuals.Glyph, 'T'), st)
		r.put(t.Cell, 1, rune('0'+t.Level%10), st)
	}

	r.drawCursor(cursor)
	r.drawStatus(s, towerIDs)
	r.screen.Show()
}

func (r *Renderer) drawTerrain() {
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			c := gridmap.Cell{X: x, Y: y}
			ch, st := ' ', r.cellStyle(c)
			switch r.grid.At(c) {
			case gridmap.Buildable:
				ch = '.'
			case gridmap.Plain:
				ch = '#'
			}
			r.put(c, 0, ch, st)
			r.put(c, 1, ' ', st)
		}
	}
}

func (r *Renderer) cellStyle(c gridmap.Cell) tcell.Style {
	if r.exits[c] {
		return styleExit
	}
	switch r.grid.At(c) {
	case gridmap.Road:
		return styleRoad
	case gridmap.Spawn:
		return styleSpawn
	case gridmap.Plain:
		return stylePlain
	}
	return styleBuildable
}

func (r *Renderer) drawCursor(c gridmap.Cell) {
	for col := 0; col < CellCols; col++ {
		x, y := c.X*CellCols+col, c.Y
		ch, comb, st, _ := r.screen.GetContent(x, y)
		r.screen.SetContent(x, y, ch, comb, st.Reverse(true))
	}
}

func (r *Renderer) drawStatus(s *app.Snapshot, towerIDs []string) {
	y := r.StatusRow()
	r.text(0, y, fmt.Sprintf("$%d  score %d  lives %d  wave %d/%d %s",
		s.Cash, s.Score, s.Lives, s.Wave, s.TotalWaves, s.WaveStage), styleHUD)
	y++

	switch {
	case s.Phase == component.Ended && s.Won:
		r.text(0, y, fmt.Sprintf("VICTORY with %d points. r restarts, q quits.", s.Score), styleAlert)
	case s.Phase == component.Ended:
		r.text(0, y, fmt.Sprintf("DEFEAT with %d points. r restarts, q quits.", s.Score), styleAlert)
	case s.Phase == component.NotStarted:
		r.text(0, y, "Build towers, then press space to send the first wave.", styleAlert)
	default:
		r.text(0, y, SelectionText(s), styleHUD)
	}
	y++

	build := "none"
	if s.BuildObject != "" {
		build = s.BuildObject
	}
	line := "build: " + build + "  "
	for i, id := range towerIDs {
		if i >= 9 {
			break
		}
		line += fmt.Sprintf("%d=%s ", i+1, id)
	}
	r.text(0, y, line, styleHUD)
	y++
	r.text(0, y, "arrows/hjkl move  enter click  u upgrade  s sell  esc cancel  space start  p pause  q quit", styleHint)
}

// SelectionText describes the selected entity on one line.
func SelectionText(s *app.Snapshot) string {
	switch {
	case s.Selection.Tower != nil:
		t := s.Selection.Tower
		up := "max level"
		if t.Level < t.MaxLevel {
			up = fmt.Sprintf("upgrade $%d", t.UpgradeCost)
		}
		return fmt.Sprintf("%s L%d  dmg %.0f  range %.0f  %s  sell $%d", t.Name, t.Level, t.Damage, t.Range, up, t.Worth)
	case s.Selection.Creep != nil:
		c := s.Selection.Creep
		return fmt.Sprintf("%s L%d  hp %.0f/%.0f  speed %.2f  worth $%d", c.Name, c.Level, c.HP, c.MaxHP, c.Speed, c.Worth)
	}
	return ""
}

func (r *Renderer) put(c gridmap.Cell, col int, ch rune, st tcell.Style) {
	if !r.grid.Contains(c) {
		return
	}
	r.screen.SetContent(c.X*CellCols+col, c.Y, ch, nil, st)
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func glyph(s string, fallback rune) rune {
	if ch, _ := utf8.DecodeRuneInString(s); ch != utf8.RuneError {
		return ch
	}
	return fallback
}

func toColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorWhite
	}
	return tcell.FromImageColor(c)
}
