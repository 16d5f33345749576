// pkg/gridmap/map.go
package gridmap

import (
	"errors"
	"fmt"
	"strings"
)

// CellType classifies a grid cell.
type CellType int

const (
	// Buildable is empty ground a tower may stand on.
	Buildable CellType = iota
	// Plain is scenery: not walkable and not buildable.
	Plain
	// Road is walkable by creeps.
	Road
	// Spawn is a walkable cell where creeps enter the map.
	Spawn
)

const (
	SpawnRune = 'c'
	RoadRune  = 'r'
)

var (
	ErrMalformedMap = errors.New("malformed map")
	ErrNoPath       = errors.New("spawn has no valid path")
)

func (t CellType) String() string {
	switch t {
	case Buildable:
		return "buildable"
	case Plain:
		return "plain"
	case Road:
		return "road"
	case Spawn:
		return "spawn"
	}
	return "unknown"
}

// Grid is the parsed map. It is read-only after Parse.
type Grid struct {
	Width  int
	Height int
	Spawns []Cell // row-major order
	cells  [][]CellType
}

// Parse builds a Grid from newline-delimited rows. Runes listed in blocked
// become Plain cells; any other unknown rune is Buildable.
func Parse(text string, blocked string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(text, "\n")
	if len(rows) > 1 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: empty map", ErrMalformedMap)
	}

	width := len([]rune(rows[0]))
	g := &Grid{
		Width:  width,
		Height: len(rows),
		cells:  make([][]CellType, len(rows)),
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrMalformedMap, y, len(runes), width)
		}
		g.cells[y] = make([]CellType, width)
		for x, r := range runes {
			switch {
			case r == SpawnRune:
				g.cells[y][x] = Spawn
				g.Spawns = append(g.Spawns, Cell{X: x, Y: y})
			case r == RoadRune:
				g.cells[y][x] = Road
			case strings.ContainsRune(blocked, r):
				g.cells[y][x] = Plain
			default:
				g.cells[y][x] = Buildable
			}
		}
	}
	return g, nil
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// At returns the type of c. Cells outside the grid are Plain.
func (g *Grid) At(c Cell) CellType {
	if !g.Contains(c) {
		return Plain
	}
	return g.cells[c.Y][c.X]
}

// IsWalkable reports whether creeps may walk on c.
func (g *Grid) IsWalkable(c Cell) bool {
	t := g.At(c)
	return t == Road || t == Spawn
}

// IsBuildable reports whether the terrain at c accepts a tower.
// Occupancy is tracked by the game, not the grid.
func (g *Grid) IsBuildable(c Cell) bool {
	return g.At(c) == Buildable
}
