// pkg/gridmap/cell.go
package gridmap

import "fmt"

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four axis-aligned walking directions.
type Direction int

const (
	Down Direction = iota
	Left
	Up
	Right
)

// ScanOrder is the fixed priority in which a path walk tries directions.
// Path shape depends on it, so it must never change.
var ScanOrder = [4]Direction{Down, Left, Up, Right}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	}
	return "unknown"
}

// Delta returns the unit step of the direction in grid coordinates
// (Y grows downwards).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
