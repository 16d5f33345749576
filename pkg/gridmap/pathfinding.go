// pkg/gridmap/pathfinding.go
package gridmap

import "fmt"

// Segment is a straight run of a path from Start to End (inclusive).
type Segment struct {
	Direction Direction
	Start     Cell
	End       Cell
}

// Path is an immutable sequence of segments. The last segment is a
// zero-length sentinel at the exit cell.
type Path struct {
	segments []Segment
}

// NewPath copies segs into a Path.
func NewPath(segs []Segment) Path {
	return Path{segments: append([]Segment(nil), segs...)}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segment returns the i-th segment.
func (p Path) Segment(i int) Segment { return p.segments[i] }

// Segments returns a copy of all segments.
func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Exit returns the terminal cell of the path.
func (p Path) Exit() Cell {
	return p.segments[len(p.segments)-1].End
}

// DerivePath walks the road from spawn. Directions are tried in ScanOrder and
// a cell is never visited twice, so the result depends only on the grid.
func DerivePath(g *Grid, spawn Cell) (Path, error) {
	visited := map[Cell]bool{spawn: true}
	var segs []Segment

	next, dir, ok := nextValidCell(g, spawn, visited)
	if !ok {
		return Path{}, fmt.Errorf("%w: spawn %v", ErrNoPath, spawn)
	}
	start, last := spawn, next
	visited[last] = true

	for {
		ahead := last.Step(dir)
		if g.IsWalkable(ahead) && !visited[ahead] {
			last = ahead
			visited[last] = true
			continue
		}
		segs = append(segs, Segment{Direction: dir, Start: start, End: last})
		start = last

		next, nextDir, ok := nextValidCell(g, last, visited)
		if !ok {
			segs = append(segs, Segment{Direction: dir, Start: last, End: last})
			break
		}
		dir = nextDir
		last = next
		visited[last] = true
	}
	return NewPath(segs), nil
}

// DeriveAll derives one path per spawn cell, in spawn order.
func DeriveAll(g *Grid) ([]Path, error) {
	paths := make([]Path, 0, len(g.Spawns))
	for _, spawn := range g.Spawns {
		p, err := DerivePath(g, spawn)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func nextValidCell(g *Grid, from Cell, visited map[Cell]bool) (Cell, Direction, bool) {
	for _, d := range ScanOrder {
		c := from.Step(d)
		if g.IsWalkable(c) && !visited[c] {
			return c, d, true
		}
	}
	return Cell{}, 0, false
}
