// pkg/utils/math.go
package utils

import "math"

// Point is a position on the playfield in pixels.
type Point struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// InRange reports whether target lies within radius of position (inclusive).
func InRange(position Point, radius float64, target Point) bool {
	return Distance(position, target)-radius <= 0
}

// AngleTo returns the bearing from one point to another in radians.
// A zero horizontal distance maps to ±π/2 (or 0 for identical points).
func AngleTo(from, to Point) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 {
		switch {
		case dy > 0:
			return math.Pi / 2
		case dy < 0:
			return -math.Pi / 2
		default:
			return 0
		}
	}
	if dx < 0 {
		return math.Pi + math.Atan(dy/dx)
	}
	return math.Atan(dy / dx)
}

// Advance moves p by distance along angle.
func Advance(p Point, distance, angle float64) Point {
	return Point{
		X: p.X + math.Cos(angle)*distance,
		Y: p.Y + math.Sin(angle)*distance,
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
