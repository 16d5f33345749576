// internal/defs/types.go
package defs

import "image/color"

// TargetMode selects how a tower's projectiles track their target.
type TargetMode string

const (
	// TargetLocked projectiles home on a live creep.
	TargetLocked TargetMode = "locked"
	// TargetGround projectiles fly to the point the creep occupied when fired.
	TargetGround TargetMode = "ground"
)

// Visuals contains parameters for rendering an entity. The engine ignores them.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor,omitempty"`
	Glyph        string     `json:"glyph,omitempty"` // terminal frontend
}
