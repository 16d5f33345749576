// internal/component/creep.go
package component

import (
	"go-creep-defense/internal/defs"
	"go-creep-defense/pkg/gridmap"
	"go-creep-defense/pkg/utils"
)

// Creep is a hostile unit walking one path from spawn to exit.
type Creep struct {
	ID        EntityID
	Def       *defs.CreepDefinition
	Level     int
	HP        float64
	MaxHP     float64
	Speed     float64 // sampled once at spawn
	Worth     int
	Path      gridmap.Path
	PathPoint int // index of the segment being walked
	Direction gridmap.Direction
	Position  utils.Point
	Destroyed bool

	// SpeedFactor scales Speed for the current tick. It is reset to 1 at the
	// start of every tick and lowered by slow effects.
	SpeedFactor float64
}

// Radius is the archetype's hit radius.
func (c *Creep) Radius() float64 {
	return c.Def.Radius
}

// Alive reports whether the creep still takes part in the simulation.
func (c *Creep) Alive() bool {
	return !c.Destroyed
}
