// internal/component/tower.go
package component

import (
	"go-creep-defense/internal/defs"
	"go-creep-defense/pkg/gridmap"
	"go-creep-defense/pkg/utils"
)

// Tower is a player-built stationary unit.
type Tower struct {
	ID        EntityID
	Def       *defs.TowerDefinition
	Level     int
	Cell      gridmap.Cell
	Position  utils.Point // top-left corner of the cell
	Center    utils.Point
	Cooldown  int    // ticks until ready; ready at <= 0
	Lock      *Creep // creep the tower keeps firing at, locked mode only
	Destroyed bool

	defs.TowerStats
}

// ApplyLevel re-derives the level-dependent stats from the archetype.
func (t *Tower) ApplyLevel() {
	t.TowerStats = t.Def.StatsAt(t.Level)
}

// Ready reports whether the tower may fire this tick.
func (t *Tower) Ready() bool {
	return t.Cooldown <= 0
}
