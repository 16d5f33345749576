// internal/system/utils.go
package system

import (
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/gridmap"
)

// ApplyHit subtracts the projectile's damage from c and attaches the on-hit
// effect. Kill resolution happens in the movement phase of the next tick.
func ApplyHit(ctx *TickContext, p *component.Projectile, c *component.Creep) {
	c.HP -= p.Damage
	if p.OnHit == nil {
		return
	}
	effect, ok := NewEffect(p.OnHit, c)
	if !ok {
		log.Printf("ApplyHit: no effect registered for kind %q", p.OnHit.Kind)
		return
	}
	effect.Init()
	ctx.World.QueueEffect(effect)
}

// NewCreep builds a creep at the start of path. Speed is sampled here and
// never changes afterwards.
func NewCreep(ctx *TickContext, def *defs.CreepDefinition, level int, path gridmap.Path) *component.Creep {
	first := path.Segment(0)
	hp := def.HP(level)
	return &component.Creep{
		ID:          ctx.World.NewEntity(),
		Def:         def,
		Level:       level,
		HP:          hp,
		MaxHP:       hp,
		Speed:       ctx.Rng.Between(def.SpeedRange[0], def.SpeedRange[1]),
		Worth:       def.Worth(level),
		Path:        path,
		Direction:   first.Direction,
		Position:    ctx.Layout.CellCenter(first.Start),
		SpeedFactor: 1,
	}
}

func creepData(c *component.Creep) event.CreepData {
	return event.CreepData{ID: uint64(c.ID), Type: c.Def.ID, Worth: c.Worth}
}
