// internal/system/movement.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/utils"
)

// MovementSystem resolves kills and walks creeps along their paths.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(ctx *TickContext) {
	for _, c := range ctx.World.Creeps {
		if c.Destroyed {
			continue
		}
		if c.HP <= 0 {
			s.kill(ctx, c)
			continue
		}
		s.move(ctx, c)
	}
}

func (s *MovementSystem) kill(ctx *TickContext, c *component.Creep) {
	c.Destroyed = true
	ctx.Economy.Reward(c.Worth)
	ctx.Events.Dispatch(event.Event{Type: event.CreepKilled, Data: creepData(c)})
}

func (s *MovementSystem) leak(ctx *TickContext, c *component.Creep) {
	c.Destroyed = true
	ctx.Economy.Lives--
	ctx.Events.Dispatch(event.Event{Type: event.CreepLeaked, Data: creepData(c)})
}

// move spends the creep's budget for this tick. Reaching a segment end snaps
// to that cell centre and the remainder carries into the next segment. The
// path ends with a zero-length segment, so arriving there is a leak.
func (s *MovementSystem) move(ctx *TickContext, c *component.Creep) {
	remaining := c.Speed * c.SpeedFactor
	// Every iteration either returns or advances PathPoint.
	for steps := c.Path.Len(); steps >= 0; steps-- {
		if c.PathPoint >= c.Path.Len()-1 {
			s.leak(ctx, c)
			return
		}
		seg := c.Path.Segment(c.PathPoint)
		c.Direction = seg.Direction
		end := ctx.Layout.CellCenter(seg.End)
		toEnd := utils.Distance(c.Position, end)
		if remaining < toEnd {
			dx, dy := seg.Direction.Delta()
			c.Position = c.Position.Add(float64(dx)*remaining, float64(dy)*remaining)
			return
		}
		remaining -= toEnd
		c.Position = end
		c.PathPoint++
	}
}
