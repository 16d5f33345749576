// internal/system/combat.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/pkg/utils"
)

// CombatSystem counts tower cooldowns down and fires at creeps in range.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(ctx *TickContext) {
	for _, t := range ctx.World.Towers {
		if t.Destroyed {
			continue
		}
		s.updateTower(ctx, t)
	}
}

func (s *CombatSystem) updateTower(ctx *TickContext, t *component.Tower) {
	if t.Cooldown > 0 {
		t.Cooldown--
	}
	if t.Lock != nil && !lockValid(t) {
		t.Lock = nil
	}
	if !t.Ready() {
		return
	}
	if t.Lock != nil {
		s.fire(ctx, t, t.Lock)
		return
	}
	target := findTarget(ctx, t)
	if target == nil {
		return
	}
	if t.Def.Seeking() {
		t.Lock = target
	}
	s.fire(ctx, t, target)
}

// lockValid drops locks on creeps that are gone or have walked out of range.
func lockValid(t *component.Tower) bool {
	c := t.Lock
	return c.Alive() && utils.InRange(t.Center, t.Range+c.Radius(), c.Position)
}

// findTarget returns the first creep in spawn order within range.
func findTarget(ctx *TickContext, t *component.Tower) *component.Creep {
	for _, c := range ctx.World.Creeps {
		if !c.Alive() {
			continue
		}
		if utils.InRange(t.Center, t.Range+c.Radius(), c.Position) {
			return c
		}
	}
	return nil
}

func (s *CombatSystem) fire(ctx *TickContext, t *component.Tower, c *component.Creep) {
	aim := c.Position
	p := &component.Projectile{
		ID:       ctx.World.NewEntity(),
		Position: t.Center,
		Angle:    utils.AngleTo(t.Center, aim),
		Speed:    t.Def.ProjectileSpeed,
		Damage:   t.Damage,
		Radius:   t.Def.ProjectileRadius,
		Splash:   t.Splash,
		OnHit:    t.Def.OnHit,
	}
	if t.Def.Seeking() {
		p.Target = &component.LockedTarget{Creep: c, Last: aim}
	} else {
		p.Target = &component.FixedTarget{At: aim}
		p.Limit = utils.Distance(t.Center, aim)
	}
	ctx.World.QueueProjectile(p)
	t.Cooldown = t.FireRate
}
