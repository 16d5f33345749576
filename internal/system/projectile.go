// internal/system/projectile.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/pkg/utils"
)

// ProjectileSystem flies projectiles and resolves their hits.
type ProjectileSystem struct {
	victims []*component.Creep
}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(ctx *TickContext) {
	for _, p := range ctx.World.Projectiles {
		if p.Destroyed {
			continue
		}
		s.updateProjectile(ctx, p)
	}
}

func (s *ProjectileSystem) updateProjectile(ctx *TickContext, p *component.Projectile) {
	snapped := false
	if lt, ok := p.Locked(); ok {
		if lt.Creep.Destroyed {
			// The creep is gone: fly on to where it was last seen.
			p.Target = &component.FixedTarget{At: lt.Last}
			p.Limit = p.Traveled + utils.Distance(p.Position, lt.Last)
			p.Angle = utils.AngleTo(p.Position, lt.Last)
		} else {
			lt.Last = lt.Creep.Position
			p.Angle = utils.AngleTo(p.Position, lt.Last)
			// A step that would overshoot the creep lands on it instead.
			if d := utils.Distance(p.Position, lt.Last); d <= p.Speed {
				p.Position = lt.Last
				p.Traveled += d
				snapped = true
			}
		}
	}

	if !snapped {
		p.Position = utils.Advance(p.Position, p.Speed, p.Angle)
		p.Traveled += p.Speed
	}

	arrived := false
	if ft, ok := p.Target.(*component.FixedTarget); ok && p.Traveled >= p.Limit {
		p.Position = ft.At
		arrived = true
	}

	if !ctx.Layout.InBounds(p.Position) {
		p.Destroyed = true
		return
	}

	switch {
	case p.Splash > 0:
		s.resolveSplash(ctx, p, arrived)
	case arrived:
		s.resolvePoint(ctx, p)
	default:
		s.resolveLocked(ctx, p)
	}
}

// resolveLocked hits the followed creep once the projectile touches it.
func (s *ProjectileSystem) resolveLocked(ctx *TickContext, p *component.Projectile) {
	lt, ok := p.Locked()
	if !ok {
		return
	}
	c := lt.Creep
	if utils.InRange(p.Position, p.Radius+c.Radius(), c.Position) {
		ApplyHit(ctx, p, c)
		p.Destroyed = true
	}
}

// resolvePoint hits the first creep at the landing point. The projectile is
// spent either way.
func (s *ProjectileSystem) resolvePoint(ctx *TickContext, p *component.Projectile) {
	for _, c := range ctx.World.Creeps {
		if c.Destroyed {
			continue
		}
		if utils.InRange(p.Position, p.Radius+c.Radius(), c.Position) {
			ApplyHit(ctx, p, c)
			break
		}
	}
	p.Destroyed = true
}

// resolveSplash detonates only when some creep is in direct contact; every
// creep within the splash ring of the blast point then takes the hit. A shot
// that lands without contact expires harmlessly.
func (s *ProjectileSystem) resolveSplash(ctx *TickContext, p *component.Projectile, arrived bool) {
	s.victims = s.victims[:0]
	direct := false
	for _, c := range ctx.World.Creeps {
		if c.Destroyed {
			continue
		}
		contact := p.Radius + c.Radius()
		if !utils.InRange(p.Position, contact+p.Splash, c.Position) {
			continue
		}
		s.victims = append(s.victims, c)
		if utils.InRange(p.Position, contact, c.Position) {
			direct = true
		}
	}
	if !direct {
		if arrived {
			p.Destroyed = true
		}
		return
	}
	for _, c := range s.victims {
		ApplyHit(ctx, p, c)
	}
	p.Destroyed = true
}
