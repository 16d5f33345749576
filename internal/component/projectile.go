// internal/component/projectile.go
package component

import (
	"go-creep-defense/internal/defs"
	"go-creep-defense/pkg/utils"
)

// Target is what a projectile flies at: either a live creep or a fixed point.
type Target interface {
	// Point is the position the projectile aims for this tick.
	Point() utils.Point
	isTarget()
}

// LockedTarget follows a creep. Last is refreshed every tick while the creep
// lives so the projectile never has to read a destroyed creep.
type LockedTarget struct {
	Creep *Creep
	Last  utils.Point
}

func (t *LockedTarget) Point() utils.Point { return t.Last }
func (*LockedTarget) isTarget()            {}

// FixedTarget is a point on the ground.
type FixedTarget struct {
	At utils.Point
}

func (t *FixedTarget) Point() utils.Point { return t.At }
func (*FixedTarget) isTarget()            {}

// Projectile is a shot travelling from a tower towards its target.
type Projectile struct {
	ID        EntityID
	Position  utils.Point
	Angle     float64
	Speed     float64
	Damage    float64
	Radius    float64
	Splash    float64
	Target    Target
	Traveled  float64
	Limit     float64 // travel distance at which a fixed-target shot lands
	OnHit     *defs.EffectDefinition
	Destroyed bool
}

// Locked returns the creep being followed, if the target is still locked.
func (p *Projectile) Locked() (*LockedTarget, bool) {
	lt, ok := p.Target.(*LockedTarget)
	return lt, ok
}
