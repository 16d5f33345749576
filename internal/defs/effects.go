// internal/defs/effects.go
package defs

// EffectKind names an effect implementation registered with the engine.
type EffectKind string

const (
	EffectSlow   EffectKind = "slow"
	EffectPoison EffectKind = "poison"
)

// EffectDefinition describes an effect applied to a creep when a projectile
// hits it.
type EffectDefinition struct {
	Kind          EffectKind `json:"kind"`
	Duration      int        `json:"duration"`                  // ticks
	Factor        float64    `json:"factor,omitempty"`          // slow: speed multiplier
	DamagePerTick float64    `json:"damage_per_tick,omitempty"` // poison
}

func (d *EffectDefinition) Validate() error {
	if d.Kind == "" {
		return Invalid("on_hit", "missing kind")
	}
	if d.Duration < 1 {
		return Invalid("on_hit", "duration must be at least 1 tick")
	}
	if d.Factor < 0 || d.DamagePerTick < 0 {
		return Invalid("on_hit", "negative effect value")
	}
	return nil
}
