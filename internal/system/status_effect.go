// internal/system/status_effect.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
)

// EffectFactory builds an effect of one kind for a creep.
type EffectFactory func(def *defs.EffectDefinition, target *component.Creep) component.Effect

var effectFactories = map[defs.EffectKind]EffectFactory{
	defs.EffectSlow:   newSlowEffect,
	defs.EffectPoison: newPoisonEffect,
}

// RegisterEffect adds or replaces the factory for kind. Call it before any
// game is created.
func RegisterEffect(kind defs.EffectKind, factory EffectFactory) {
	effectFactories[kind] = factory
}

// HasEffect reports whether kind has a registered factory.
func HasEffect(kind defs.EffectKind) bool {
	_, ok := effectFactories[kind]
	return ok
}

// NewEffect constructs an effect; Init is left to the caller.
func NewEffect(def *defs.EffectDefinition, target *component.Creep) (component.Effect, bool) {
	factory, ok := effectFactories[def.Kind]
	if !ok {
		return nil, false
	}
	return factory(def, target), true
}

// StatusEffectSystem ticks every active effect once.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

// Update resets per-tick creep modifiers, then lets effects re-apply them.
func (s *StatusEffectSystem) Update(ctx *TickContext) {
	for _, c := range ctx.World.Creeps {
		c.SpeedFactor = 1
	}
	for _, e := range ctx.World.Effects {
		if e.Done() {
			continue
		}
		e.Update()
	}
}

// timedEffect counts down a duration and ends early when its creep is gone.
type timedEffect struct {
	target    *component.Creep
	duration  int
	remaining int
}

func (e *timedEffect) Init()                    { e.remaining = e.duration }
func (e *timedEffect) Done() bool               { return e.remaining <= 0 }
func (e *timedEffect) Target() *component.Creep { return e.target }

// step reports whether the effect may act on its creep this tick.
func (e *timedEffect) step() bool {
	if e.remaining <= 0 {
		return false
	}
	if e.target.Destroyed {
		e.remaining = 0
		return false
	}
	e.remaining--
	return true
}

// SlowEffect scales the creep's speed while it lasts. Overlapping slows do
// not stack; the strongest applies.
type SlowEffect struct {
	timedEffect
	Factor float64
}

func newSlowEffect(def *defs.EffectDefinition, target *component.Creep) component.Effect {
	return &SlowEffect{
		timedEffect: timedEffect{target: target, duration: def.Duration},
		Factor:      def.Factor,
	}
}

func (e *SlowEffect) Kind() string { return string(defs.EffectSlow) }

func (e *SlowEffect) Update() {
	if !e.step() {
		return
	}
	if e.Factor < e.target.SpeedFactor {
		e.target.SpeedFactor = e.Factor
	}
}

// PoisonEffect deals damage every tick.
type PoisonEffect struct {
	timedEffect
	DamagePerTick float64
}

func newPoisonEffect(def *defs.EffectDefinition, target *component.Creep) component.Effect {
	return &PoisonEffect{
		timedEffect:   timedEffect{target: target, duration: def.Duration},
		DamagePerTick: def.DamagePerTick,
	}
}

func (e *PoisonEffect) Kind() string { return string(defs.EffectPoison) }

func (e *PoisonEffect) Update() {
	if !e.step() {
		return
	}
	e.target.HP -= e.DamagePerTick
}
