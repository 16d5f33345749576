package system

import (
	"testing"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	pt "go-creep-defense/pkg/utils"
)

func attach(t *testing.T, ctx *TickContext, def *defs.EffectDefinition, c *component.Creep) component.Effect {
	t.Helper()
	e, ok := NewEffect(def, c)
	if !ok {
		t.Fatalf("no factory for %q", def.Kind)
	}
	e.Init()
	ctx.World.Effects = append(ctx.World.Effects, e)
	return e
}

func TestStrongestSlowWins(t *testing.T) {
	ctx := newTestContext(t, "c\nr", 10)
	c := addCreep(ctx, testCreepDef(1), pt.Point{X: 5, Y: 5}, 1)
	attach(t, ctx, &defs.EffectDefinition{Kind: defs.EffectSlow, Duration: 5, Factor: 0.5}, c)
	attach(t, ctx, &defs.EffectDefinition{Kind: defs.EffectSlow, Duration: 1, Factor: 0.25}, c)
	es := NewStatusEffectSystem()

	es.Update(ctx)
	if c.SpeedFactor != 0.25 {
		t.Fatalf("expected factor 0.25, got %v", c.SpeedFactor)
	}
	es.Update(ctx)
	if c.SpeedFactor != 0.5 {
		t.Fatalf("expected factor 0.5 once the strong slow expired, got %v", c.SpeedFactor)
	}
}

func TestSlowExpiresAfterDuration(t *testing.T) {
	ctx := newTestContext(t, "c\nr", 10)
	c := addCreep(ctx, testCreepDef(1), pt.Point{X: 5, Y: 5}, 1)
	e := attach(t, ctx, &defs.EffectDefinition{Kind: defs.EffectSlow, Duration: 3, Factor: 0.5}, c)
	es := NewStatusEffectSystem()

	for i := 0; i < 3; i++ {
		if e.Done() {
			t.Fatalf("slow ended after %d ticks", i)
		}
		es.Update(ctx)
	}
	if !e.Done() {
		t.Fatalf("expected slow done after 3 ticks")
	}
	ctx.World.Sweep()
	es.Update(ctx)
	if c.SpeedFactor != 1 || len(ctx.World.Effects) != 0 {
		t.Fatalf("expected speed restored and effect swept")
	}
}

func TestPoisonDamagesEachTick(t *testing.T) {
	ctx := newTestContext(t, "c\nr", 10)
	c := addCreep(ctx, testCreepDef(1), pt.Point{X: 5, Y: 5}, 1)
	attach(t, ctx, &defs.EffectDefinition{Kind: defs.EffectPoison, Duration: 4, DamagePerTick: 2}, c)
	es := NewStatusEffectSystem()

	for i := 0; i < 6; i++ {
		es.Update(ctx)
	}
	if c.HP != 2 {
		t.Fatalf("expected 4 ticks of 2 damage (hp 2), got %v", c.HP)
	}
}

func TestEffectEndsWithItsCreep(t *testing.T) {
	ctx := newTestContext(t, "c\nr", 10)
	c := addCreep(ctx, testCreepDef(1), pt.Point{X: 5, Y: 5}, 1)
	e := attach(t, ctx, &defs.EffectDefinition{Kind: defs.EffectPoison, Duration: 100, DamagePerTick: 1}, c)
	c.Destroyed = true

	NewStatusEffectSystem().Update(ctx)

	if !e.Done() {
		t.Fatalf("expected effect on a destroyed creep to finish")
	}
	if c.HP != 10 {
		t.Fatalf("destroyed creep must not be touched, hp %v", c.HP)
	}
}

type markEffect struct {
	target *component.Creep
	ticks  int
}

func (m *markEffect) Init()                    {}
func (m *markEffect) Update()                  { m.ticks++ }
func (m *markEffect) Done() bool               { return m.ticks >= 1 }
func (m *markEffect) Target() *component.Creep { return m.target }
func (m *markEffect) Kind() string             { return "mark" }

func TestRegisterEffect(t *testing.T) {
	kind := defs.EffectKind("mark")
	if HasEffect(kind) {
		t.Fatalf("mark registered before the test")
	}
	RegisterEffect(kind, func(_ *defs.EffectDefinition, c *component.Creep) component.Effect {
		return &markEffect{target: c}
	})
	defer delete(effectFactories, kind)

	e, ok := NewEffect(&defs.EffectDefinition{Kind: kind, Duration: 1}, nil)
	if !ok || e.Kind() != "mark" {
		t.Fatalf("expected the registered factory to be used")
	}
	if _, ok := NewEffect(&defs.EffectDefinition{Kind: "unknown"}, nil); ok {
		t.Fatalf("unknown kinds must not construct")
	}
}
