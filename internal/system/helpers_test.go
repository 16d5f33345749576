package system

import (
	"testing"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/utils"
	"go-creep-defense/pkg/gridmap"
	pt "go-creep-defense/pkg/utils"
)

// newTestContext builds a context for mapText where every cell is cellSize
// pixels wide.
func newTestContext(t *testing.T, mapText string, cellSize float64) *TickContext {
	t.Helper()
	g, err := gridmap.Parse(mapText, "#")
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	paths, err := gridmap.DeriveAll(g)
	if err != nil {
		t.Fatalf("derive paths: %v", err)
	}
	return &TickContext{
		World:   entity.NewWorld(),
		Grid:    g,
		Paths:   paths,
		Layout:  gridmap.NewLayout(g, float64(g.Width)*cellSize, float64(g.Height)*cellSize),
		Economy: &component.Economy{Cash: 100, Lives: 10},
		Rng:     utils.NewPRNGService(1),
		Events:  event.NewDispatcher(),
	}
}

func testCreepDef(radius float64) *defs.CreepDefinition {
	return &defs.CreepDefinition{
		ID:          "grunt",
		Radius:      radius,
		HPLevels:    []float64{10},
		WorthLevels: []int{5},
		SpeedRange:  [2]float64{1, 1},
	}
}

// addCreep places a creep directly in the world at pos.
func addCreep(ctx *TickContext, def *defs.CreepDefinition, pos pt.Point, speed float64) *component.Creep {
	c := NewCreep(ctx, def, 1, ctx.Paths[0])
	c.Position = pos
	c.Speed = speed
	ctx.World.Creeps = append(ctx.World.Creeps, c)
	return c
}

func testTowerDef(target defs.TargetMode) *defs.TowerDefinition {
	return &defs.TowerDefinition{
		ID:               "test",
		MaxLevel:         1,
		DamageLevels:     []float64{3},
		RangeLevels:      []float64{5},
		FireRateLevels:   []int{10},
		CostLevels:       []int{10},
		WorthLevels:      []int{7},
		Target:           target,
		ProjectileSpeed:  1,
		ProjectileRadius: 0.5,
	}
}

func addTower(ctx *TickContext, def *defs.TowerDefinition, center pt.Point) *component.Tower {
	tw := &component.Tower{ID: ctx.World.NewEntity(), Def: def, Level: 1, Center: center, Position: center}
	tw.ApplyLevel()
	ctx.World.Towers = append(ctx.World.Towers, tw)
	return tw
}

// recorder collects dispatched events.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(ctx *TickContext) *recorder {
	r := &recorder{}
	ctx.Events.SubscribeAll(r,
		event.CreepKilled, event.CreepLeaked,
		event.WaveStarted, event.WaveCleared)
	return r
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
