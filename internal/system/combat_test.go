package system

import (
	"testing"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	pt "go-creep-defense/pkg/utils"
)

func TestTowerFiresOnCooldownBoundaries(t *testing.T) {
	ctx := newTestContext(t, "c....\nr....\nr....\nr....\nr....\nr....", 10)
	tw := addTower(ctx, testTowerDef(defs.TargetLocked), pt.Point{X: 20, Y: 20})
	// radius 0.5, distance 4: inside range 5 for all 25 ticks
	addCreep(ctx, testCreepDef(0.5), pt.Point{X: 24, Y: 20}, 0)
	cs := NewCombatSystem()

	var fired []int
	for tick := 1; tick <= 25; tick++ {
		cs.Update(ctx)
		if ctx.World.Pending() {
			fired = append(fired, tick)
		}
		ctx.World.Flush()
	}
	want := []int{1, 11, 21}
	if len(fired) != len(want) {
		t.Fatalf("expected shots on ticks %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("expected shots on ticks %v, got %v", want, fired)
		}
	}
	if tw.Cooldown != 10-(25-21) {
		t.Fatalf("expected cooldown 6 after tick 25, got %d", tw.Cooldown)
	}
}

func TestAcquisitionUsesSpawnOrderNotDistance(t *testing.T) {
	ctx := newTestContext(t, "c....\nr....\nr....", 10)
	def := testTowerDef(defs.TargetLocked)
	def.RangeLevels = []float64{20}
	tw := addTower(ctx, def, pt.Point{X: 20, Y: 20})
	first := addCreep(ctx, testCreepDef(1), pt.Point{X: 35, Y: 20}, 0)
	addCreep(ctx, testCreepDef(1), pt.Point{X: 21, Y: 20}, 0)

	NewCombatSystem().Update(ctx)

	if tw.Lock != first {
		t.Fatalf("expected lock on the first spawned creep")
	}
}

func TestRangeIncludesCreepRadius(t *testing.T) {
	ctx := newTestContext(t, "c....\nr....", 10)
	tw := addTower(ctx, testTowerDef(defs.TargetLocked), pt.Point{X: 0, Y: 0})
	c := addCreep(ctx, testCreepDef(2), pt.Point{X: 7, Y: 0}, 0)

	NewCombatSystem().Update(ctx)

	if tw.Lock != c {
		t.Fatalf("creep at 7 with radius 2 must be acquired by range 5")
	}
}

func TestLockDroppedWhenCreepDestroyedOrLeavesRange(t *testing.T) {
	ctx := newTestContext(t, "c....\nr....", 10)
	tw := addTower(ctx, testTowerDef(defs.TargetLocked), pt.Point{X: 0, Y: 0})
	c := addCreep(ctx, testCreepDef(0.5), pt.Point{X: 3, Y: 0}, 0)
	cs := NewCombatSystem()

	cs.Update(ctx)
	if tw.Lock != c {
		t.Fatalf("expected lock after first shot")
	}
	c.Position = pt.Point{X: 30, Y: 0}
	cs.Update(ctx)
	if tw.Lock != nil {
		t.Fatalf("expected lock dropped once out of range")
	}

	c.Position = pt.Point{X: 3, Y: 0}
	tw.Cooldown = 0
	cs.Update(ctx)
	if tw.Lock != c {
		t.Fatalf("expected lock reacquired")
	}
	c.Destroyed = true
	cs.Update(ctx)
	if tw.Lock != nil {
		t.Fatalf("expected lock dropped on destroyed creep")
	}
}

func TestGroundTowerSnapshotsPosition(t *testing.T) {
	ctx := newTestContext(t, "c....\nr....", 10)
	tw := addTower(ctx, testTowerDef(defs.TargetGround), pt.Point{X: 0, Y: 0})
	addCreep(ctx, testCreepDef(0.5), pt.Point{X: 3, Y: 4}, 0)

	NewCombatSystem().Update(ctx)
	ctx.World.Flush()

	if tw.Lock != nil {
		t.Fatalf("ground towers must not lock")
	}
	if len(ctx.World.Projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(ctx.World.Projectiles))
	}
	p := ctx.World.Projectiles[0]
	ft, ok := p.Target.(*component.FixedTarget)
	if !ok {
		t.Fatalf("expected a fixed target, got %T", p.Target)
	}
	if ft.At != (pt.Point{X: 3, Y: 4}) || !near(p.Limit, 5) {
		t.Fatalf("unexpected target %v limit %v", ft.At, p.Limit)
	}
}
