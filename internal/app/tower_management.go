// internal/app/tower_management.go
package app

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/gridmap"
	"go-creep-defense/pkg/utils"
)

// SelectAt selects the tower whose cell contains p, otherwise the first creep
// whose body contains p. Clicking empty ground clears the selection. It
// reports whether something was selected.
func (g *Game) SelectAt(p utils.Point) bool {
	g.build = nil
	g.selection = component.Selection{}
	for _, t := range g.world.Towers {
		if !t.Destroyed && g.layout.InCell(p, t.Cell) {
			g.selection.Tower = t
			return true
		}
	}
	for _, c := range g.world.Creeps {
		if !c.Destroyed && utils.InRange(c.Position, c.Radius(), p) {
			g.selection.Creep = c
			return true
		}
	}
	return false
}

// ChooseBuildObject picks the archetype the next click builds. An empty id
// clears the choice.
func (g *Game) ChooseBuildObject(id string) bool {
	if id == "" {
		g.build = nil
		return true
	}
	def, ok := g.library.Tower(id)
	if !ok {
		return false
	}
	g.build = def
	g.selection = component.Selection{}
	return true
}

// BuildObject returns the chosen archetype id, or "".
func (g *Game) BuildObject() string {
	if g.build == nil {
		return ""
	}
	return g.build.ID
}

// CanBuildAt reports whether BuildAt(p, id) would succeed.
func (g *Game) CanBuildAt(p utils.Point, id string) bool {
	_, _, ok := g.canPlaceTower(p, id)
	return ok
}

func (g *Game) canPlaceTower(p utils.Point, id string) (*defs.TowerDefinition, gridmap.Cell, bool) {
	if g.phase == component.Ended {
		return nil, gridmap.Cell{}, false
	}
	def, ok := g.library.Tower(id)
	if !ok {
		return nil, gridmap.Cell{}, false
	}
	if !g.layout.InBounds(p) {
		return nil, gridmap.Cell{}, false
	}
	cell := g.layout.CellAt(p)
	if !g.grid.IsBuildable(cell) {
		return nil, cell, false
	}
	if _, taken := g.occupied[cell]; taken {
		return nil, cell, false
	}
	if def.BuildCost() > g.economy.Cash {
		return nil, cell, false
	}
	return def, cell, true
}

// BuildAt places a level 1 tower of archetype id on the cell containing p.
// It fails without side effects when the cell is not buildable, already
// taken, or the tower is unaffordable.
func (g *Game) BuildAt(p utils.Point, id string) bool {
	def, cell, ok := g.canPlaceTower(p, id)
	if !ok {
		return false
	}
	g.economy.Spend(def.BuildCost())

	t := &component.Tower{
		ID:       g.world.NewEntity(),
		Def:      def,
		Level:    1,
		Cell:     cell,
		Position: g.layout.CellOrigin(cell),
		Center:   g.layout.CellCenter(cell),
	}
	t.ApplyLevel()
	g.world.QueueTower(t)
	g.world.Flush()
	g.occupied[cell] = t

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerBuilt, Data: g.towerData(t)})
	return true
}

// UpgradeSelected raises the selected tower one level if it is below max
// level and affordable.
func (g *Game) UpgradeSelected() bool {
	t := g.selectedTower()
	if t == nil {
		return false
	}
	cost, ok := t.Def.UpgradeCost(t.Level)
	if !ok || !g.economy.Spend(cost) {
		return false
	}
	t.Level++
	t.ApplyLevel()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: g.towerData(t)})
	return true
}

// SellSelected refunds the selected tower's worth and frees its cell.
func (g *Game) SellSelected() bool {
	t := g.selectedTower()
	if t == nil {
		return false
	}
	g.economy.Cash += t.Worth
	delete(g.occupied, t.Cell)
	t.Destroyed = true
	t.Lock = nil
	g.selection = component.Selection{}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: g.towerData(t)})
	return true
}

func (g *Game) selectedTower() *component.Tower {
	if g.phase == component.Ended {
		return nil
	}
	t := g.selection.Tower
	if t == nil || t.Destroyed {
		return nil
	}
	return t
}

func (g *Game) towerData(t *component.Tower) event.TowerData {
	return event.TowerData{ID: uint64(t.ID), Type: t.Def.ID, Level: t.Level, Cash: g.economy.Cash}
}
