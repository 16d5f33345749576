// internal/app/snapshot.go
package app

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/system"
	"go-creep-defense/pkg/gridmap"
	"go-creep-defense/pkg/utils"
)

type TowerView struct {
	ID          uint64
	Type        string
	Name        string
	Level       int
	MaxLevel    int
	Cell        gridmap.Cell
	Position    utils.Point
	Center      utils.Point
	Damage      float64
	Range       float64
	FireRate    int
	Splash      float64
	Worth       int
	UpgradeCost int // 0 at max level
	Visuals     defs.Visuals
}

type CreepView struct {
	ID        uint64
	Type      string
	Name      string
	Level     int
	HP        float64
	MaxHP     float64
	Speed     float64
	Worth     int
	Radius    float64
	Position  utils.Point
	Direction gridmap.Direction
	Slowed    bool
	Visuals   defs.Visuals
}

type ProjectileView struct {
	ID       uint64
	Position utils.Point
	Radius   float64
	Splash   float64
	Seeking  bool
}

type EffectView struct {
	Kind    string
	CreepID uint64
}

// SelectionView holds a copy of the selected entity, if any.
type SelectionView struct {
	Tower *TowerView
	Creep *CreepView
}

// Snapshot is a copy of the game state for rendering. Changing it has no
// effect on the game.
type Snapshot struct {
	Tick        uint64
	Phase       component.RunPhase
	Won         bool
	Cash        int
	Score       int
	Lives       int
	Wave        int // 1-based number of the current or next wave
	TotalWaves  int
	WaveStage   component.WaveStage
	NextWaveIn  int // ticks until the next wave starts spawning
	BuildObject string
	Towers      []TowerView
	Creeps      []CreepView
	Projectiles []ProjectileView
	Effects     []EffectView
	Selection   SelectionView
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.ctx.Tick,
		Phase:       g.phase,
		Won:         g.won,
		Cash:        g.economy.Cash,
		Score:       g.economy.Score,
		Lives:       g.economy.Lives,
		Wave:        min(g.wave.Index+1, g.wave.Total),
		TotalWaves:  g.wave.Total,
		WaveStage:   g.wave.Stage(),
		NextWaveIn:  system.TicksToNextWave(g.wave),
		BuildObject: g.BuildObject(),
	}
	slowed := make(map[component.EntityID]bool)
	for _, e := range g.world.Effects {
		if e.Done() {
			continue
		}
		s.Effects = append(s.Effects, EffectView{Kind: e.Kind(), CreepID: uint64(e.Target().ID)})
		if _, ok := e.(*system.SlowEffect); ok {
			slowed[e.Target().ID] = true
		}
	}
	for _, t := range g.world.Towers {
		if !t.Destroyed {
			s.Towers = append(s.Towers, towerView(t))
		}
	}
	for _, c := range g.world.Creeps {
		if c.Alive() {
			s.Creeps = append(s.Creeps, creepView(c, slowed[c.ID]))
		}
	}
	for _, p := range g.world.Projectiles {
		if p.Destroyed {
			continue
		}
		_, seeking := p.Locked()
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:       uint64(p.ID),
			Position: p.Position,
			Radius:   p.Radius,
			Splash:   p.Splash,
			Seeking:  seeking,
		})
	}
	if t := g.selection.Tower; t != nil && !t.Destroyed {
		v := towerView(t)
		s.Selection.Tower = &v
	}
	if c := g.selection.Creep; c != nil && c.Alive() {
		v := creepView(c, slowed[c.ID])
		s.Selection.Creep = &v
	}
	return s
}

func towerView(t *component.Tower) TowerView {
	cost, _ := t.Def.UpgradeCost(t.Level)
	return TowerView{
		ID:          uint64(t.ID),
		Type:        t.Def.ID,
		Name:        t.Def.Name,
		Level:       t.Level,
		MaxLevel:    t.Def.MaxLevel,
		Cell:        t.Cell,
		Position:    t.Position,
		Center:      t.Center,
		Damage:      t.Damage,
		Range:       t.Range,
		FireRate:    t.FireRate,
		Splash:      t.Splash,
		Worth:       t.Worth,
		UpgradeCost: cost,
		Visuals:     t.Def.Visuals,
	}
}

func creepView(c *component.Creep, slowed bool) CreepView {
	return CreepView{
		ID:        uint64(c.ID),
		Type:      c.Def.ID,
		Name:      c.Def.Name,
		Level:     c.Level,
		HP:        c.HP,
		MaxHP:     c.MaxHP,
		Speed:     c.Speed,
		Worth:     c.Worth,
		Radius:    c.Radius(),
		Position:  c.Position,
		Direction: c.Direction,
		Slowed:    slowed,
		Visuals:   c.Def.Visuals,
	}
}
