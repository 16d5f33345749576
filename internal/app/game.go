// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/system"
	"go-creep-defense/internal/utils"
	"go-creep-defense/pkg/gridmap"
)

// Config is everything needed to build a Game.
type Config struct {
	Settings config.Settings
	Library  *defs.Library // nil uses defs.DefaultLibrary()

	// OnGameEnd is called once with the final score when the game ends.
	OnGameEnd func(score int)
	// Events receives engine events. nil creates a private dispatcher.
	Events *event.Dispatcher
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Game owns the entity collections, the economy and the run phase. It is the
// only thing frontends talk to. A Game is not safe for concurrent use.
type Game struct {
	settings config.Settings
	library  *defs.Library
	grid     *gridmap.Grid
	paths    []gridmap.Path
	layout   gridmap.Layout

	world     *entity.World
	economy   component.Economy
	phase     component.RunPhase
	wave      *component.Wave
	selection component.Selection
	build     *defs.TowerDefinition
	occupied  map[gridmap.Cell]*component.Tower
	won       bool

	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem

	ctx       *system.TickContext
	onGameEnd func(score int)
	logger    *log.Logger
}

// NewGame validates cfg and builds a game in the not-started phase. Every
// failure is a *defs.ConfigError and no game is returned.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	library := cfg.Library
	if library == nil {
		library = defs.DefaultLibrary()
	}
	if err := library.Validate(); err != nil {
		return nil, err
	}
	for i := range library.Towers {
		t := &library.Towers[i]
		if t.OnHit != nil && !system.HasEffect(t.OnHit.Kind) {
			return nil, defs.Invalid(fmt.Sprintf("tower %q", t.ID), "unknown effect kind %q", t.OnHit.Kind)
		}
	}
	grid, err := gridmap.Parse(cfg.Settings.Map, cfg.Settings.Blocked)
	if err != nil {
		return nil, &defs.ConfigError{Source: "map", Err: err}
	}
	paths, err := gridmap.DeriveAll(grid)
	if err != nil {
		return nil, &defs.ConfigError{Source: "map", Err: err}
	}
	if len(paths) == 0 && len(library.Waves) > 0 {
		return nil, defs.Invalid("map", "no spawn cell for %d waves", len(library.Waves))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	dispatcher := cfg.Events
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	g := &Game{
		settings:           cfg.Settings,
		library:            library,
		grid:               grid,
		paths:              paths,
		layout:             gridmap.NewLayout(grid, cfg.Settings.Width, cfg.Settings.Height),
		world:              entity.NewWorld(),
		economy:            component.Economy{Cash: cfg.Settings.Cash, Score: cfg.Settings.Score, Lives: cfg.Settings.Lives},
		phase:              component.NotStarted,
		occupied:           make(map[gridmap.Cell]*component.Tower),
		EventDispatcher:    dispatcher,
		Rng:                utils.NewPRNGService(cfg.Settings.Seed),
		StatusEffectSystem: system.NewStatusEffectSystem(),
		MovementSystem:     system.NewMovementSystem(),
		CombatSystem:       system.NewCombatSystem(),
		ProjectileSystem:   system.NewProjectileSystem(),
		WaveSystem:         system.NewWaveSystem(library, cfg.Settings.TimeBetweenWaves),
		onGameEnd:          cfg.OnGameEnd,
		logger:             logger,
	}
	g.wave = g.WaveSystem.NewWave()
	g.ctx = &system.TickContext{
		World:   g.world,
		Grid:    g.grid,
		Paths:   g.paths,
		Layout:  g.layout,
		Economy: &g.economy,
		Rng:     g.Rng,
		Events:  g.EventDispatcher,
	}

	listener := &GameEventListener{game: g}
	dispatcher.SubscribeAll(listener, event.WaveStarted, event.WaveCleared)

	return g, nil
}

// GameEventListener logs wave transitions.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	data, ok := e.Data.(event.WaveData)
	if !ok {
		return
	}
	switch e.Type {
	case event.WaveStarted:
		l.game.logger.Printf("Wave %d/%d started", data.Number, data.Total)
	case event.WaveCleared:
		l.game.logger.Printf("Wave %d/%d cleared", data.Number, data.Total)
	}
}

// Start moves the game from not-started to running. It only succeeds once.
func (g *Game) Start() bool {
	if g.phase != component.NotStarted {
		return false
	}
	g.phase = component.Running
	g.logger.Printf("Game started with seed %d, %d paths, %d waves", g.Rng.Seed(), len(g.paths), len(g.library.Waves))
	return true
}

// Tick advances the simulation by one step. It does nothing unless the game
// is running.
func (g *Game) Tick() {
	if g.phase != component.Running {
		return
	}
	if g.economy.Lives <= 0 {
		g.end(false)
		return
	}
	g.ctx.Tick++
	ctx := g.ctx

	g.StatusEffectSystem.Update(ctx)
	g.world.Flush()
	g.MovementSystem.Update(ctx)
	g.world.Flush()
	g.CombatSystem.Update(ctx)
	g.world.Flush()
	g.ProjectileSystem.Update(ctx)
	g.world.Flush()

	g.world.Sweep()
	if c := g.selection.Creep; c != nil && c.Destroyed {
		g.selection = component.Selection{}
	}

	complete := g.WaveSystem.Update(ctx, g.wave)
	g.world.Flush()

	switch {
	case g.economy.Lives <= 0:
		g.end(false)
	case complete:
		g.end(true)
	}
}

func (g *Game) end(won bool) {
	g.phase = component.Ended
	g.won = won
	g.logger.Printf("Game over after %d ticks: score %d, won %v", g.ctx.Tick, g.economy.Score, won)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameEnded, Data: event.GameEndData{Score: g.economy.Score, Won: won}})
	if g.onGameEnd != nil {
		g.onGameEnd(g.economy.Score)
	}
}

// Phase returns the run phase.
func (g *Game) Phase() component.RunPhase { return g.phase }

// Grid returns the parsed map. Callers must not modify it.
func (g *Game) Grid() *gridmap.Grid { return g.grid }

// Paths returns the derived paths in spawn order.
func (g *Game) Paths() []gridmap.Path { return append([]gridmap.Path(nil), g.paths...) }

// Layout returns the cell geometry of the playfield.
func (g *Game) Layout() gridmap.Layout { return g.layout }

// Library returns the archetypes the game was built from.
func (g *Game) Library() *defs.Library { return g.library }
