// internal/term/term.go
package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
)

// Config is what the terminal frontend needs to build games.
type Config struct {
	Settings config.Settings
	Library  *defs.Library
	Sound    *audio.SoundManager // nil when muted
	Logger   *log.Logger
	Tick     time.Duration // defaults to config.TickInterval
}

// App runs a game in a terminal. Input and ticks are handled on the
// goroutine that calls Run.
type App struct {
	screen   tcell.Screen
	cfg      Config
	game     *app.Game
	renderer *Renderer
	input    *Input
	towerIDs []string
	paused   bool
}

// New builds the first game. The screen must already be initialised.
func New(screen tcell.Screen, cfg Config) (*App, error) {
	if cfg.Tick <= 0 {
		cfg.Tick = config.TickInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	a := &App{screen: screen, cfg: cfg}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) restart() error {
	events := event.NewDispatcher()
	if a.cfg.Sound != nil {
		a.cfg.Sound.Subscribe(events)
	}
	g, err := app.NewGame(app.Config{
		Settings: a.cfg.Settings,
		Library:  a.cfg.Library,
		Events:   events,
		Logger:   a.cfg.Logger,
	})
	if err != nil {
		return err
	}
	a.game = g
	a.towerIDs = nil
	for _, t := range g.Library().Towers {
		a.towerIDs = append(a.towerIDs, t.ID)
	}
	a.renderer = NewRenderer(a.screen, g.Grid(), g.Paths(), g.Layout())
	a.input = NewInput(g.Grid(), g.Layout(), a.towerIDs)
	a.paused = false
	return nil
}

// Game returns the game being played.
func (a *App) Game() *app.Game { return a.game }

// Paused reports whether ticking is suspended.
func (a *App) Paused() bool { return a.paused }

// HandleEvent applies one terminal event. It returns false when the player
// quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return true
	}
	act, cmd := a.input.Handle(ev, a.renderer)
	switch act {
	case ActQuit:
		return false
	case ActPause:
		a.paused = !a.paused && a.game.Phase() == component.Running
	case ActRestart:
		if a.game.Phase() == component.Ended {
			if err := a.restart(); err != nil {
				a.cfg.Logger.Printf("Cannot restart game: %v", err)
			}
		}
	case ActCommand:
		a.game.Execute(cmd)
	}
	return true
}

// Step advances the game one tick unless it is paused.
func (a *App) Step() {
	if !a.paused {
		a.game.Tick()
	}
}

// Draw renders the current snapshot.
func (a *App) Draw() {
	s := a.game.Snapshot()
	a.renderer.Draw(&s, a.input.Cursor(), a.towerIDs)
}

// Run ticks the game at the configured cadence and redraws after every tick
// or event until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(a.cfg.Tick)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
}
