// internal/state/session.go
package state

import (
	"log"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
)

// Session holds what outlives a single game: the configuration, the sound
// output and the logger. Restarting builds a fresh game from it.
type Session struct {
	Settings config.Settings
	Library  *defs.Library
	Sound    *audio.SoundManager // nil when muted
	Logger   *log.Logger
}

// NewGame builds a game with its own dispatcher, wired to the sound output.
func (s *Session) NewGame(onEnd func(score int)) (*app.Game, error) {
	events := event.NewDispatcher()
	if s.Sound != nil {
		s.Sound.Subscribe(events)
	}
	return app.NewGame(app.Config{
		Settings:  s.Settings,
		Library:   s.Library,
		OnGameEnd: onEnd,
		Events:    events,
		Logger:    s.Logger,
	})
}
