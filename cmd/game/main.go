// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "", "JSON settings file (defaults to the built-in map)")
	defsPath := flag.String("defs", "", "JSON tower, creep and wave definitions (defaults to the built-in library)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	mute := flag.Bool("mute", false, "disable sound")
	showMenu := flag.Bool("menu", false, "start on the title screen")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		s, err := config.LoadSettings(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = s
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	var library *defs.Library
	if *defsPath != "" {
		lib, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			log.Fatal(err)
		}
		library = lib
	}

	session := &state.Session{Settings: settings, Library: library, Logger: log.Default()}
	if !*mute {
		sound := audio.NewSoundManager(audio.DefaultConfig())
		if err := sound.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			session.Sound = sound
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine()
	if *showMenu {
		sm.SetState(state.NewMenuState(sm, session))
	} else {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Creep Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
