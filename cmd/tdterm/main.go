// cmd/tdterm/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/term"
)

func main() {
	settingsPath := flag.String("settings", "", "JSON settings file (defaults to the built-in map)")
	defsPath := flag.String("defs", "", "JSON tower, creep and wave definitions (defaults to the built-in library)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write the game log to this file")
	flag.Parse()

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

	// the screen owns the terminal, so the log goes to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "", log.LstdFlags)

	cfg := term.Config{Settings: settings, Library: library, Logger: logger}
	if !*mute {
		sound := audio.NewSoundManager(audio.DefaultConfig())
		if err := sound.Initialize(); err != nil {
			logger.Printf("Sound disabled: %v", err)
		} else {
			cfg.Sound = sound
			defer sound.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a, err := term.New(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.Run(ctx); err != nil && err != context.Canceled {
		logger.Printf("Stopped: %v", err)
	}
}
