// internal/system/wave.go
package system

import (
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
)

// WaveSystem releases the configured waves one after another. A wave starts
// after a countdown, spawns its creeps at a fixed interval on random paths
// and is cleared once every creep it spawned is gone.
type WaveSystem struct {
	library          *defs.Library
	timeBetweenWaves int
}

func NewWaveSystem(library *defs.Library, timeBetweenWaves int) *WaveSystem {
	return &WaveSystem{library: library, timeBetweenWaves: timeBetweenWaves}
}

// NewWave returns the scheduler state for a fresh game.
func (s *WaveSystem) NewWave() *component.Wave {
	w := &component.Wave{Total: len(s.library.Waves)}
	s.arm(w)
	return w
}

func (s *WaveSystem) arm(w *component.Wave) {
	w.WaveStart = s.timeBetweenWaves
	w.LastSpawn = 0
	w.Spawned = 0
	w.Target = 0
	if w.Index < w.Total {
		w.Target = s.library.Waves[w.Index].Count
	}
}

// Update advances the scheduler by one tick and reports whether every wave
// has been released and cleared.
func (s *WaveSystem) Update(ctx *TickContext, w *component.Wave) bool {
	if w.Index >= w.Total {
		return true
	}
	if w.WaveStart > 0 {
		w.WaveStart--
		return false
	}
	if w.Spawned >= w.Target {
		if ctx.World.LiveCreeps() > 0 || ctx.World.Pending() {
			return false
		}
		cleared := w.Index + 1
		w.Index++
		s.arm(w)
		ctx.Events.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Number: cleared, Total: w.Total}})
		return w.Index >= w.Total
	}
	if w.LastSpawn > 0 {
		w.LastSpawn--
	}
	if w.LastSpawn > 0 {
		return false
	}
	s.spawn(ctx, w)
	return false
}

func (s *WaveSystem) spawn(ctx *TickContext, w *component.Wave) {
	wd := s.library.Waves[w.Index]
	w.LastSpawn = wd.SpawnInterval
	w.Spawned++
	if w.Spawned == 1 {
		ctx.Events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: w.Index + 1, Total: w.Total}})
	}
	def, ok := s.library.Creep(wd.CreepID)
	if !ok {
		log.Printf("Error: creep definition not found for ID: %s", wd.CreepID)
		return
	}
	if len(ctx.Paths) == 0 {
		log.Printf("Error: no path to spawn creep %s on", wd.CreepID)
		return
	}
	path := ctx.Paths[ctx.Rng.Intn(len(ctx.Paths))]
	ctx.World.QueueCreep(NewCreep(ctx, def, wd.Level, path))
}

// TicksToNextWave is the countdown shown by the HUD; zero while a wave runs.
func TicksToNextWave(w *component.Wave) int {
	if w.Stage() != component.WaveIdle {
		return 0
	}
	return w.WaveStart
}
