// internal/component/wave.go
package component

// WaveStage is the scheduler's state.
type WaveStage int

const (
	WaveIdle WaveStage = iota
	WaveSpawning
	WaveDraining
	WavesComplete
)

func (s WaveStage) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WavesComplete:
		return "complete"
	}
	return "unknown"
}

// Wave holds the scheduler counters. All durations are in ticks.
type Wave struct {
	Index     int // current wave, 0-based
	Total     int
	WaveStart int // countdown before the wave starts spawning
	LastSpawn int // countdown before the next spawn
	Spawned   int
	Target    int // creeps to spawn this wave
}

// Stage derives the scheduler state from the counters.
func (w *Wave) Stage() WaveStage {
	switch {
	case w.Index >= w.Total:
		return WavesComplete
	case w.WaveStart > 0:
		return WaveIdle
	case w.Spawned < w.Target:
		return WaveSpawning
	default:
		return WaveDraining
	}
}
