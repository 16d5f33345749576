// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"go-creep-defense/internal/event"
)

// Cue identifies a sound played for an engine event.
type Cue int

const (
	CueKill Cue = iota
	CueLeak
	CueBuild
	CueUpgrade
	CueSell
	CueWave
	CueWin
	CueLose
)

const ms = time.Millisecond

// CueFor maps an event to its cue.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.CreepKilled:
		return CueKill, true
	case event.CreepLeaked:
		return CueLeak, true
	case event.TowerBuilt:
		return CueBuild, true
	case event.TowerUpgraded:
		return CueUpgrade, true
	case event.TowerSold:
		return CueSell, true
	case event.WaveStarted:
		return CueWave, true
	case event.GameEnded:
		if data, ok := e.Data.(event.GameEndData); ok && data.Won {
			return CueWin, true
		}
		return CueLose, true
	}
	return 0, false
}

// Synth builds the finite streamer for cue.
func Synth(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueKill:
		return sequence(rate, note{1318.5, 40 * ms, WaveSine}, note{1760, 50 * ms, WaveSine})
	case CueLeak:
		return sequence(rate, note{110, 220 * ms, WaveSaw})
	case CueBuild:
		return sequence(rate, note{523.3, 60 * ms, WaveSquare}, note{784, 80 * ms, WaveSquare})
	case CueUpgrade:
		return sequence(rate, note{523.3, 50 * ms, WaveSine}, note{659.3, 50 * ms, WaveSine}, note{784, 90 * ms, WaveSine})
	case CueSell:
		return sequence(rate, note{987.8, 60 * ms, WaveSine}, note{1318.5, 120 * ms, WaveSine})
	case CueWave:
		return sequence(rate, note{220, 150 * ms, WaveSquare}, note{220, 60 * ms, WaveSquare}, note{330, 200 * ms, WaveSquare})
	case CueWin:
		return sequence(rate, note{523.3, 120 * ms, WaveSine}, note{659.3, 120 * ms, WaveSine}, note{784, 120 * ms, WaveSine}, note{1046.5, 300 * ms, WaveSine})
	default:
		return sequence(rate, note{392, 200 * ms, WaveSaw}, note{311.1, 200 * ms, WaveSaw}, note{196, 400 * ms, WaveSaw})
	}
}
