// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-creep-defense/internal/event"
)

// Config controls the sound output.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
	MaxVoices  int // cues playing at once; extra cues are dropped
}

func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.4, SampleRate: 44100, MaxVoices: 6}
}

// SoundManager plays a cue for every engine event it is subscribed to. It
// works without an audio device; cues are then mixed but never heard.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = DefaultConfig().MaxVoices
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(keepAlive{sm.mixer})
	sm.initialized = true
	return nil
}

// Cleanup silences everything that is playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.mixer.Clear()
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.CreepKilled, event.CreepLeaked,
		event.TowerBuilt, event.TowerUpgraded, event.TowerSold,
		event.WaveStarted, event.GameEnded)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := CueFor(e); ok {
		sm.Play(cue)
	}
}

// Play mixes in cue unless the voice limit is reached.
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return false
	}
	s := withVolume(Synth(cue, sm.rate), sm.cfg.Volume)
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if sm.mixer.Len() >= sm.cfg.MaxVoices {
		return false
	}
	sm.mixer.Add(s)
	return true
}

// Voices reports how many cues are still playing.
func (sm *SoundManager) Voices() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

// Mixer exposes the output stream, for tests and offline rendering.
func (sm *SoundManager) Mixer() beep.Streamer { return sm.mixer }

// keepAlive pads the mixer with silence so the speaker never drops it while
// no cue is playing.
type keepAlive struct {
	mixer *beep.Mixer
}

func (k keepAlive) Stream(samples [][2]float64) (n int, ok bool) {
	n, _ = k.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (k keepAlive) Err() error { return nil }
