package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-creep-defense/internal/event"
)

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)
	buf := make([][2]float64, 32)
	total := 0
	for i := 0; i < 10; i++ {
		n, ok := osc.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] != 1 && buf[j][0] != -1 {
				t.Fatalf("square sample out of range: %v", buf[j][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != 50 {
		t.Fatalf("expected 50 samples, got %d", total)
	}
}

func TestCueForEvents(t *testing.T) {
	cases := []struct {
		e    event.Event
		want Cue
	}{
		{event.Event{Type: event.CreepKilled}, CueKill},
		{event.Event{Type: event.CreepLeaked}, CueLeak},
		{event.Event{Type: event.TowerBuilt}, CueBuild},
		{event.Event{Type: event.TowerUpgraded}, CueUpgrade},
		{event.Event{Type: event.TowerSold}, CueSell},
		{event.Event{Type: event.WaveStarted}, CueWave},
		{event.Event{Type: event.GameEnded, Data: event.GameEndData{Won: true}}, CueWin},
		{event.Event{Type: event.GameEnded, Data: event.GameEndData{}}, CueLose},
	}
	for _, tc := range cases {
		got, ok := CueFor(tc.e)
		if !ok || got != tc.want {
			t.Errorf("CueFor(%s) = %v, %v; want %v", tc.e.Type, got, ok, tc.want)
		}
	}
	if _, ok := CueFor(event.Event{Type: event.WaveCleared}); ok {
		t.Errorf("WaveCleared has no cue")
	}
}

func drain(s beep.Streamer, limit int) (samples int, peak float64) {
	buf := make([][2]float64, 256)
	for samples < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		samples += n
		if !ok || n == 0 {
			break
		}
	}
	return samples, peak
}

func TestEveryCueIsFiniteAndAudible(t *testing.T) {
	rate := beep.SampleRate(8000)
	for cue := CueKill; cue <= CueLose; cue++ {
		n, peak := drain(Synth(cue, rate), rate.N(5*time.Second))
		if n == 0 || n >= rate.N(5*time.Second) {
			t.Errorf("cue %d: unexpected length %d", cue, n)
		}
		if peak < 0.1 {
			t.Errorf("cue %d is silent", cue)
		}
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	d := event.NewDispatcher()
	sm := NewSoundManager(Config{Enabled: true, Volume: 1, SampleRate: 8000, MaxVoices: 2})
	sm.Subscribe(d)

	d.Dispatch(event.Event{Type: event.CreepKilled})
	d.Dispatch(event.Event{Type: event.TowerBuilt})
	d.Dispatch(event.Event{Type: event.CreepLeaked})
	if sm.Voices() != 2 {
		t.Fatalf("expected the voice limit of 2, got %d", sm.Voices())
	}

	_, peak := drain(sm.Mixer(), 8000)
	if peak == 0 {
		t.Fatalf("mixer produced silence")
	}
	if sm.Voices() != 0 {
		t.Fatalf("expected finished cues to leave the mixer, %d left", sm.Voices())
	}
	sm.Cleanup()
}

func TestDisabledManagerPlaysNothing(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false})
	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled audio must not touch the device: %v", err)
	}
	if sm.Play(CueWin) || sm.Voices() != 0 {
		t.Fatalf("disabled manager played a cue")
	}
}

func TestSineOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(NewOscillator(440, 100*time.Millisecond, WaveSine, rate), 8000)
	if n != 800 {
		t.Fatalf("expected 800 samples, got %d", n)
	}
	if peak < 0.9 || peak > 1.0001 {
		t.Fatalf("sine peak %v outside [0.9, 1]", peak)
	}
}
