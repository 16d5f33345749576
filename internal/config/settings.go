// internal/config/settings.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go-creep-defense/internal/defs"
)

// DefaultMap is a 16x10 map with two independent roads leaving through the
// bottom edge.
const DefaultMap = "" +
	"..c.........c..#\n" +
	"..r.......#.r...\n" +
	"..r.........rrr.\n" +
	"..r...........r.\n" +
	"..rrrrr.......r.\n" +
	"......r.......r.\n" +
	"......r..rrrrrr.\n" +
	"....#.r..r......\n" +
	"......r..r......\n" +
	"#.....r..r......"

// Settings is the per-game configuration passed to the engine.
type Settings struct {
	Map              string  `json:"map"`
	Blocked          string  `json:"blocked"` // runes treated as unbuildable scenery
	Width            float64 `json:"width"`   // playfield size in pixels
	Height           float64 `json:"height"`
	Cash             int     `json:"cash"`
	Score            int     `json:"score"`
	Lives            int     `json:"lives"`
	TimeBetweenWaves int     `json:"time_between_waves"` // ticks
	Seed             int64   `json:"seed"`               // 0 picks a time-based seed
}

// DefaultSettings returns settings for the built-in map sized to the ebiten
// playfield.
func DefaultSettings() Settings {
	return Settings{
		Map:              DefaultMap,
		Blocked:          "#",
		Width:            ScreenWidth - MenuWidth,
		Height:           ScreenHeight,
		Cash:             DefaultCash,
		Lives:            DefaultLives,
		TimeBetweenWaves: DefaultTimeBetweenWaves,
	}
}

// Validate checks the numeric settings. The map itself is validated when
// the game parses it.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return defs.Invalid("settings", "playfield size must be positive, got %gx%g", s.Width, s.Height)
	}
	if s.Lives < 1 {
		return defs.Invalid("settings", "lives must be at least 1")
	}
	if s.Cash < 0 || s.TimeBetweenWaves < 0 {
		return defs.Invalid("settings", "cash and time_between_waves must not be negative")
	}
	return nil
}

// LoadSettings reads JSON settings. Missing fields keep their defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, &defs.ConfigError{Source: path, Err: fmt.Errorf("failed to read settings file: %w", err)}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return s, &defs.ConfigError{Source: path, Err: fmt.Errorf("failed to unmarshal settings: %w", err)}
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
