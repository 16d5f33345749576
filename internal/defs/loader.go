// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Library is the full set of archetypes a game is built from.
type Library struct {
	Towers []TowerDefinition `json:"towers"` // menu order
	Creeps []CreepDefinition `json:"creeps"`
	Waves  []WaveDefinition  `json:"waves"`
}

// Tower looks up a tower archetype by id.
func (l *Library) Tower(id string) (*TowerDefinition, bool) {
	for i := range l.Towers {
		if l.Towers[i].ID == id {
			return &l.Towers[i], true
		}
	}
	return nil, false
}

// Creep looks up a creep archetype by id.
func (l *Library) Creep(id string) (*CreepDefinition, bool) {
	for i := range l.Creeps {
		if l.Creeps[i].ID == id {
			return &l.Creeps[i], true
		}
	}
	return nil, false
}

// Validate checks every archetype and every wave reference.
func (l *Library) Validate() error {
	if len(l.Towers) == 0 {
		return Invalid("library", "no tower definitions")
	}
	seen := make(map[string]bool)
	for i := range l.Towers {
		if err := l.Towers[i].Validate(); err != nil {
			return err
		}
		if seen[l.Towers[i].ID] {
			return Invalid("library", "duplicate tower id %q", l.Towers[i].ID)
		}
		seen[l.Towers[i].ID] = true
	}
	seen = make(map[string]bool)
	for i := range l.Creeps {
		if err := l.Creeps[i].Validate(); err != nil {
			return err
		}
		if seen[l.Creeps[i].ID] {
			return Invalid("library", "duplicate creep id %q", l.Creeps[i].ID)
		}
		seen[l.Creeps[i].ID] = true
	}
	for i, w := range l.Waves {
		src := fmt.Sprintf("wave %d", i+1)
		creep, ok := l.Creep(w.CreepID)
		if !ok {
			return Invalid(src, "unknown creep %q", w.CreepID)
		}
		if w.Level < 1 || w.Level > creep.MaxLevel() {
			return Invalid(src, "level %d outside 1..%d for creep %q", w.Level, creep.MaxLevel(), w.CreepID)
		}
		if w.Count < 0 || w.SpawnInterval < 0 {
			return Invalid(src, "count and spawn_interval must not be negative")
		}
	}
	return nil
}

// ParseLibrary decodes and validates a JSON library.
func ParseLibrary(data []byte) (*Library, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var lib Library
	if err := dec.Decode(&lib); err != nil {
		return nil, &ConfigError{Source: "library", Err: fmt.Errorf("failed to unmarshal definitions: %w", err)}
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// LoadLibrary reads a JSON library file.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: fmt.Errorf("failed to read definitions file: %w", err)}
	}
	lib, err := ParseLibrary(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d tower, %d creep and %d wave definitions", len(lib.Towers), len(lib.Creeps), len(lib.Waves))
	return lib, nil
}
