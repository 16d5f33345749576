// internal/defs/waves.go
package defs

// WaveDefinition describes one batch of creeps.
type WaveDefinition struct {
	CreepID       string `json:"creep"`
	Level         int    `json:"level"`
	Count         int    `json:"count"`
	SpawnInterval int    `json:"spawn_interval"` // ticks between spawns
}
