// internal/defs/defaults.go
package defs

import "image/color"

// DefaultLibrary returns the built-in archetypes. Each call returns a fresh
// copy that the caller may modify.
func DefaultLibrary() *Library {
	return &Library{
		Towers: []TowerDefinition{
			{
				ID:               "arrow",
				Name:             "Arrow",
				MaxLevel:         3,
				DamageLevels:     []float64{10, 16, 25},
				RangeLevels:      []float64{80, 95, 110},
				FireRateLevels:   []int{30, 26, 22},
				CostLevels:       []int{20, 15, 25},
				WorthLevels:      []int{15, 26, 45},
				Target:           TargetLocked,
				ProjectileSpeed:  6,
				ProjectileRadius: 2,
				Visuals:          Visuals{Color: color.RGBA{108, 127, 97, 255}, Glyph: "A"},
			},
			{
				ID:               "cannon",
				Name:             "Cannon",
				MaxLevel:         3,
				DamageLevels:     []float64{18, 28, 40},
				RangeLevels:      []float64{70, 80, 90},
				FireRateLevels:   []int{60, 55, 50},
				SplashLevels:     []float64{18, 24, 30},
				CostLevels:       []int{45, 35, 50},
				WorthLevels:      []int{35, 60, 95},
				Target:           TargetGround,
				ProjectileSpeed:  4,
				ProjectileRadius: 4,
				Visuals:          Visuals{Color: color.RGBA{90, 80, 70, 255}, Glyph: "C"},
			},
			{
				ID:               "frost",
				Name:             "Frost",
				MaxLevel:         2,
				DamageLevels:     []float64{3, 6},
				RangeLevels:      []float64{75, 90},
				FireRateLevels:   []int{40, 32},
				CostLevels:       []int{35, 30},
				WorthLevels:      []int{25, 50},
				Target:           TargetLocked,
				ProjectileSpeed:  5,
				ProjectileRadius: 3,
				OnHit:            &EffectDefinition{Kind: EffectSlow, Duration: 90, Factor: 0.5},
				Visuals:          Visuals{Color: color.RGBA{80, 150, 220, 255}, Glyph: "F"},
			},
			{
				ID:               "venom",
				Name:             "Venom",
				MaxLevel:         2,
				DamageLevels:     []float64{2, 4},
				RangeLevels:      []float64{85, 100},
				FireRateLevels:   []int{45, 40},
				CostLevels:       []int{40, 35},
				WorthLevels:      []int{30, 55},
				Target:           TargetLocked,
				ProjectileSpeed:  5,
				ProjectileRadius: 2,
				OnHit:            &EffectDefinition{Kind: EffectPoison, Duration: 120, DamagePerTick: 0.25},
				Visuals:          Visuals{Color: color.RGBA{120, 200, 60, 255}, Glyph: "V"},
			},
		},
		Creeps: []CreepDefinition{
			{
				ID:          "grunt",
				Name:        "Grunt",
				Radius:      6,
				HPLevels:    []float64{30, 60, 110, 180},
				WorthLevels: []int{2, 3, 5, 8},
				SpeedRange:  [2]float64{0.8, 1.2},
				Visuals:     Visuals{Color: color.RGBA{191, 90, 60, 255}, Glyph: "g"},
			},
			{
				ID:          "runner",
				Name:        "Runner",
				Radius:      4,
				HPLevels:    []float64{18, 35, 70},
				WorthLevels: []int{2, 4, 6},
				SpeedRange:  [2]float64{1.6, 2.2},
				Visuals:     Visuals{Color: color.RGBA{220, 180, 60, 255}, Glyph: "r"},
			},
			{
				ID:          "brute",
				Name:        "Brute",
				Radius:      9,
				HPLevels:    []float64{150, 320, 600},
				WorthLevels: []int{10, 18, 30},
				SpeedRange:  [2]float64{0.5, 0.7},
				Visuals:     Visuals{Color: color.RGBA{130, 40, 40, 255}, Glyph: "B"},
			},
		},
		Waves: []WaveDefinition{
			{CreepID: "grunt", Level: 1, Count: 8, SpawnInterval: 45},
			{CreepID: "grunt", Level: 2, Count: 10, SpawnInterval: 40},
			{CreepID: "runner", Level: 1, Count: 12, SpawnInterval: 25},
			{CreepID: "grunt", Level: 3, Count: 12, SpawnInterval: 35},
			{CreepID: "brute", Level: 1, Count: 4, SpawnInterval: 90},
			{CreepID: "runner", Level: 2, Count: 16, SpawnInterval: 20},
			{CreepID: "grunt", Level: 4, Count: 16, SpawnInterval: 30},
			{CreepID: "brute", Level: 2, Count: 6, SpawnInterval: 80},
			{CreepID: "runner", Level: 3, Count: 20, SpawnInterval: 18},
			{CreepID: "brute", Level: 3, Count: 8, SpawnInterval: 70},
		},
	}
}
