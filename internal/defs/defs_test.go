package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLibraryIsValid(t *testing.T) {
	if err := DefaultLibrary().Validate(); err != nil {
		t.Fatalf("default library failed validation: %v", err)
	}
}

func TestDefaultLibraryReturnsFreshCopies(t *testing.T) {
	a := DefaultLibrary()
	a.Towers[0].DamageLevels[0] = 999
	b := DefaultLibrary()
	if b.Towers[0].DamageLevels[0] == 999 {
		t.Fatalf("expected DefaultLibrary to return independent tables")
	}
}

func TestTowerLevelIndexing(t *testing.T) {
	d := TowerDefinition{
		ID:               "t",
		MaxLevel:         3,
		DamageLevels:     []float64{1, 2, 3},
		RangeLevels:      []float64{10, 20, 30},
		FireRateLevels:   []int{5, 4, 3},
		SplashLevels:     []float64{0, 1, 2},
		CostLevels:       []int{100, 50, 70},
		WorthLevels:      []int{80, 120, 175},
		Target:           TargetGround,
		ProjectileSpeed:  1,
		ProjectileRadius: 1,
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.BuildCost() != 100 {
		t.Fatalf("build cost = %d, want 100", d.BuildCost())
	}
	if c, ok := d.UpgradeCost(1); !ok || c != 50 {
		t.Fatalf("upgrade 1->2 = %d,%v want 50,true", c, ok)
	}
	if c, ok := d.UpgradeCost(2); !ok || c != 70 {
		t.Fatalf("upgrade 2->3 = %d,%v want 70,true", c, ok)
	}
	if _, ok := d.UpgradeCost(3); ok {
		t.Fatalf("expected no upgrade at max level")
	}
	s := d.StatsAt(2)
	if s.Damage != 2 || s.Range != 20 || s.FireRate != 4 || s.Splash != 1 || s.Worth != 120 {
		t.Fatalf("unexpected level 2 stats: %+v", s)
	}
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]func(l *Library){
		"short damage table": func(l *Library) { l.Towers[0].DamageLevels = l.Towers[0].DamageLevels[:1] },
		"zero fire rate":     func(l *Library) { l.Towers[0].FireRateLevels[0] = 0 },
		"bad target mode":    func(l *Library) { l.Towers[0].Target = "sideways" },
		"no projectile speed": func(l *Library) {
			l.Towers[0].ProjectileSpeed = 0
		},
		"effect without duration": func(l *Library) { l.Towers[2].OnHit.Duration = 0 },
		"inverted speed range":    func(l *Library) { l.Creeps[0].SpeedRange = [2]float64{2, 1} },
		"unknown wave creep":      func(l *Library) { l.Waves[0].CreepID = "ghost" },
		"wave level too high":     func(l *Library) { l.Waves[0].Level = 99 },
		"duplicate tower":         func(l *Library) { l.Towers[1].ID = l.Towers[0].ID },
		"no towers":               func(l *Library) { l.Towers = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			lib := DefaultLibrary()
			mutate(lib)
			err := lib.Validate()
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestParseLibrary(t *testing.T) {
	data := `{
		"towers": [{
			"id": "bolt", "name": "Bolt", "max_level": 1,
			"damage_levels": [5], "range_levels": [50], "fire_rate_levels": [10],
			"cost_levels": [10], "worth_levels": [7],
			"target": "locked", "projectile_speed": 3, "projectile_radius": 1
		}],
		"creeps": [{
			"id": "blob", "radius": 5, "hp_levels": [10], "worth_levels": [1],
			"speed_range": [1, 1]
		}],
		"waves": [{"creep": "blob", "level": 1, "count": 3, "spawn_interval": 10}]
	}`
	lib, err := ParseLibrary([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tower, ok := lib.Tower("bolt")
	if !ok || tower.WorthLevels[0] != 7 {
		t.Fatalf("tower not decoded: %+v", tower)
	}
	if _, ok := lib.Creep("blob"); !ok {
		t.Fatalf("creep not decoded")
	}
	if len(lib.Waves) != 1 || lib.Waves[0].Count != 3 {
		t.Fatalf("waves not decoded: %+v", lib.Waves)
	}
}

func TestParseLibraryRejectsUnknownFields(t *testing.T) {
	_, err := ParseLibrary([]byte(`{"towerz": []}`))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadLibraryMissingFile(t *testing.T) {
	_, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrConfiguration) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Fatalf("expected error to name the file, got %q", err)
	}
}
