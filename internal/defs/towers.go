// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds the per-level tables of a tower archetype.
//
// Level tables are indexed by level-1. CostLevels[0] is the build price and
// CostLevels[L] is the price of upgrading from level L to L+1. WorthLevels[L-1]
// is what a level L tower refunds when sold.
type TowerDefinition struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	MaxLevel         int               `json:"max_level"`
	DamageLevels     []float64         `json:"damage_levels"`
	RangeLevels      []float64         `json:"range_levels"`
	FireRateLevels   []int             `json:"fire_rate_levels"` // ticks between shots
	SplashLevels     []float64         `json:"splash_levels,omitempty"`
	CostLevels       []int             `json:"cost_levels"`
	WorthLevels      []int             `json:"worth_levels"`
	Target           TargetMode        `json:"target"`
	ProjectileSpeed  float64           `json:"projectile_speed"`
	ProjectileRadius float64           `json:"projectile_radius"`
	OnHit            *EffectDefinition `json:"on_hit,omitempty"`
	Visuals          Visuals           `json:"visuals"`
}

// TowerStats are the level-dependent values copied onto a tower instance.
type TowerStats struct {
	Damage   float64
	Range    float64
	FireRate int
	Splash   float64
	Worth    int
}

// StatsAt returns the stats of the archetype at level (1-based).
func (d *TowerDefinition) StatsAt(level int) TowerStats {
	i := level - 1
	s := TowerStats{
		Damage:   d.DamageLevels[i],
		Range:    d.RangeLevels[i],
		FireRate: d.FireRateLevels[i],
		Worth:    d.WorthLevels[i],
	}
	if len(d.SplashLevels) > 0 {
		s.Splash = d.SplashLevels[i]
	}
	return s
}

// BuildCost is the price of a level 1 tower.
func (d *TowerDefinition) BuildCost() int {
	return d.CostLevels[0]
}

// UpgradeCost is the price of going from level to level+1. ok is false at
// max level.
func (d *TowerDefinition) UpgradeCost(level int) (cost int, ok bool) {
	if level >= d.MaxLevel {
		return 0, false
	}
	return d.CostLevels[level], true
}

// Seeking reports whether projectiles home on their target.
func (d *TowerDefinition) Seeking() bool {
	return d.Target == TargetLocked
}

// Validate checks that every table covers MaxLevel levels.
func (d *TowerDefinition) Validate() error {
	src := fmt.Sprintf("tower %q", d.ID)
	if d.ID == "" {
		return Invalid("tower", "missing id")
	}
	if d.MaxLevel < 1 {
		return Invalid(src, "max_level must be at least 1, got %d", d.MaxLevel)
	}
	tables := []struct {
		name string
		n    int
	}{
		{"damage_levels", len(d.DamageLevels)},
		{"range_levels", len(d.RangeLevels)},
		{"fire_rate_levels", len(d.FireRateLevels)},
		{"cost_levels", len(d.CostLevels)},
		{"worth_levels", len(d.WorthLevels)},
	}
	if len(d.SplashLevels) > 0 {
		tables = append(tables, struct {
			name string
			n    int
		}{"splash_levels", len(d.SplashLevels)})
	}
	for _, tbl := range tables {
		if tbl.n < d.MaxLevel {
			return Invalid(src, "%s has %d entries, need %d", tbl.name, tbl.n, d.MaxLevel)
		}
	}
	for i := 0; i < d.MaxLevel; i++ {
		if d.FireRateLevels[i] < 1 {
			return Invalid(src, "fire_rate_levels[%d] must be at least 1 tick", i)
		}
		if d.RangeLevels[i] < 0 || d.DamageLevels[i] < 0 || d.CostLevels[i] < 0 || d.WorthLevels[i] < 0 {
			return Invalid(src, "negative value at level %d", i+1)
		}
		if len(d.SplashLevels) > 0 && d.SplashLevels[i] < 0 {
			return Invalid(src, "splash_levels[%d] is negative", i)
		}
	}
	switch d.Target {
	case TargetLocked, TargetGround:
	default:
		return Invalid(src, "unknown target mode %q", d.Target)
	}
	if d.ProjectileSpeed <= 0 {
		return Invalid(src, "projectile_speed must be positive")
	}
	if d.ProjectileRadius < 0 {
		return Invalid(src, "projectile_radius is negative")
	}
	if d.OnHit != nil {
		if err := d.OnHit.Validate(); err != nil {
			return &ConfigError{Source: src, Err: err}
		}
	}
	return nil
}
