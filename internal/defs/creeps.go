// internal/defs/creeps.go
package defs

import "fmt"

// CreepDefinition holds the static data of a creep archetype. HPLevels and
// WorthLevels are indexed by level-1.
type CreepDefinition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Radius      float64    `json:"radius"`
	HPLevels    []float64  `json:"hp_levels"`
	WorthLevels []int      `json:"worth_levels"`
	SpeedRange  [2]float64 `json:"speed_range"` // pixels per tick, sampled once per creep
	Visuals     Visuals    `json:"visuals"`
}

// MaxLevel is the highest level both tables cover.
func (d *CreepDefinition) MaxLevel() int {
	return min(len(d.HPLevels), len(d.WorthLevels))
}

func (d *CreepDefinition) HP(level int) float64 { return d.HPLevels[level-1] }

func (d *CreepDefinition) Worth(level int) int { return d.WorthLevels[level-1] }

func (d *CreepDefinition) Validate() error {
	src := fmt.Sprintf("creep %q", d.ID)
	if d.ID == "" {
		return Invalid("creep", "missing id")
	}
	if d.MaxLevel() < 1 {
		return Invalid(src, "hp_levels and worth_levels need at least one entry")
	}
	if d.Radius < 0 {
		return Invalid(src, "radius is negative")
	}
	lo, hi := d.SpeedRange[0], d.SpeedRange[1]
	if lo <= 0 || hi < lo {
		return Invalid(src, "speed_range [%g, %g] must satisfy 0 < min <= max", lo, hi)
	}
	for i := 0; i < d.MaxLevel(); i++ {
		if d.HPLevels[i] <= 0 {
			return Invalid(src, "hp_levels[%d] must be positive", i)
		}
	}
	return nil
}
