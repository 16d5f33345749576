// internal/entity/world.go
package entity

import "go-creep-defense/internal/component"

// World owns the four entity collections. Slices keep insertion order, which
// for creeps is spawn order and drives target acquisition.
//
// Entities created while a phase iterates a collection go to the pending
// queues and are appended by Flush once the phase is over. Destroyed
// entities stay in place until Sweep.
type World struct {
	NextID      component.EntityID
	Towers      []*component.Tower
	Creeps      []*component.Creep
	Projectiles []*component.Projectile
	Effects     []component.Effect

	pendingTowers      []*component.Tower
	pendingCreeps      []*component.Creep
	pendingProjectiles []*component.Projectile
	pendingEffects     []component.Effect
}

func NewWorld() *World {
	return &World{NextID: 1}
}

// NewEntity hands out the next entity id.
func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) QueueTower(t *component.Tower) {
	w.pendingTowers = append(w.pendingTowers, t)
}

func (w *World) QueueCreep(c *component.Creep) {
	w.pendingCreeps = append(w.pendingCreeps, c)
}

func (w *World) QueueProjectile(p *component.Projectile) {
	w.pendingProjectiles = append(w.pendingProjectiles, p)
}

func (w *World) QueueEffect(e component.Effect) {
	w.pendingEffects = append(w.pendingEffects, e)
}

// Flush appends every queued entity to its collection.
func (w *World) Flush() {
	w.Towers = append(w.Towers, w.pendingTowers...)
	w.Creeps = append(w.Creeps, w.pendingCreeps...)
	w.Projectiles = append(w.Projectiles, w.pendingProjectiles...)
	w.Effects = append(w.Effects, w.pendingEffects...)
	w.pendingTowers = w.pendingTowers[:0]
	w.pendingCreeps = w.pendingCreeps[:0]
	w.pendingProjectiles = w.pendingProjectiles[:0]
	w.pendingEffects = w.pendingEffects[:0]
}

// Pending reports whether anything is queued.
func (w *World) Pending() bool {
	return len(w.pendingTowers)+len(w.pendingCreeps)+len(w.pendingProjectiles)+len(w.pendingEffects) > 0
}

// Sweep drops destroyed entities from all collections, keeping order.
func (w *World) Sweep() {
	w.Towers = compact(w.Towers, func(t *component.Tower) bool { return t.Destroyed })
	w.Creeps = compact(w.Creeps, func(c *component.Creep) bool { return c.Destroyed })
	w.Projectiles = compact(w.Projectiles, func(p *component.Projectile) bool { return p.Destroyed })
	w.Effects = compact(w.Effects, func(e component.Effect) bool { return e.Done() })
}

// LiveCreeps counts creeps that are not destroyed.
func (w *World) LiveCreeps() int {
	n := 0
	for _, c := range w.Creeps {
		if !c.Destroyed {
			n++
		}
	}
	return n
}

func compact[T any](items []T, destroyed func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !destroyed(it) {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
