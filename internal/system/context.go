// internal/system/context.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/utils"
	"go-creep-defense/pkg/gridmap"
)

// TickContext is everything a system may touch during one tick. Systems read
// the grid and layout and write entities only through the World queues.
type TickContext struct {
	Tick    uint64
	World   *entity.World
	Grid    *gridmap.Grid
	Paths   []gridmap.Path
	Layout  gridmap.Layout
	Economy *component.Economy
	Rng     *utils.PRNGService
	Events  *event.Dispatcher
}
