// internal/component/entity.go
package component

// EntityID identifies an entity for the lifetime of a game.
type EntityID uint64
