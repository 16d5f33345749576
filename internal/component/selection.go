// internal/component/selection.go
package component

// Selection is the entity the player has clicked on. At most one field is set.
type Selection struct {
	Tower *Tower
	Creep *Creep
}

func (s Selection) Empty() bool {
	return s.Tower == nil && s.Creep == nil
}
