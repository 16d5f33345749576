// internal/ui/tower_menu.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
)

const (
	menuPadding   = 10
	buttonHeight  = 28
	buttonSpacing = 6
)

// ActionKind is what a menu click asks the game to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionChooseTower
	ActionUpgrade
	ActionSell
	ActionStart
)

// Action is the result of a click on the menu.
type Action struct {
	Kind    ActionKind
	TowerID string
}

// TowerMenu is the column right of the playfield: one button per tower
// archetype, then upgrade, sell and start.
type TowerMenu struct {
	X, Width int
	Towers   []*Button
	towerIDs []string
	Upgrade  *Button
	Sell     *Button
	Start    *Button
	InfoTop  int // first free row below the buttons
}

// NewTowerMenu lays out buttons for the library's towers in menu order.
func NewTowerMenu(lib *defs.Library, x, width, top int) *TowerMenu {
	m := &TowerMenu{X: x, Width: width}
	y := top
	next := func(label string) *Button {
		b := NewButton(image.Rect(x+menuPadding, y, x+width-menuPadding, y+buttonHeight), label)
		y += buttonHeight + buttonSpacing
		return b
	}
	for i, t := range lib.Towers {
		label := fmt.Sprintf("%s $%d", t.Name, t.BuildCost())
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		m.Towers = append(m.Towers, next(label))
		m.towerIDs = append(m.towerIDs, t.ID)
	}
	y += buttonSpacing
	m.Upgrade = next("Upgrade (U)")
	m.Sell = next("Sell (S)")
	m.Start = next("Start (Space)")
	m.InfoTop = y + buttonSpacing
	return m
}

// TowerID returns the archetype bound to hotkey n (1-based).
func (m *TowerMenu) TowerID(n int) (string, bool) {
	if n < 1 || n > len(m.towerIDs) {
		return "", false
	}
	return m.towerIDs[n-1], true
}

// Sync enables and highlights buttons from the snapshot.
func (m *TowerMenu) Sync(s *app.Snapshot, lib *defs.Library) {
	for i, b := range m.Towers {
		def := &lib.Towers[i]
		b.Enabled = s.Cash >= def.BuildCost()
		b.Active = s.BuildObject == def.ID
	}
	sel := s.Selection.Tower
	m.Upgrade.Enabled = sel != nil && sel.UpgradeCost > 0 && sel.Level < sel.MaxLevel && s.Cash >= sel.UpgradeCost
	m.Upgrade.Text = "Upgrade (U)"
	if sel != nil && sel.Level < sel.MaxLevel {
		m.Upgrade.Text = fmt.Sprintf("Upgrade $%d", sel.UpgradeCost)
	}
	m.Sell.Enabled = sel != nil
	m.Sell.Text = "Sell (S)"
	if sel != nil {
		m.Sell.Text = fmt.Sprintf("Sell +$%d", sel.Worth)
	}
	m.Start.Enabled = s.Phase == component.NotStarted
}

// HitTest maps a click to an action.
func (m *TowerMenu) HitTest(x, y int) Action {
	for i, b := range m.Towers {
		if b.IsClicked(x, y) {
			return Action{Kind: ActionChooseTower, TowerID: m.towerIDs[i]}
		}
	}
	switch {
	case m.Upgrade.IsClicked(x, y):
		return Action{Kind: ActionUpgrade}
	case m.Sell.IsClicked(x, y):
		return Action{Kind: ActionSell}
	case m.Start.IsClicked(x, y):
		return Action{Kind: ActionStart}
	}
	return Action{}
}

func (m *TowerMenu) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	for _, b := range m.Towers {
		b.Draw(screen, face, cursorX, cursorY)
	}
	m.Upgrade.Draw(screen, face, cursorX, cursorY)
	m.Sell.Draw(screen, face, cursorX, cursorY)
	m.Start.Draw(screen, face, cursorX, cursorY)
}
