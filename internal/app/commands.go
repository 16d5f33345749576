// internal/app/commands.go
package app

import "go-creep-defense/pkg/utils"

// CommandKind is a player action shared by the frontends.
type CommandKind int

const (
	CmdClick CommandKind = iota
	CmdCancel
	CmdChooseTower
	CmdUpgrade
	CmdSell
	CmdStart
)

// Command is a player action with its arguments.
type Command struct {
	Kind    CommandKind
	Point   utils.Point // CmdClick
	TowerID string      // CmdChooseTower
}

// Execute applies cmd and reports whether it changed anything.
//
// A click builds the chosen archetype when the cell accepts it and selects
// whatever is under the point otherwise. Cancel drops both the build choice
// and the selection.
func (g *Game) Execute(cmd Command) bool {
	switch cmd.Kind {
	case CmdClick:
		if id := g.BuildObject(); id != "" && g.BuildAt(cmd.Point, id) {
			return true
		}
		return g.SelectAt(cmd.Point)
	case CmdCancel:
		changed := g.build != nil || !g.selection.Empty()
		g.build = nil
		g.selection.Tower, g.selection.Creep = nil, nil
		return changed
	case CmdChooseTower:
		return g.ChooseBuildObject(cmd.TowerID)
	case CmdUpgrade:
		return g.UpgradeSelected()
	case CmdSell:
		return g.SellSelected()
	case CmdStart:
		return g.Start()
	}
	return false
}
