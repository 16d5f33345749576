// internal/term/input.go
package term

import (
	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/pkg/gridmap"
)

// Action is what a terminal event asks the loop to do.
type Action int

const (
	ActNone Action = iota
	ActCommand
	ActMove
	ActPause
	ActRestart
	ActQuit
)

// Input keeps the keyboard cursor and translates terminal events into engine
// commands.
type Input struct {
	grid     *gridmap.Grid
	layout   gridmap.Layout
	towerIDs []string
	cursor   gridmap.Cell
	buttons  tcell.ButtonMask
}

func NewInput(grid *gridmap.Grid, layout gridmap.Layout, towerIDs []string) *Input {
	return &Input{grid: grid, layout: layout, towerIDs: towerIDs}
}

// Cursor returns the cell under the keyboard cursor.
func (in *Input) Cursor() gridmap.Cell { return in.cursor }

// Handle maps ev to an action. The command is only meaningful with
// ActCommand.
func (in *Input) Handle(ev tcell.Event, r *Renderer) (Action, app.Command) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		return in.mouse(ev, r)
	}
	return ActNone, app.Command{}
}

func (in *Input) key(ev *tcell.EventKey) (Action, app.Command) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActQuit, app.Command{}
	case tcell.KeyEscape:
		return ActCommand, app.Command{Kind: app.CmdCancel}
	case tcell.KeyEnter:
		return ActCommand, in.click()
	case tcell.KeyUp:
		return in.move(0, -1)
	case tcell.KeyDown:
		return in.move(0, 1)
	case tcell.KeyLeft:
		return in.move(-1, 0)
	case tcell.KeyRight:
		return in.move(1, 0)
	case tcell.KeyRune:
	default:
		return ActNone, app.Command{}
	}

	ch := ev.Rune()
	switch ch {
	case 'q':
		return ActQuit, app.Command{}
	case 'p':
		return ActPause, app.Command{}
	case 'r':
		return ActRestart, app.Command{}
	case ' ':
		return ActCommand, app.Command{Kind: app.CmdStart}
	case 'u':
		return ActCommand, app.Command{Kind: app.CmdUpgrade}
	case 's':
		return ActCommand, app.Command{Kind: app.CmdSell}
	case 'h':
		return in.move(-1, 0)
	case 'j':
		return in.move(0, 1)
	case 'k':
		return in.move(0, -1)
	case 'l':
		return in.move(1, 0)
	}
	if ch >= '1' && ch <= '9' {
		if n := int(ch - '1'); n < len(in.towerIDs) {
			return ActCommand, app.Command{Kind: app.CmdChooseTower, TowerID: in.towerIDs[n]}
		}
	}
	return ActNone, app.Command{}
}

func (in *Input) mouse(ev *tcell.EventMouse, r *Renderer) (Action, app.Command) {
	pressed := ev.Buttons() &^ in.buttons
	in.buttons = ev.Buttons()

	x, y := ev.Position()
	cell, ok := r.CellAt(x, y)
	switch {
	case pressed&tcell.ButtonSecondary != 0:
		return ActCommand, app.Command{Kind: app.CmdCancel}
	case pressed&tcell.ButtonPrimary != 0 && ok:
		in.cursor = cell
		return ActCommand, in.click()
	}
	return ActNone, app.Command{}
}

func (in *Input) move(dx, dy int) (Action, app.Command) {
	next := gridmap.Cell{X: in.cursor.X + dx, Y: in.cursor.Y + dy}
	if !in.grid.Contains(next) {
		return ActNone, app.Command{}
	}
	in.cursor = next
	return ActMove, app.Command{}
}

func (in *Input) click() app.Command {
	return app.Command{Kind: app.CmdClick, Point: in.layout.CellCenter(in.cursor)}
}
