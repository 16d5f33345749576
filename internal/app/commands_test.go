package app

import (
	"testing"

	"go-creep-defense/internal/component"
)

func TestClickBuildsThenSelects(t *testing.T) {
	g := defaultGame(t, 100)
	if !g.Execute(Command{Kind: CmdChooseTower, TowerID: "arrow"}) {
		t.Fatal("choosing a known archetype failed")
	}
	if !g.Execute(Command{Kind: CmdClick, Point: grassPoint}) {
		t.Fatal("click with a build choice did not build")
	}
	s := g.Snapshot()
	if len(s.Towers) != 1 || s.Cash != 80 {
		t.Fatalf("expected one tower and cash 80, got %d towers cash %d", len(s.Towers), s.Cash)
	}

	// the cell is now taken, so the same click selects the new tower
	if !g.Execute(Command{Kind: CmdClick, Point: grassPoint}) {
		t.Fatal("click on a taken cell did not select")
	}
	s = g.Snapshot()
	if s.Selection.Tower == nil || s.BuildObject != "" {
		t.Fatalf("expected tower selected and build choice cleared, got %+v build %q", s.Selection, s.BuildObject)
	}
	if len(s.Towers) != 1 {
		t.Fatalf("second click built again")
	}
}

func TestCancelClearsChoiceAndSelection(t *testing.T) {
	g := defaultGame(t, 100)
	g.BuildAt(grassPoint, "arrow")
	g.SelectAt(grassPoint)
	if !g.Execute(Command{Kind: CmdCancel}) {
		t.Fatal("cancel with a selection reported no change")
	}
	if s := g.Snapshot(); s.Selection.Tower != nil {
		t.Fatal("selection survived cancel")
	}
	if g.Execute(Command{Kind: CmdCancel}) {
		t.Fatal("cancel with nothing selected reported a change")
	}
}

func TestCommandsUpgradeSellStart(t *testing.T) {
	g := defaultGame(t, 100)
	g.BuildAt(grassPoint, "arrow")
	g.SelectAt(grassPoint)
	if !g.Execute(Command{Kind: CmdUpgrade}) {
		t.Fatal("upgrade failed")
	}
	if !g.Execute(Command{Kind: CmdSell}) {
		t.Fatal("sell failed")
	}
	if g.Execute(Command{Kind: CmdSell}) {
		t.Fatal("second sell succeeded without a selection")
	}
	if !g.Execute(Command{Kind: CmdStart}) || g.Phase() != component.Running {
		t.Fatal("start did not run the game")
	}
	if g.Execute(Command{Kind: CmdStart}) {
		t.Fatal("start succeeded twice")
	}
}
