package term

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/pkg/gridmap"
)

func newTestApp(t *testing.T, cfg Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	if cfg.Settings.Map == "" {
		cfg.Settings = config.DefaultSettings()
		cfg.Settings.Seed = 3
	}
	cfg.Logger = log.New(io.Discard, "", 0)
	a, err := New(screen, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, screen
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestDrawShowsTerrainAndStatus(t *testing.T) {
	a, screen := newTestApp(t, Config{})
	a.Draw()

	// row 0 of the default map is "..c.........c..#"
	ch, _, _, _ := screen.GetContent(0, 0)
	if ch != '.' {
		t.Errorf("buildable cell drawn as %q", ch)
	}
	ch, _, _, _ = screen.GetContent(15*CellCols, 0)
	if ch != '#' {
		t.Errorf("scenery cell drawn as %q", ch)
	}
	status := rowText(screen, a.renderer.StatusRow(), 80)
	if !strings.Contains(status, "lives 10") || !strings.Contains(status, "wave 1/10") {
		t.Errorf("status row = %q", status)
	}
}

func TestKeyboardBuildUpgradeSell(t *testing.T) {
	a, screen := newTestApp(t, Config{})

	a.HandleEvent(key('1'))
	a.HandleEvent(special(tcell.KeyEnter))
	s := a.Game().Snapshot()
	if len(s.Towers) != 1 || s.Towers[0].Cell != (gridmap.Cell{}) {
		t.Fatalf("expected a tower at the cursor, got %+v", s.Towers)
	}
	a.Draw()
	ch, _, _, _ := screen.GetContent(0, 0)
	if ch != 'A' {
		t.Errorf("arrow tower drawn as %q", ch)
	}
	lvl, _, _, _ := screen.GetContent(1, 0)
	if lvl != '1' {
		t.Errorf("tower level drawn as %q", lvl)
	}

	// enter on the tower selects it, then upgrade and sell
	a.HandleEvent(special(tcell.KeyEnter))
	a.HandleEvent(key('u'))
	if got := a.Game().Snapshot().Selection.Tower; got == nil || got.Level != 2 {
		t.Fatalf("expected level 2 selection, got %+v", got)
	}
	a.HandleEvent(key('s'))
	if s := a.Game().Snapshot(); len(s.Towers) != 0 || s.Cash != config.DefaultCash-20-15+26 {
		t.Fatalf("sell left %d towers and cash %d", len(s.Towers), s.Cash)
	}
}

func TestCursorMovesWithinGrid(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.HandleEvent(special(tcell.KeyLeft))
	a.HandleEvent(key('k'))
	if c := a.input.Cursor(); c != (gridmap.Cell{}) {
		t.Fatalf("cursor left the grid: %v", c)
	}
	a.HandleEvent(special(tcell.KeyRight))
	a.HandleEvent(key('j'))
	if c := a.input.Cursor(); c != (gridmap.Cell{X: 1, Y: 1}) {
		t.Fatalf("cursor at %v, want (1,1)", c)
	}
}

func TestMouseClickSelectsCell(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.HandleEvent(key('1'))
	a.HandleEvent(tcell.NewEventMouse(3*CellCols+1, 1, tcell.ButtonPrimary, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(3*CellCols+1, 1, tcell.ButtonNone, tcell.ModNone))
	s := a.Game().Snapshot()
	if len(s.Towers) != 1 || s.Towers[0].Cell != (gridmap.Cell{X: 3, Y: 1}) {
		t.Fatalf("mouse build landed at %+v", s.Towers)
	}
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonSecondary, tcell.ModNone))
	if s := a.Game().Snapshot(); s.BuildObject != "" {
		t.Fatalf("right click kept build choice %q", s.BuildObject)
	}
}

func TestStartPauseAndQuit(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.HandleEvent(key('p'))
	if a.Paused() {
		t.Fatal("cannot pause a game that is not running")
	}
	a.HandleEvent(key(' '))
	if a.Game().Phase() != component.Running {
		t.Fatal("space did not start the game")
	}
	a.HandleEvent(key('p'))
	before := a.Game().Snapshot().Tick
	a.Step()
	if a.Game().Snapshot().Tick != before {
		t.Fatal("paused game ticked")
	}
	a.HandleEvent(key('p'))
	a.Step()
	if a.Game().Snapshot().Tick != before+1 {
		t.Fatal("resumed game did not tick")
	}
	if a.HandleEvent(key('q')) {
		t.Fatal("q did not quit")
	}
	if a.HandleEvent(special(tcell.KeyCtrlC)) {
		t.Fatal("ctrl-c did not quit")
	}
}

func TestRestartAfterDefeat(t *testing.T) {
	settings := config.Settings{Map: "c\nr\nr", Width: 1, Height: 3, Lives: 1, Seed: 1}
	a, screen := newTestApp(t, Config{Settings: settings})
	old := a.Game()

	a.HandleEvent(key('r'))
	if a.Game() != old {
		t.Fatal("restart is only allowed once the game is over")
	}
	a.HandleEvent(key(' '))
	for i := 0; i < 10_000 && a.Game().Phase() != component.Ended; i++ {
		a.Step()
	}
	if a.Game().Phase() != component.Ended {
		t.Fatal("corridor game never ended")
	}
	a.Draw()
	if row := rowText(screen, a.renderer.StatusRow()+1, 40); !strings.HasPrefix(row, "DEFEAT") {
		t.Errorf("end banner = %q", row)
	}
	a.HandleEvent(key('r'))
	if a.Game() == old || a.Game().Phase() != component.NotStarted {
		t.Fatal("r did not start a fresh game")
	}
}

func TestBuildPlaysCue(t *testing.T) {
	sound := audio.NewSoundManager(audio.DefaultConfig())
	a, _ := newTestApp(t, Config{Sound: sound})
	a.HandleEvent(key('1'))
	a.HandleEvent(special(tcell.KeyEnter))
	if sound.Voices() != 1 {
		t.Fatalf("build cue not mixed, %d voices", sound.Voices())
	}
}

func TestSelectionText(t *testing.T) {
	s := &app.Snapshot{}
	if SelectionText(s) != "" {
		t.Error("empty selection should have no text")
	}
	s.Selection.Tower = &app.TowerView{Name: "Arrow", Level: 3, MaxLevel: 3}
	if got := SelectionText(s); !strings.Contains(got, "max level") {
		t.Errorf("max level tower text = %q", got)
	}
}
