package state

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/audio"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/ui"
	"go-creep-defense/pkg/utils"
)

type fakeState struct {
	name string
	log  *[]string
}

func (f *fakeState) Enter()               { *f.log = append(*f.log, "enter "+f.name) }
func (f *fakeState) Update()              { *f.log = append(*f.log, "update "+f.name) }
func (f *fakeState) Draw(_ *ebiten.Image) {}
func (f *fakeState) Exit()                { *f.log = append(*f.log, "exit "+f.name) }

func TestStateMachineTransitions(t *testing.T) {
	var calls []string
	sm := NewStateMachine()
	sm.Update() // no state, no panic

	a := &fakeState{name: "a", log: &calls}
	b := &fakeState{name: "b", log: &calls}
	sm.SetState(a)
	sm.Update()
	sm.SetState(b)
	sm.SetState(nil)

	want := "enter a,update a,exit a,enter b,exit b"
	if got := strings.Join(calls, ","); got != want {
		t.Fatalf("calls = %s, want %s", got, want)
	}
	if sm.Current() != nil {
		t.Fatal("expected no current state")
	}
}

func TestMenuCommand(t *testing.T) {
	cases := []struct {
		action ui.Action
		want   app.CommandKind
	}{
		{ui.Action{Kind: ui.ActionChooseTower, TowerID: "frost"}, app.CmdChooseTower},
		{ui.Action{Kind: ui.ActionUpgrade}, app.CmdUpgrade},
		{ui.Action{Kind: ui.ActionSell}, app.CmdSell},
		{ui.Action{Kind: ui.ActionStart}, app.CmdStart},
	}
	for _, tc := range cases {
		cmd, ok := MenuCommand(tc.action)
		if !ok || cmd.Kind != tc.want {
			t.Errorf("MenuCommand(%+v) = %+v, %v", tc.action, cmd, ok)
		}
	}
	if cmd, ok := MenuCommand(ui.Action{Kind: ui.ActionChooseTower, TowerID: "frost"}); cmd.TowerID != "frost" || !ok {
		t.Errorf("tower id lost: %+v", cmd)
	}
	if _, ok := MenuCommand(ui.Action{}); ok {
		t.Error("an empty action should not map to a command")
	}
}

func TestHeadline(t *testing.T) {
	if got := Headline(true, 120); got != "VICTORY  score 120" {
		t.Errorf("won headline = %q", got)
	}
	if got := Headline(false, 5); !strings.HasPrefix(got, "DEFEAT") {
		t.Errorf("lost headline = %q", got)
	}
}

func TestSessionWiresSound(t *testing.T) {
	sound := audio.NewSoundManager(audio.DefaultConfig())
	session := &Session{
		Settings: config.DefaultSettings(),
		Sound:    sound,
		Logger:   log.New(io.Discard, "", 0),
	}
	ended := false
	g, err := session.NewGame(func(int) { ended = true })
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if !g.BuildAt(utils.Point{X: 25, Y: 30}, "arrow") {
		t.Fatal("build on grass failed")
	}
	if sound.Voices() != 1 {
		t.Fatalf("expected the build cue to be mixed, got %d voices", sound.Voices())
	}
	if ended {
		t.Fatal("game ended before it started")
	}

	// a second game gets its own dispatcher
	if _, err := session.NewGame(nil); err != nil {
		t.Fatalf("second NewGame: %v", err)
	}
}
