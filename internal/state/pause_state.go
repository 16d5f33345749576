// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-creep-defense/internal/config"
	"go-creep-defense/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game. The game does not tick while it is active.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	drawOverlay(screen)
	ui.DrawCentered(screen, "PAUSED", ui.DefaultFace, 0, config.ScreenHeight/2-config.LargeTextHeight/2, config.ScreenWidth, config.LargeTextHeight, config.LevelDotColor)
}

func (s *PauseState) Exit() {}

func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DialogBackgroundColor, false)
}
