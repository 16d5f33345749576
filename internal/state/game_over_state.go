// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-creep-defense/internal/config"
	"go-creep-defense/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score over the last frame of the game.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	return &GameOverState{sm: sm, finished: finished}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return
	}
	gs, err := NewGameState(s.sm, s.finished.session)
	if err != nil {
		s.finished.session.Logger.Printf("Cannot restart game: %v", err)
		return
	}
	s.sm.SetState(gs)
}

// Headline returns the outcome text.
func Headline(won bool, score int) string {
	if won {
		return fmt.Sprintf("VICTORY  score %d", score)
	}
	return fmt.Sprintf("DEFEAT  score %d", score)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	drawOverlay(screen)
	snap := s.finished.snap
	face := ui.DefaultFace
	top := config.ScreenHeight/2 - config.LargeTextHeight
	ui.DrawCentered(screen, Headline(snap.Won, snap.Score), face, 0, top, config.ScreenWidth, config.LargeTextHeight, config.LevelDotColor)
	ui.DrawCentered(screen, "Press R to play again", face, 0, top+config.LargeTextHeight, config.ScreenWidth, config.TextHeight, config.LevelDotColor)
}

func (s *GameOverState) Exit() {}
