// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-creep-defense/internal/config"
	"go-creep-defense/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs, err := NewGameState(m.sm, m.session)
		if err != nil {
			m.session.Logger.Printf("Cannot start game: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackgroundColor)
	face := ui.DefaultFace
	ui.DrawCentered(screen, "CREEP DEFENSE", face, 0, config.ScreenHeight/2-config.LargeTextHeight, config.ScreenWidth, config.LargeTextHeight, config.MenuTextColor)
	ui.DrawCentered(screen, "Press Space to begin", face, 0, config.ScreenHeight/2, config.ScreenWidth, config.TextHeight, config.DialogTextColor)
}

func (m *MenuState) Exit() {}
