// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/ui"
	"go-creep-defense/pkg/render"
	"go-creep-defense/pkg/utils"
)

const (
	hudTop       = 20
	towerMenuTop = 170
)

var (
	buildOKColor      = color.RGBA{80, 180, 80, 80}
	buildBlockedColor = color.RGBA{200, 60, 60, 80}
	digitKeys         = []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
)

// GameState runs one game: it turns input into commands, ticks the engine
// and draws the latest snapshot.
type GameState struct {
	sm        *StateMachine
	session   *Session
	game      *app.Game
	renderer  *render.GridRenderer
	style     *render.EntityStyle
	menu      *ui.TowerMenu
	indicator *ui.StateIndicator
	speed     *ui.SpeedButton
	health    *ui.PlayerHealthIndicator
	waves     *ui.WaveIndicator
	infoPanel *ui.InfoPanel

	snap          app.Snapshot
	maxLives      int
	ended         bool
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gs := &GameState{sm: sm, session: session, lastClickTime: time.Now()}
	g, err := session.NewGame(func(int) { gs.ended = true })
	if err != nil {
		return nil, err
	}
	gs.game = g

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		BuildableColor:  config.BackgroundColor,
		PlainColor:      config.PlainColor,
		RoadColor:       config.RoadColor,
		SpawnColor:      config.SpawnColor,
		ExitColor:       render.DarkenColor(config.SpawnColor),
		GridLineColor:   config.RangeFillColor,
		StrokeWidth:     1,
	}
	gs.renderer = render.NewGridRenderer(g.Grid(), g.Paths(), g.Layout(), mapColors)
	gs.style = &render.EntityStyle{
		ProjectileColor: config.ProjectileColor,
		LevelDotColor:   config.LevelDotColor,
		LevelDotRadius:  config.LevelDotRadius,
		SlowedColor:     color.RGBA{80, 150, 220, 255},
	}

	menuX := config.ScreenWidth - config.MenuWidth
	gs.menu = ui.NewTowerMenu(g.Library(), menuX, config.MenuWidth, towerMenuTop)
	gs.indicator = ui.NewStateIndicator(
		float32(menuX-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		12,
	)
	gs.speed = ui.NewSpeedButton(image.Rect(menuX+10, config.ScreenHeight-40, config.ScreenWidth-10, config.ScreenHeight-12))
	gs.health = ui.NewPlayerHealthIndicator(float32(menuX+10), hudTop+3*config.TextHeight)
	gs.waves = ui.NewWaveIndicator(menuX+10, hudTop+config.TextHeight)
	gs.infoPanel = ui.NewInfoPanel(menuX)

	gs.snap = g.Snapshot()
	gs.maxLives = gs.snap.Lives
	gs.menu.Sync(&gs.snap, g.Library())
	return gs, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.game.Phase() == component.Running {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()

	if g.game.Phase() == component.Running {
		for i := 0; i < g.speed.Multiplier() && !g.ended; i++ {
			g.game.Tick()
		}
	}
	g.refresh()

	if g.ended {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) refresh() {
	g.snap = g.game.Snapshot()
	g.menu.Sync(&g.snap, g.game.Library())
	g.infoPanel.Update(g.snap.Selection)
}

func (g *GameState) handleKeys() {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			if id, ok := g.menu.TowerID(i + 1); ok {
				g.game.Execute(app.Command{Kind: app.CmdChooseTower, TowerID: id})
			}
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.Execute(app.Command{Kind: app.CmdCancel})
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.game.Execute(app.Command{Kind: app.CmdUpgrade})
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.Execute(app.Command{Kind: app.CmdSell})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.Execute(app.Command{Kind: app.CmdStart})
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.speed.Toggle()
	}
}

func (g *GameState) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.Execute(app.Command{Kind: app.CmdCancel})
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	x, y := ebiten.CursorPosition()
	switch {
	case g.speed.IsClicked(x, y):
		g.speed.Toggle()
	case x >= g.menu.X:
		if cmd, ok := MenuCommand(g.menu.HitTest(x, y)); ok {
			g.game.Execute(cmd)
		}
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.game.Execute(app.Command{Kind: app.CmdStart})
	case g.infoPanel.Contains(x, y):
		// the panel has no controls
	default:
		g.game.Execute(app.Command{Kind: app.CmdClick, Point: utils.Point{X: float64(x), Y: float64(y)}})
	}
}

// MenuCommand translates a menu click into an engine command.
func MenuCommand(a ui.Action) (app.Command, bool) {
	switch a.Kind {
	case ui.ActionChooseTower:
		return app.Command{Kind: app.CmdChooseTower, TowerID: a.TowerID}, true
	case ui.ActionUpgrade:
		return app.Command{Kind: app.CmdUpgrade}, true
	case ui.ActionSell:
		return app.Command{Kind: app.CmdSell}, true
	case ui.ActionStart:
		return app.Command{Kind: app.CmdStart}, true
	}
	return app.Command{}, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snap, g.style)
	g.drawOverlays(screen)

	menuX := float32(g.menu.X)
	vector.DrawFilledRect(screen, menuX, 0, config.MenuWidth, config.ScreenHeight, config.MenuBackgroundColor, false)

	face := ui.DefaultFace
	hudX := g.menu.X + 10
	text.Draw(screen, fmt.Sprintf("$%d   score %d", g.snap.Cash, g.snap.Score), face, hudX, hudTop, config.MenuTextColor)
	g.waves.Draw(screen, face, &g.snap, config.MenuTextColor)
	g.health.Draw(screen, face, g.snap.Lives, g.maxLives, config.MenuTextColor)

	cx, cy := ebiten.CursorPosition()
	g.menu.Draw(screen, face, cx, cy)
	g.speed.Draw(screen, face, cx, cy)
	g.indicator.Draw(screen, ui.PhaseColor(g.snap.Phase, g.snap.Won))
	g.infoPanel.Draw(screen, face)

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  tps %.0f", g.snap.Tick, ebiten.ActualTPS()), 4, 4)
}

// drawOverlays tints the hovered cell and draws range circles for the
// selection and for the tower about to be built.
func (g *GameState) drawOverlays(screen *ebiten.Image) {
	layout := g.game.Layout()
	x, y := ebiten.CursorPosition()
	p := utils.Point{X: float64(x), Y: float64(y)}
	if x < g.menu.X && layout.InBounds(p) {
		cell := layout.CellAt(p)
		tint := config.HoverCellColor
		if id := g.snap.BuildObject; id != "" {
			tint = buildBlockedColor
			if g.game.CanBuildAt(p, id) {
				tint = buildOKColor
				if def, ok := g.game.Library().Tower(id); ok {
					render.DrawRange(screen, layout.CellCenter(cell), def.StatsAt(1).Range, config.RangeFillColor, config.RangeStrokeColor)
				}
			}
		}
		g.renderer.HighlightCell(screen, cell, tint)
	}

	if t := g.snap.Selection.Tower; t != nil {
		render.DrawRange(screen, t.Center, t.Range, config.RangeFillColor, config.RangeStrokeColor)
	}
	if c := g.snap.Selection.Creep; c != nil {
		vector.StrokeCircle(screen, float32(c.Position.X), float32(c.Position.Y), float32(c.Radius+3), 2, config.SelectionColor, true)
	}
}

func (g *GameState) Exit() {}
