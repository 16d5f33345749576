// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 600
	MenuWidth    = 160

	// TicksPerSecond is the simulation cadence the frontends drive Tick at.
	TicksPerSecond = 60
	TickInterval   = time.Second / TicksPerSecond

	DefaultCash             = 60
	DefaultLives            = 10
	DefaultTimeBetweenWaves = 5 * TicksPerSecond

	TextHeight       = 20
	LargeTextHeight  = 30
	LevelDotRadius   = 2.0
	ClickCooldown    = 150 // ms
	IndicatorOffsetX = 30
)

var (
	BackgroundColor       = color.RGBA{255, 255, 255, 255}
	RoadColor             = color.RGBA{191, 205, 184, 255}
	SpawnColor            = color.RGBA{124, 159, 105, 255}
	PlainColor            = color.RGBA{210, 210, 200, 255}
	MenuBackgroundColor   = color.RGBA{22, 33, 16, 255}
	MenuTextColor         = color.RGBA{191, 205, 184, 255}
	DialogBackgroundColor = color.RGBA{83, 93, 87, 128}
	DialogBorderColor     = color.RGBA{108, 127, 97, 255}
	DialogTextColor       = color.RGBA{124, 159, 105, 255}
	RangeStrokeColor      = color.RGBA{108, 127, 97, 204}
	RangeFillColor        = color.RGBA{191, 205, 184, 51}
	HoverCellColor        = color.RGBA{0, 0, 0, 51}
	SelectionColor        = color.RGBA{240, 200, 40, 255}
	ProjectileColor       = color.RGBA{20, 20, 30, 255}
	LevelDotColor         = color.RGBA{240, 240, 240, 255}
)
