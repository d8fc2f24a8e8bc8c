// internal/config/config.go
package config

import (
	"image/color"

	"go-bowling/pkg/render"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Bevy Bowling"
	MaxDeltaTime = 0.06
	TargetFPS    = 60

	// Дорожка
	GroundWidth  = 12.0
	GroundHeight = 1.0
	GroundLength = 128.0

	RailingX             = 4.5
	RailingY             = 1.0
	RailingWidth         = 1.0
	LeftRailingHeight    = 2.0
	RightRailingHeight   = 1.0
	LaneFriction         = 0.5
	LaneRestitution      = 0.1
	BallFriction         = 0.02
	BallRestitution      = 0.2
	PinFriction          = 0.3
	PinRestitution       = 0.4
	PinWidth             = 0.5
	PinHeight            = 2.0
	PinSpawnY            = 2.0
	PinFrontZ            = -25.0
	PinColumnScale       = 1 / 1.5
	PinDensity           = 0.1
	DefaultPinRows       = 4
	BallDensity          = 10.0
	BallSpawnY           = 2.5
	BallSpawnZ           = 58.0
	DefaultFallThreshold = -5.0

	// Броски
	DefaultShootInterval = 0.1
	DefaultBallRadiusMin = 0.25
	DefaultBallRadiusMax = 0.5
	DefaultSpawnXMin     = -2.0
	DefaultSpawnXMax     = 2.0
	DefaultCurveMin      = -5.0
	DefaultCurveMax      = 5.0
	DefaultSpeedMin      = -100.0
	DefaultSpeedMax      = -40.0
	// Индекс цвета берётся из [0, BallColorSpan), а палитра длиннее на один цвет.
	// Красный так и не выпадает; оставлено как есть до решения по дизайну.
	BallColorSpan = 3

	// Свет и камера
	LightIntensity = 200000.0
	LightRange     = 2000.0
	CameraFovy     = 45.0

	// Меню
	MenuTitleSize   = 50
	MenuButtonSize  = 20
	MenuSpacing     = 20
	MenuCaptionSize = 16
	ButtonPaddingX  = 20
	ButtonPaddingY  = 10

	MessageQueueCapacity = 16
)

var (
	LightPosition  = [3]float64{40, 30, -10}
	CameraPosition = [3]float64{0, 8, -50}

	ClearColor  = render.MustParseHex("#87CEEB")
	LaneColor   = render.RGB(0.3, 0.5, 0.3)
	PinColor    = color.RGBA{255, 255, 255, 255}
	TextColor   = color.RGBA{20, 20, 30, 255}
	ButtonColor = color.RGBA{240, 240, 240, 255}
	ButtonHover = color.RGBA{200, 200, 210, 255}

	BallColors = []color.RGBA{
		render.RGB(0.5, 0.0, 0.5),   // Purple
		render.RGB(0.0, 0.0, 1.0),   // Blue
		render.RGB(1.0, 0.08, 0.58), // Pink
		render.RGB(1.0, 0.0, 0.0),   // Red
	}
)

// SceneColors собирает цвета для фронтендов
func SceneColors() render.SceneColors {
	return render.SceneColors{
		ClearColor: ClearColor,
		LaneColor:  LaneColor,
		PinColor:   PinColor,
		TextColor:  TextColor,
		ButtonBg:   ButtonColor,
		ButtonHot:  ButtonHover,
	}
}
