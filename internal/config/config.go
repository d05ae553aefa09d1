// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TPS          = 60 // тиков логики в секунду
	WindowTitle  = "Night Guard"

	// Энергия
	MaxPower       = 100.0
	BasePowerDrain = 0.003 // за тик, всегда
	DoorPowerDrain = 0.05  // за тик, за каждую закрытую дверь

	// Двери (ближе к центру комнаты)
	DoorWidth  = 30
	DoorHeight = 140
	LeftDoorX  = ScreenWidth/2 - 150
	RightDoorX = ScreenWidth/2 + 120
	DoorY      = ScreenHeight/2 - DoorHeight/2

	// Монстр
	MonsterSize           = 40
	MonsterY              = ScreenHeight/2 - MonsterSize/2
	MonsterBaseSpeed      = 1.0  // пикселей за тик
	MonsterSpeedIncrement = 0.15 // прибавка после каждой отбитой атаки
	TimeBetweenAttacks    = 180  // тиков ожидания (3 секунды при 60 TPS)

	// Стол охранника
	DeskWidth   = 220
	DeskHeight  = 60
	DeskMarginY = 30

	// HUD
	FontSize        = 24
	HUDMarginX      = 10
	TitleY          = 10
	ScoreY          = 40
	PowerY          = 70
	PowerBarWidth   = 120
	PowerBarHeight  = 8
	PowerBarOffsetX = 140
	LowPowerLevel   = 25.0

	// PRNG: 0 - сид от текущего времени
	Seed = 0
)

var (
	BackgroundColor = color.RGBA{30, 30, 30, 255}
	DoorOpenColor   = color.RGBA{50, 200, 50, 255}
	DoorClosedColor = color.RGBA{200, 50, 50, 255}
	DoorStrokeColor = color.RGBA{10, 10, 10, 255}
	DeskColor       = color.RGBA{50, 50, 200, 255}
	MonsterColor    = color.RGBA{230, 230, 50, 255}
	TextLightColor  = colornames.White
	PowerBarBgColor = colornames.Dimgray
	PowerFullColor  = color.RGBA{50, 200, 50, 255}
	PowerEmptyColor = color.RGBA{200, 50, 50, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	PausedTextColor = colornames.Gold
	StrokeWidth     = 2.0
)
