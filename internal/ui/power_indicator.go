package ui

import (
	"fmt"

	"night-guard/internal/config"
	"night-guard/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PowerIndicator отображает запас энергии текстом и полосой.
type PowerIndicator struct {
	X, Y float32
	Face text.Face
}

// NewPowerIndicator создает новый индикатор энергии.
func NewPowerIndicator(x, y float32, face text.Face) *PowerIndicator {
	return &PowerIndicator{X: x, Y: y, Face: face}
}

// Label возвращает подпись вида "Power: 42%", проценты округляются вниз.
func Label(power float64) string {
	return fmt.Sprintf("Power: %d%%", int(power))
}

// Draw рисует индикатор. Цвет полосы плавно уходит в красный по мере разряда.
func (i *PowerIndicator) Draw(screen *ebiten.Image, power float64) {
	drawText(screen, Label(power), i.Face, float64(i.X), float64(i.Y), config.TextLightColor)

	frac := float32(utils.Clamp(power/config.MaxPower, 0, 1))
	barX := i.X + config.PowerBarOffsetX
	barY := i.Y + (config.FontSize-config.PowerBarHeight)/2
	vector.DrawFilledRect(screen, barX, barY, config.PowerBarWidth, config.PowerBarHeight, config.PowerBarBgColor, false)

	fill := utils.LerpColor(config.PowerEmptyColor, config.PowerFullColor, frac)
	if power < config.LowPowerLevel {
		fill = config.PowerEmptyColor
	}
	vector.DrawFilledRect(screen, barX, barY, config.PowerBarWidth*frac, config.PowerBarHeight, fill, false)
}
