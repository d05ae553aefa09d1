package ui

import (
	"image/color"

	"night-guard/internal/component"
	"night-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Banner рисует заголовок и сообщения поверх сцены: конец игры, пауза.
type Banner struct {
	Face text.Face
}

func NewBanner(face text.Face) *Banner {
	return &Banner{Face: face}
}

// DrawTitle рисует название игры вверху по центру
func (b *Banner) DrawTitle(screen *ebiten.Image) {
	drawCentered(screen, config.WindowTitle, b.Face, config.ScreenWidth/2, config.TitleY, config.TextLightColor)
}

// DrawGameOver рисует сообщение о конце игры и подсказку для рестарта
func (b *Banner) DrawGameOver(screen *ebiten.Image, reason component.GameOverReason) {
	msg := "Game Over! Press R to restart"
	_, h := text.Measure(msg, b.Face, 0)
	y := config.ScreenHeight/2 - h/2
	drawCentered(screen, msg, b.Face, config.ScreenWidth/2, y, config.TextLightColor)
	if reason != component.ReasonNone {
		drawCentered(screen, "("+reason.String()+")", b.Face, config.ScreenWidth/2, y+h+4, config.TextLightColor)
	}
}

// DrawPaused затемняет экран и пишет PAUSED
func (b *Banner) DrawPaused(screen *ebiten.Image) {
	b.drawOverlay(screen, config.OverlayColor)
	msg := "PAUSED"
	_, h := text.Measure(msg, b.Face, 0)
	drawCentered(screen, msg, b.Face, config.ScreenWidth/2, config.ScreenHeight/2-h/2, config.PausedTextColor)
}

func (b *Banner) drawOverlay(screen *ebiten.Image, c color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, c, false)
}
