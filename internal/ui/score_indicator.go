package ui

import (
	"strconv"

	"night-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ScoreIndicator отображает количество отбитых атак.
type ScoreIndicator struct {
	X, Y float32
	Face text.Face
}

func NewScoreIndicator(x, y float32, face text.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, Face: face}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	drawText(screen, "Score: "+strconv.Itoa(score), i.Face, float64(i.X), float64(i.Y), config.TextLightColor)
}
