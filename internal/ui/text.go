package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText рисует строку с левым верхним углом в (x, y)
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCentered рисует строку по центру относительно cx, с верхом в y
func drawCentered(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(screen, s, face, cx-w/2, y, clr)
}
