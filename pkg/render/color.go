// pkg/render/color.go
package render

import "image/color"

// RoomColors holds all the color definitions needed to render the room.
type RoomColors struct {
	BackgroundColor color.RGBA
	DoorOpenColor   color.RGBA
	DoorClosedColor color.RGBA
	DoorStrokeColor color.RGBA
	DeskColor       color.RGBA
	MonsterColor    color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
