// pkg/render/room_renderer.go
package render

import (
	"night-guard/internal/app"
	"night-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RoomRenderer рисует комнату охранника: фон, стол, двери и монстра.
type RoomRenderer struct {
	colors       *RoomColors
	screenWidth  int
	screenHeight int
	roomImage    *ebiten.Image // предрендеренный статичный задник
}

func NewRoomRenderer(colors *RoomColors, screenWidth, screenHeight int) *RoomRenderer {
	r := &RoomRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		roomImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderRoomImage()
	return r
}

// RenderRoomImage рисует неизменную часть сцены один раз
func (r *RoomRenderer) RenderRoomImage() {
	r.roomImage.Fill(r.colors.BackgroundColor)

	deskX := float32(r.screenWidth/2 - config.DeskWidth/2)
	deskY := float32(r.screenHeight - config.DeskHeight - config.DeskMarginY)
	vector.DrawFilledRect(r.roomImage, deskX, deskY, config.DeskWidth, config.DeskHeight, r.colors.DeskColor, false)
	vector.StrokeRect(r.roomImage, deskX, deskY, config.DeskWidth, config.DeskHeight, r.colors.StrokeWidth, DarkenColor(r.colors.DeskColor), false)
}

// Draw рисует сцену по снимку сессии
func (r *RoomRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.DrawImage(r.roomImage, nil)

	r.drawDoor(screen, config.LeftDoorX, snap.LeftClosed)
	r.drawDoor(screen, config.RightDoorX, snap.RightClosed)

	if snap.Monster.Visible {
		m := snap.Monster
		vector.DrawFilledRect(screen, float32(m.X), float32(m.Y), float32(m.W), float32(m.H), r.colors.MonsterColor, false)
	}
}

func (r *RoomRenderer) drawDoor(screen *ebiten.Image, x int, closed bool) {
	c := r.colors.DoorOpenColor
	if closed {
		c = r.colors.DoorClosedColor
	}
	vector.DrawFilledRect(screen, float32(x), config.DoorY, config.DoorWidth, config.DoorHeight, c, false)
	vector.StrokeRect(screen, float32(x), config.DoorY, config.DoorWidth, config.DoorHeight, r.colors.StrokeWidth, r.colors.DoorStrokeColor, false)
}
