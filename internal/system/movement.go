// internal/system/movement.go
package system

import (
	"night-guard/internal/component"
	"night-guard/internal/config"
)

// MovementSystem двигает монстра к двери на его стороне.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Spawn ставит монстра за край экрана на стороне side.
func (s *MovementSystem) Spawn(m *component.Monster, side component.Side) {
	m.Side = side
	m.Y = config.MonsterY
	if side == component.SideLeft {
		m.X = -config.MonsterSize
	} else {
		m.X = config.ScreenWidth
	}
}

// Step сдвигает монстра на Speed и сообщает, дошёл ли он до своей двери.
func (s *MovementSystem) Step(m *component.Monster) bool {
	if m.Side == component.SideLeft {
		m.X += m.Speed
		// передний (правый) край достиг левой двери
		return m.X+config.MonsterSize >= config.LeftDoorX
	}
	m.X -= m.Speed
	// передний (левый) край достиг правого края правой двери
	return m.X <= config.RightDoorX+config.DoorWidth
}
