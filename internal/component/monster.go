package component

import "night-guard/internal/config"

// Phase - фаза атаки монстра
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseApproaching
)

func (p Phase) String() string {
	if p == PhaseApproaching {
		return "approaching"
	}
	return "waiting"
}

// Monster представляет единственного противника.
type Monster struct {
	Phase     Phase
	Side      Side    // имеет смысл только в PhaseApproaching
	X         float64 // левая граница
	Y         float64
	Speed     float64 // пикселей за тик
	WaitTimer int     // тиков в ожидании
}

// NewMonster создаёт монстра в фазе ожидания с базовой скоростью
func NewMonster() Monster {
	return Monster{
		Phase: PhaseWaiting,
		Y:     config.MonsterY,
		Speed: config.MonsterBaseSpeed,
	}
}

// Bounds возвращает прямоугольник монстра: x, y, ширина, высота
func (m Monster) Bounds() (x, y, w, h float64) {
	return m.X, m.Y, config.MonsterSize, config.MonsterSize
}
