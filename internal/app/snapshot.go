package app

import "night-guard/internal/component"

// MonsterView is the part of the monster a renderer may see.
type MonsterView struct {
	Visible    bool
	Side       component.Side
	X, Y, W, H float64
}

// Snapshot is a read-only copy of the session for drawing.
type Snapshot struct {
	Power       float64
	LeftClosed  bool
	RightClosed bool
	Monster     MonsterView
	Score       int
	GameOver    bool
	Reason      component.GameOverReason
}

// Snapshot copies out everything the renderer needs.
func (g *Game) Snapshot() Snapshot {
	x, y, w, h := g.monster.Bounds()
	return Snapshot{
		Power:       g.power.Value,
		LeftClosed:  g.doors.LeftClosed,
		RightClosed: g.doors.RightClosed,
		Monster: MonsterView{
			Visible: g.monster.Phase == component.PhaseApproaching && !g.IsGameOver(),
			Side:    g.monster.Side,
			X:       x,
			Y:       y,
			W:       w,
			H:       h,
		},
		Score:    g.score,
		GameOver: g.IsGameOver(),
		Reason:   g.reason,
	}
}
