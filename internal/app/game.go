// internal/app/game.go
package app

import (
	"log"

	"night-guard/internal/component"
	"night-guard/internal/event"
	"night-guard/internal/system"
)

// Game holds one play session: power, doors, the monster, score and status.
// All of it is owned by value and only changes through Tick and Reset.
type Game struct {
	EventDispatcher *event.Dispatcher
	PowerSystem     *system.PowerSystem
	AttackSystem    *system.AttackSystem
	StateSystem     *system.StateSystem

	power   component.Power
	doors   component.Doors
	monster component.Monster
	score   int
	status  component.Status
	reason  component.GameOverReason
	ticks   int
}

// NewGame initializes a new game session. rng picks attack sides; dispatcher
// may be nil when nobody listens.
func NewGame(rng system.SideChooser, dispatcher *event.Dispatcher) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	g := &Game{
		EventDispatcher: dispatcher,
		PowerSystem:     system.NewPowerSystem(),
		AttackSystem:    system.NewAttackSystem(rng, system.NewMovementSystem()),
		StateSystem:     system.NewStateSystem(dispatcher),
	}
	g.reset()
	log.Println("New session started")
	return g
}

// Tick advances the session by one frame.
//
// While the game is over only CommandRestart is honoured, and nothing else
// happens on that tick. While running, door toggles are applied first, then
// power drains, then the monster moves. Running out of power ends the game
// before the monster gets to move.
func (g *Game) Tick(cmds []component.Command) {
	if g.status == component.StatusGameOver {
		for _, c := range cmds {
			if c == component.CommandRestart {
				g.Reset()
				return
			}
		}
		return
	}

	g.ticks++
	for _, c := range cmds {
		switch c {
		case component.CommandToggleLeft:
			g.toggle(component.SideLeft)
		case component.CommandToggleRight:
			g.toggle(component.SideRight)
		}
	}

	if g.PowerSystem.Drain(&g.power, g.doors.LeftClosed, g.doors.RightClosed) {
		g.gameOver(component.ReasonPowerOut)
		return
	}

	started, outcome := g.AttackSystem.Update(&g.monster, &g.doors)
	if started {
		g.EventDispatcher.Dispatch(event.Event{Type: event.AttackStarted, Data: g.monster.Side})
	}
	switch outcome {
	case system.OutcomeRepelled:
		g.score++
		g.EventDispatcher.Dispatch(event.Event{Type: event.AttackRepelled, Data: g.score})
	case system.OutcomeBreach:
		g.gameOver(component.ReasonBreach)
	}
}

// Reset starts a fresh session in place.
func (g *Game) Reset() {
	g.reset()
	log.Println("Session reset")
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset})
}

func (g *Game) reset() {
	g.power = component.NewPower()
	g.doors = component.Doors{}
	g.monster = component.NewMonster()
	g.score = 0
	g.reason = component.ReasonNone
	g.ticks = 0
	g.StateSystem.SwitchToRunning(&g.status)
}

func (g *Game) toggle(side component.Side) {
	if !g.doors.Toggle(side) {
		return
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.DoorToggled,
		Data: event.DoorData{Side: side, Closed: g.doors.Closed(side)},
	})
}

func (g *Game) gameOver(reason component.GameOverReason) {
	g.reason = reason
	g.StateSystem.SwitchToGameOver(&g.status, &g.doors, reason, g.score)
}

// IsGameOver reports whether the session has ended.
func (g *Game) IsGameOver() bool {
	return g.status == component.StatusGameOver
}

// Status returns the current session status.
func (g *Game) Status() component.Status {
	return g.status
}

// Score returns the number of repelled attacks.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of active ticks since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}
