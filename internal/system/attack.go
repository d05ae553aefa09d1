// internal/system/attack.go
package system

import (
	"night-guard/internal/component"
	"night-guard/internal/config"
)

// SideChooser picks the side an attack comes from. utils.PRNGService satisfies it.
type SideChooser interface {
	ChooseSide() component.Side
}

// Outcome is what happened at the door on a given tick. OutcomeRepelled
// means the door was closed, OutcomeBreach means it was open.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRepelled
	OutcomeBreach
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRepelled:
		return "repelled"
	case OutcomeBreach:
		return "breach"
	}
	return "none"
}

// AttackSystem runs the monster's wait/approach cycle.
type AttackSystem struct {
	rng      SideChooser
	movement *MovementSystem
}

func NewAttackSystem(rng SideChooser, movement *MovementSystem) *AttackSystem {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if movement == nil {
		movement = NewMovementSystem()
	}
	return &AttackSystem{rng: rng, movement: movement}
}

// Update advances the monster by one tick. started reports that an attack
// began on this tick. On OutcomeBreach the monster is left where it stopped.
func (s *AttackSystem) Update(m *component.Monster, doors *component.Doors) (started bool, outcome Outcome) {
	if m.Phase == component.PhaseWaiting {
		m.WaitTimer++
		if m.WaitTimer < config.TimeBetweenAttacks {
			return false, OutcomeNone
		}
		s.startAttack(m)
		started = true
	}

	// The monster takes its first step on the tick the attack starts.
	if !s.movement.Step(m) {
		return started, OutcomeNone
	}

	if !doors.Closed(m.Side) {
		return started, OutcomeBreach
	}
	m.Speed += config.MonsterSpeedIncrement
	m.Phase = component.PhaseWaiting
	m.WaitTimer = 0
	return started, OutcomeRepelled
}

func (s *AttackSystem) startAttack(m *component.Monster) {
	m.Phase = component.PhaseApproaching
	m.WaitTimer = 0
	s.movement.Spawn(m, s.rng.ChooseSide())
}
