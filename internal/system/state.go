// internal/system/state.go
package system

import (
	"log"

	"night-guard/internal/component"
	"night-guard/internal/event"
)

// StateSystem переключает сессию между «идёт игра» и «игра окончена».
type StateSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{eventDispatcher: eventDispatcher}
}

// SwitchToGameOver фиксирует конец игры и блокирует двери.
func (s *StateSystem) SwitchToGameOver(status *component.Status, doors *component.Doors, reason component.GameOverReason, score int) {
	if *status == component.StatusGameOver {
		return
	}
	*status = component.StatusGameOver
	doors.Lock()
	log.Printf("Game over: %s, score %d", reason, score)

	switch reason {
	case component.ReasonPowerOut:
		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerDepleted, Data: score})
	case component.ReasonBreach:
		s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterBreach, Data: score})
	}
}

// SwitchToRunning помечает сессию как активную.
func (s *StateSystem) SwitchToRunning(status *component.Status) {
	*status = component.StatusRunning
}
