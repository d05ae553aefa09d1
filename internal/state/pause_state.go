// internal/state/pause_state.go
package state

import (
	"night-guard/internal/component"
	"night-guard/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: тики не идут, сцена видна под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	input         *input.Mapper
}

func NewPauseState(sm *StateMachine, prevState *GameState, mapper *input.Mapper) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		input:         mapper,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	cmds := s.input.Poll()
	if input.Has(cmds, component.CommandQuit) {
		return ebiten.Termination
	}
	if input.Has(cmds, component.CommandPause) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.banner.DrawPaused(screen)
}

func (s *PauseState) Exit() {}
