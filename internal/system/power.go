// internal/system/power.go
package system

import (
	"night-guard/internal/component"
	"night-guard/internal/config"
)

// PowerSystem drains the guard's power once per tick.
type PowerSystem struct{}

func NewPowerSystem() *PowerSystem {
	return &PowerSystem{}
}

// Drain subtracts the base drain plus the per-door drain for every closed door,
// clamps at zero and reports whether the power has run out.
func (s *PowerSystem) Drain(p *component.Power, leftClosed, rightClosed bool) bool {
	p.Value -= config.BasePowerDrain
	if leftClosed {
		p.Value -= config.DoorPowerDrain
	}
	if rightClosed {
		p.Value -= config.DoorPowerDrain
	}
	if p.Value <= 0 {
		p.Value = 0
	}
	return p.Exhausted()
}
