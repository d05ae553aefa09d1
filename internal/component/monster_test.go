package component

import (
	"testing"

	"night-guard/internal/config"
)

func TestNewMonster(t *testing.T) {
	m := NewMonster()
	if m.Phase != PhaseWaiting {
		t.Errorf("Phase = %s, want waiting", m.Phase)
	}
	if m.Speed != config.MonsterBaseSpeed {
		t.Errorf("Speed = %v, want %v", m.Speed, config.MonsterBaseSpeed)
	}
	if m.WaitTimer != 0 {
		t.Errorf("WaitTimer = %d, want 0", m.WaitTimer)
	}
	_, y, w, h := m.Bounds()
	if y != config.MonsterY || w != config.MonsterSize || h != config.MonsterSize {
		t.Errorf("Bounds y=%v w=%v h=%v", y, w, h)
	}
}

func TestNewPower(t *testing.T) {
	p := NewPower()
	if p.Value != config.MaxPower || p.Exhausted() {
		t.Errorf("NewPower() = %+v", p)
	}
	if !(Power{}).Exhausted() {
		t.Error("zero power should be exhausted")
	}
}

func TestStringers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SideLeft.String(), "left"},
		{SideRight.String(), "right"},
		{PhaseWaiting.String(), "waiting"},
		{PhaseApproaching.String(), "approaching"},
		{StatusRunning.String(), "running"},
		{StatusGameOver.String(), "game over"},
		{ReasonPowerOut.String(), "power out"},
		{ReasonBreach.String(), "monster got in"},
		{CommandToggleLeft.String(), "toggle-left"},
		{CommandQuit.String(), "quit"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
