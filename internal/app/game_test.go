package app

import (
	"math"
	"testing"

	"night-guard/internal/component"
	"night-guard/internal/config"
	"night-guard/internal/event"
	"night-guard/internal/utils"
)

const eps = 1e-9

type fixedSide component.Side

func (f fixedSide) ChooseSide() component.Side { return component.Side(f) }

type recorder struct {
	types []event.EventType
}

func (r *recorder) OnEvent(e event.Event) { r.types = append(r.types, e.Type) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, got := range r.types {
		if got == t {
			n++
		}
	}
	return n
}

func newTestGame(side component.Side) (*Game, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	for _, t := range []event.EventType{
		event.DoorToggled, event.AttackStarted, event.AttackRepelled,
		event.PowerDepleted, event.MonsterBreach, event.SessionReset,
	} {
		d.Subscribe(t, r)
	}
	return NewGame(fixedSide(side), d), r
}

func tickN(g *Game, n int, cmds ...component.Command) {
	for i := 0; i < n; i++ {
		g.Tick(cmds)
		cmds = nil
	}
}

func freshSnapshot() Snapshot {
	return Snapshot{
		Power: config.MaxPower,
		Monster: MonsterView{
			Y: config.MonsterY,
			W: config.MonsterSize,
			H: config.MonsterSize,
		},
	}
}

func TestNewGameIsFresh(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	if got := g.Snapshot(); got != freshSnapshot() {
		t.Errorf("Snapshot() = %+v, want %+v", got, freshSnapshot())
	}
	if g.Status() != component.StatusRunning {
		t.Errorf("Status = %s", g.Status())
	}
}

func TestTickDrainsBasePowerWithDoorsOpen(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	for i := 0; i < 100; i++ {
		before := g.Snapshot().Power
		g.Tick(nil)
		if d := before - g.Snapshot().Power; math.Abs(d-config.BasePowerDrain) > eps {
			t.Fatalf("tick %d: drained %v", i, d)
		}
	}
}

func TestTickDrainsMoreWithDoorsClosed(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	g.Tick([]component.Command{component.CommandToggleLeft, component.CommandToggleRight})
	if d := config.MaxPower - g.Snapshot().Power; math.Abs(d-0.103) > eps {
		t.Fatalf("first tick drained %v, want 0.103", d)
	}
	for i := 0; i < 50; i++ {
		before := g.Snapshot().Power
		g.Tick(nil)
		if d := before - g.Snapshot().Power; math.Abs(d-0.103) > eps {
			t.Fatalf("tick %d: drained %v, want 0.103", i, d)
		}
	}
}

func TestPowerOutEndsGame(t *testing.T) {
	g, r := newTestGame(component.SideLeft)
	g.Reset()
	g.Tick([]component.Command{component.CommandToggleLeft, component.CommandToggleRight})

	overAt := 0
	for i := 2; i <= 1000; i++ {
		g.Tick(nil)
		snap := g.Snapshot()
		if snap.Power < 0 {
			t.Fatalf("tick %d: negative power", i)
		}
		if snap.Power == 0 && !snap.GameOver {
			t.Fatalf("tick %d: power 0 but game not over", i)
		}
		if snap.GameOver && overAt == 0 {
			overAt = i
		}
	}
	snap := g.Snapshot()
	if snap.Power != 0 || !snap.GameOver {
		t.Fatalf("after 1000 ticks: %+v", snap)
	}
	if overAt != 971 {
		t.Errorf("game over at tick %d, want 971", overAt)
	}
	if snap.Reason != component.ReasonPowerOut {
		t.Errorf("Reason = %s", snap.Reason)
	}
	if r.count(event.PowerDepleted) != 1 {
		t.Errorf("PowerDepleted dispatched %d times", r.count(event.PowerDepleted))
	}
	// both doors closed the whole time: every attack was repelled
	if snap.Score == 0 || r.count(event.MonsterBreach) != 0 {
		t.Errorf("score=%d breaches=%d", snap.Score, r.count(event.MonsterBreach))
	}
}

func TestPowerOutPreemptsMonster(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	g.power.Value = config.BasePowerDrain / 2
	timer := g.monster.WaitTimer

	g.Tick(nil)
	if !g.IsGameOver() {
		t.Fatal("want game over")
	}
	if g.monster.WaitTimer != timer {
		t.Errorf("monster advanced on the power-out tick: timer %d -> %d", timer, g.monster.WaitTimer)
	}
}

func TestAttackStartsAfter180Ticks(t *testing.T) {
	g, r := newTestGame(component.SideRight)

	tickN(g, config.TimeBetweenAttacks-1)
	if g.monster.Phase != component.PhaseWaiting || g.Snapshot().Monster.Visible {
		t.Fatalf("tick 179: phase=%s", g.monster.Phase)
	}

	g.Tick(nil)
	if g.monster.Phase != component.PhaseApproaching {
		t.Fatalf("tick 180: phase=%s", g.monster.Phase)
	}
	if g.monster.Side != component.SideRight || g.monster.Speed != 1.0 {
		t.Errorf("side=%s speed=%v", g.monster.Side, g.monster.Speed)
	}
	snap := g.Snapshot()
	if !snap.Monster.Visible || snap.Monster.Side != component.SideRight {
		t.Errorf("monster view = %+v", snap.Monster)
	}
	if r.count(event.AttackStarted) != 1 {
		t.Errorf("AttackStarted dispatched %d times", r.count(event.AttackStarted))
	}
}

type sideRecorder struct {
	sides []component.Side
}

func (r *sideRecorder) OnEvent(e event.Event) {
	if side, ok := e.Data.(component.Side); ok {
		r.sides = append(r.sides, side)
	}
}

func TestRandomSideIsDeterministicPerSeed(t *testing.T) {
	sides := func(seed int64) []component.Side {
		d := event.NewDispatcher()
		r := &sideRecorder{}
		d.Subscribe(event.AttackStarted, r)
		g := NewGame(utils.NewPRNGService(seed), d)
		// both doors closed so every attack is repelled
		g.Tick([]component.Command{component.CommandToggleLeft, component.CommandToggleRight})
		for len(r.sides) < 3 && !g.IsGameOver() {
			g.Tick(nil)
		}
		return r.sides
	}
	a, b := sides(99), sides(99)
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("got %d and %d attacks, want 3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("attack %d: %s != %s", i, a[i], b[i])
		}
	}
}

func TestLeftAttackRepelled(t *testing.T) {
	g, r := newTestGame(component.SideLeft)
	tickN(g, config.TimeBetweenAttacks)
	if g.monster.Phase != component.PhaseApproaching {
		t.Fatalf("phase = %s", g.monster.Phase)
	}

	g.Tick([]component.Command{component.CommandToggleLeft})
	for i := 0; i < 1000 && g.Score() == 0; i++ {
		g.Tick(nil)
	}

	if g.Score() != 1 {
		t.Fatalf("score = %d, want 1", g.Score())
	}
	if math.Abs(g.monster.Speed-(1.0+0.15)) > eps {
		t.Errorf("speed = %v, want 1.15", g.monster.Speed)
	}
	if g.monster.Phase != component.PhaseWaiting || g.monster.WaitTimer != 0 {
		t.Errorf("phase=%s timer=%d", g.monster.Phase, g.monster.WaitTimer)
	}
	if g.IsGameOver() {
		t.Error("game over after a repelled attack")
	}
	if r.count(event.AttackRepelled) != 1 {
		t.Errorf("AttackRepelled dispatched %d times", r.count(event.AttackRepelled))
	}
}

func TestRightAttackThroughOpenDoor(t *testing.T) {
	g, r := newTestGame(component.SideRight)
	// the wrong door is closed, the right one stays open
	g.Tick([]component.Command{component.CommandToggleLeft})
	for i := 0; i < 1000 && !g.IsGameOver(); i++ {
		g.Tick(nil)
	}
	if !g.IsGameOver() {
		t.Fatal("want game over")
	}
	snap := g.Snapshot()
	if snap.Reason != component.ReasonBreach || snap.Score != 0 {
		t.Errorf("reason=%s score=%d", snap.Reason, snap.Score)
	}
	if snap.Monster.Visible {
		t.Error("monster should be hidden once the game is over")
	}
	if r.count(event.MonsterBreach) != 1 {
		t.Errorf("MonsterBreach dispatched %d times", r.count(event.MonsterBreach))
	}

	frozen := g.Snapshot()
	ticks := g.Ticks()
	for i := 0; i < 20; i++ {
		g.Tick([]component.Command{component.CommandToggleRight, component.CommandToggleLeft})
	}
	if g.Snapshot() != frozen || g.Ticks() != ticks {
		t.Errorf("state changed during game over: %+v", g.Snapshot())
	}
	if !g.IsGameOver() {
		t.Error("toggles must not clear game over")
	}

	g.Tick([]component.Command{component.CommandRestart})
	if g.IsGameOver() || g.Snapshot() != freshSnapshot() {
		t.Errorf("after restart: %+v", g.Snapshot())
	}
	if r.count(event.SessionReset) != 1 {
		t.Errorf("SessionReset dispatched %d times", r.count(event.SessionReset))
	}
}

func TestTogglesIgnoredDuringGameOver(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	g.Tick([]component.Command{component.CommandToggleRight})
	g.gameOver(component.ReasonBreach)

	seqs := [][]component.Command{
		{component.CommandToggleLeft},
		{component.CommandToggleRight},
		{component.CommandToggleLeft, component.CommandToggleLeft, component.CommandToggleRight},
		{component.CommandPause, component.CommandQuit},
	}
	for _, cmds := range seqs {
		g.Tick(cmds)
		snap := g.Snapshot()
		if snap.LeftClosed || !snap.RightClosed {
			t.Fatalf("after %v: left=%v right=%v", cmds, snap.LeftClosed, snap.RightClosed)
		}
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g, r := newTestGame(component.SideLeft)
	g.Tick([]component.Command{component.CommandToggleLeft})
	g.Tick([]component.Command{component.CommandRestart})
	if !g.Snapshot().LeftClosed || g.Ticks() != 2 {
		t.Errorf("restart while running changed the session: %+v", g.Snapshot())
	}
	if r.count(event.SessionReset) != 0 {
		t.Error("SessionReset dispatched while running")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	g, _ := newTestGame(component.SideLeft)
	tickN(g, 400, component.CommandToggleLeft)
	g.gameOver(component.ReasonPowerOut)

	g.Reset()
	first := g.Snapshot()
	firstMonster := g.monster
	g.Reset()

	if first != freshSnapshot() || g.Snapshot() != first {
		t.Errorf("reset snapshots differ: %+v vs %+v", first, g.Snapshot())
	}
	if g.monster != firstMonster || g.monster != component.NewMonster() {
		t.Errorf("monster = %+v", g.monster)
	}
	if g.doors.Locked() || g.Status() != component.StatusRunning || g.Score() != 0 {
		t.Errorf("doors locked=%v status=%s score=%d", g.doors.Locked(), g.Status(), g.Score())
	}
}

func TestDoorToggleDispatchesEvent(t *testing.T) {
	g, r := newTestGame(component.SideLeft)
	g.Tick([]component.Command{component.CommandToggleLeft, component.CommandToggleLeft, component.CommandToggleRight})
	if r.count(event.DoorToggled) != 3 {
		t.Errorf("DoorToggled dispatched %d times, want 3", r.count(event.DoorToggled))
	}
	snap := g.Snapshot()
	if snap.LeftClosed || !snap.RightClosed {
		t.Errorf("left=%v right=%v", snap.LeftClosed, snap.RightClosed)
	}
}

func TestNewGamePanicsWithoutRNG(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want panic on nil rng")
		}
	}()
	NewGame(nil, nil)
}
