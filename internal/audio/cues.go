package audio

import (
	"fmt"
	"sync"
	"time"

	"night-guard/internal/component"
	"night-guard/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	maxHistory = 64
)

// Cue is a short synthesised tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	CueDoorClose = Cue{Freq: 220, Duration: 60 * time.Millisecond}
	CueDoorOpen  = Cue{Freq: 330, Duration: 40 * time.Millisecond}
	CueAttack    = Cue{Freq: 110, Duration: 250 * time.Millisecond}
	CueRepelled  = Cue{Freq: 880, Duration: 80 * time.Millisecond}
	CueGameOver  = Cue{Freq: 70, Duration: 600 * time.Millisecond}
	CueReset     = Cue{Freq: 660, Duration: 50 * time.Millisecond}
)

// CuePlayer plays a tone for session events. Without an initialised speaker
// every call is a no-op, so the game runs silent when there is no device.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      []Cue
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it twice is safe.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything still queued.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue on the mixer.
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played = append(p.played, c)
	if len(p.played) > maxHistory {
		p.played = p.played[len(p.played)-maxHistory:]
	}
	if !p.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(c.Duration), sine))
	speaker.Unlock()
}

// Played returns the most recent cues, whether or not they were audible.
func (p *CuePlayer) Played() []Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Cue, len(p.played))
	copy(out, p.played)
	return out
}

// Subscribe hooks the player up to every event it has a cue for.
func (p *CuePlayer) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.DoorToggled,
		event.AttackStarted,
		event.AttackRepelled,
		event.PowerDepleted,
		event.MonsterBreach,
		event.SessionReset,
	} {
		d.Subscribe(t, p)
	}
}

func (p *CuePlayer) OnEvent(e event.Event) {
	switch e.Type {
	case event.DoorToggled:
		if data, ok := e.Data.(event.DoorData); ok && data.Closed {
			p.Play(CueDoorClose)
		} else {
			p.Play(CueDoorOpen)
		}
	case event.AttackStarted:
		c := CueAttack
		// правая атака чуть выше по тону, чтобы различать стороны на слух
		if side, ok := e.Data.(component.Side); ok && side == component.SideRight {
			c.Freq *= 1.5
		}
		p.Play(c)
	case event.AttackRepelled:
		p.Play(CueRepelled)
	case event.PowerDepleted, event.MonsterBreach:
		p.Play(CueGameOver)
	case event.SessionReset:
		p.Play(CueReset)
	}
}
