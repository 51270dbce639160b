// Package draw drives the host side of a prize draw: it toggles the globe into
// its spin mode, eases the speed multiplier, and returns to idle on a timer
package draw

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/lucky-globe/engine"
	"github.com/lixenwraith/lucky-globe/globe"
)

var (
	ErrDrawInProgress = errors.New("draw already in progress")
	ErrEmptyRoster    = errors.New("no participants to draw from")
)

// Phase is the draw workflow state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseSpinning:
		return "Spinning"
	case PhaseSettling:
		return "Settling"
	}
	return "Idle"
}

// Timing holds the multiplier regimes and their durations
type Timing struct {
	SpinMultiplier   float64
	SpinDuration     time.Duration
	SettleMultiplier float64
	SettleDuration   time.Duration
	IdleMultiplier   float64

	// Spring tuning for multiplier easing, critically damped at 1
	Frequency float64
	Damping   float64
}

// DefaultTiming returns 50x for 3s, then 5x for 2s, then 1x
func DefaultTiming() Timing {
	return Timing{
		SpinMultiplier:   50,
		SpinDuration:     3 * time.Second,
		SettleMultiplier: 5,
		SettleDuration:   2 * time.Second,
		IdleMultiplier:   1,
		Frequency:        6,
		Damping:          1,
	}
}

// PhaseListener is called after a transition, outside the sequence lock
type PhaseListener func(from, to Phase)

// Sequence implements globe.Inputs for a host that runs draws
// All methods are safe for concurrent use
type Sequence struct {
	mu sync.Mutex

	clock  engine.Clock
	timing Timing
	spring harmonica.Spring

	phase      Phase
	phaseStart time.Time
	mult       float64
	vel        float64
	entities   []globe.Entity
	draws      int

	listeners []PhaseListener
}

// NewSequence creates an idle sequence whose spring steps at fps
func NewSequence(clock engine.Clock, timing Timing, fps int) *Sequence {
	if fps <= 0 {
		fps = 60
	}
	if timing.Frequency <= 0 {
		timing.Frequency = DefaultTiming().Frequency
	}
	if timing.Damping <= 0 {
		timing.Damping = DefaultTiming().Damping
	}
	return &Sequence{
		clock:  clock,
		timing: timing,
		spring: harmonica.NewSpring(harmonica.FPS(fps), timing.Frequency, timing.Damping),
		mult:   timing.IdleMultiplier,
	}
}

// OnPhase registers a transition listener
func (s *Sequence) OnPhase(fn PhaseListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// SetEntities replaces the participant list, the globe picks it up on its next tick
func (s *Sequence) SetEntities(list []globe.Entity) {
	s.mu.Lock()
	s.entities = list
	s.mu.Unlock()
}

// Begin starts a draw, rejected unless idle
func (s *Sequence) Begin() error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrDrawInProgress
	}
	if len(s.entities) == 0 {
		s.mu.Unlock()
		return ErrEmptyRoster
	}
	s.draws++
	fire := s.enter(PhaseSpinning, s.clock.Now())
	s.mu.Unlock()
	fire()
	return nil
}

// Cancel aborts a running draw and returns to idle
func (s *Sequence) Cancel() {
	s.mu.Lock()
	if s.phase == PhaseIdle {
		s.mu.Unlock()
		return
	}
	fire := s.enter(PhaseIdle, s.clock.Now())
	s.mu.Unlock()
	fire()
}

// Update advances phase timers and steps the multiplier spring by one frame
func (s *Sequence) Update() {
	s.mu.Lock()
	now := s.clock.Now()
	var fires []func()
	for {
		next, at, ok := s.due(now)
		if !ok {
			break
		}
		fires = append(fires, s.enter(next, at))
	}
	s.mult, s.vel = s.spring.Update(s.mult, s.vel, s.target())
	s.mu.Unlock()

	for _, fire := range fires {
		fire()
	}
}

// due reports the transition whose deadline has passed, if any
func (s *Sequence) due(now time.Time) (Phase, time.Time, bool) {
	switch s.phase {
	case PhaseSpinning:
		end := s.phaseStart.Add(s.timing.SpinDuration)
		if !now.Before(end) {
			return PhaseSettling, end, true
		}
	case PhaseSettling:
		end := s.phaseStart.Add(s.timing.SettleDuration)
		if !now.Before(end) {
			return PhaseIdle, end, true
		}
	}
	return 0, time.Time{}, false
}

// enter switches phase under lock and returns the listener dispatch to run after unlock
func (s *Sequence) enter(next Phase, at time.Time) func() {
	from := s.phase
	s.phase = next
	s.phaseStart = at
	log.Printf("[draw] %s -> %s", from, next)

	listeners := append([]PhaseListener(nil), s.listeners...)
	return func() {
		for _, fn := range listeners {
			fn(from, next)
		}
	}
}

func (s *Sequence) target() float64 {
	switch s.phase {
	case PhaseSpinning:
		return s.timing.SpinMultiplier
	case PhaseSettling:
		return s.timing.SettleMultiplier
	}
	return s.timing.IdleMultiplier
}

// Phase returns the current phase
func (s *Sequence) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Remaining returns time left in the current timed phase, zero when idle
func (s *Sequence) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var d time.Duration
	switch s.phase {
	case PhaseSpinning:
		d = s.timing.SpinDuration
	case PhaseSettling:
		d = s.timing.SettleDuration
	default:
		return 0
	}
	return max(0, s.phaseStart.Add(d).Sub(s.clock.Now()))
}

// Draws returns how many draws have been started
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// Entities implements globe.Inputs
func (s *Sequence) Entities() []globe.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities
}

// Spinning implements globe.Inputs, true through both spin and settle
func (s *Sequence) Spinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase != PhaseIdle
}

// SpeedMultiplier implements globe.Inputs with the eased multiplier
func (s *Sequence) SpeedMultiplier() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult
}

var _ globe.Inputs = (*Sequence)(nil)
