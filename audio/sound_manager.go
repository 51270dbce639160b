package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lucky-globe/draw"
)

// SoundManager plays the draw cues through the system speaker
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu     sync.Mutex
	cfg    *Config
	mixer  *beep.Mixer
	master *effects.Volume

	spinStreamer *beep.Ctrl
	spinGen      *WhirrGenerator

	muted       bool
	initialized bool
}

// NewSoundManager creates a manager, cfg nil uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
	sm.master = &effects.Volume{Streamer: sm.mixer, Base: 2, Silent: sm.muted}
	return sm
}

// Initialize opens the speaker, failures leave the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		log.Printf("[audio] speaker init failed, running silent: %v", err)
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds, the speaker device stays open for a later Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.spinStreamer != nil {
		sm.spinStreamer.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.spinStreamer = nil
	sm.initialized = false
}

// PlaySpin starts the looping whirr, its pitch follows SetSpinSpeed
func (sm *SoundManager) PlaySpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.spinStreamer != nil && !sm.spinStreamer.Paused {
		return
	}
	sm.spinGen = NewWhirrGenerator(beep.SampleRate(sm.cfg.SampleRate))
	vol := newVolume(sm.spinGen, sm.cfg.SpinVolume*sm.cfg.MasterVolume)
	sm.spinStreamer = &beep.Ctrl{Streamer: vol}
	sm.mixer.Add(sm.spinStreamer)
}

// StopSpin pauses the whirr
func (sm *SoundManager) StopSpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.spinStreamer == nil {
		return
	}
	speaker.Lock()
	sm.spinStreamer.Paused = true
	speaker.Unlock()
}

// SetSpinSpeed maps the draw multiplier onto the whirr rate
func (sm *SoundManager) SetSpinSpeed(multiplier float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.spinGen == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.spinGen.SetSpeed(multiplier)
	speaker.Unlock()
}

// PlaySettle plays a slowing train of ratchet ticks
func (sm *SoundManager) PlaySettle() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := NewSettleTicks(sm.cfg, sm.cfg.settleLength())
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayReveal plays the reveal chime
func (sm *SoundManager) PlayReveal() {
	sm.Play(SoundChime)
}

// Play mixes a one-shot cue
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences the master output without stopping streams
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = muted
		speaker.Unlock()
	} else {
		sm.master.Silent = muted
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.IsMuted()
	sm.SetMuted(muted)
	return muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PhaseListener returns a draw listener that plays the matching cues
func (sm *SoundManager) PhaseListener() draw.PhaseListener {
	return func(from, to draw.Phase) {
		switch to {
		case draw.PhaseSpinning:
			sm.Play(SoundStart)
			sm.PlaySpin()
		case draw.PhaseSettling:
			sm.PlaySettle()
		case draw.PhaseIdle:
			sm.StopSpin()
			if from == draw.PhaseSettling {
				sm.PlayReveal()
			}
		}
	}
}

// WhirrGenerator is an endless rotor hum whose pulse rate tracks the spin speed
type WhirrGenerator struct {
	sr        beep.SampleRate
	pos       int
	phase     float64 // Carrier phase
	pulse     float64 // Blade pulse phase
	speed     float64
	baseFreq  float64
	pulseRate float64 // Pulses per second at speed 1
}

// NewWhirrGenerator creates a whirr at speed 1
func NewWhirrGenerator(sr beep.SampleRate) *WhirrGenerator {
	return &WhirrGenerator{
		sr:        sr,
		speed:     1,
		baseFreq:  90,
		pulseRate: 0.4,
	}
}

// SetSpeed sets the multiplier, values below 1 are raised to 1
func (g *WhirrGenerator) SetSpeed(multiplier float64) {
	if math.IsNaN(multiplier) || multiplier < 1 {
		multiplier = 1
	}
	g.speed = multiplier
}

func (g *WhirrGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(g.sr)
	freq := g.baseFreq * (1 + math.Log10(g.speed)*0.5)
	pulseHz := g.pulseRate * g.speed

	for i := range samples {
		carrier := math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(4*math.Pi*g.phase)
		// Blade swish: amplitude dips once per pulse
		amp := 0.12 * (0.6 + 0.4*math.Cos(2*math.Pi*g.pulse))
		sample := amp * carrier

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / rate
		g.phase -= math.Floor(g.phase)
		g.pulse += pulseHz / rate
		g.pulse -= math.Floor(g.pulse)
		g.pos++
	}
	return len(samples), true
}

func (g *WhirrGenerator) Err() error { return nil }

// NewSettleTicks sequences tick cues with intervals growing across d
func NewSettleTicks(cfg *Config, d time.Duration) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var parts []beep.Streamer
	for elapsed := time.Duration(0); elapsed < d; {
		t := float64(elapsed) / float64(d)
		gap := settleTickStart + time.Duration(t*float64(settleTickEnd-settleTickStart))
		parts = append(parts, CreateTickSound(cfg), beep.Silence(rate.N(gap-tickDuration)))
		elapsed += gap
	}
	return beep.Seq(parts...)
}
