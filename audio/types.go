package audio

import "time"

// SoundType identifies a one-shot cue
type SoundType int

const (
	SoundStart SoundType = iota // Draw begins
	SoundTick                   // Settle ratchet click
	SoundChime                  // Reveal
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundTick:
		return "tick"
	case SoundChime:
		return "chime"
	}
	return "unknown"
}

// Config is the audio section of the application config
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0..1
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
	SpinVolume    float64

	SettleDuration time.Duration // Length of the settle tick train
}

// DefaultConfig returns enabled audio at 48kHz
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MasterVolume:  0.5,
		SampleRate:    48000,
		EffectVolumes: [soundTypeCount]float64{0.6, 0.4, 0.8},
		SpinVolume:    0.5,

		SettleDuration: defaultSettleDuration,
	}
}

// Cue timing
const (
	startDuration = 250 * time.Millisecond
	startAttack   = 20 * time.Millisecond
	startRelease  = 200 * time.Millisecond

	tickDuration = 25 * time.Millisecond
	tickAttack   = 1 * time.Millisecond
	tickRelease  = 20 * time.Millisecond

	chimeNoteDuration = 180 * time.Millisecond
	chimeLastDuration = 600 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 150 * time.Millisecond
	chimeLastRelease  = 500 * time.Millisecond

	settleTickStart = 90 * time.Millisecond  // Interval between settle ticks at the start
	settleTickEnd   = 400 * time.Millisecond // Interval by the end of the settle

	defaultSettleDuration = 2 * time.Second
)

// settleLength falls back to the default when the duration is unset
func (c *Config) settleLength() time.Duration {
	if c.SettleDuration <= 0 {
		return defaultSettleDuration
	}
	return c.SettleDuration
}
