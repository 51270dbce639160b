package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, true
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly, zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateStartSound is a short rising sweep when a draw begins
func CreateStartSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	low := NewEnvelope(NewOscillator(220, startDuration, WaveSaw, rate), startDuration, startAttack, startRelease, rate)
	high := NewEnvelope(NewOscillator(440, startDuration, WaveSine, rate), startDuration, startAttack, startRelease, rate)
	mixed := beep.Mix(newVolume(low, 0.3), newVolume(high, 0.7))

	return newVolume(mixed, cfg.EffectVolumes[SoundStart]*cfg.MasterVolume)
}

// CreateTickSound is a ratchet click, filtered noise over a square blip
func CreateTickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewEnvelope(NewOscillator(1800, tickDuration, WaveSquare, rate), tickDuration, tickAttack, tickRelease, rate)
	noise := NewEnvelope(NewOscillator(0, tickDuration, WaveNoise, rate), tickDuration, tickAttack, tickRelease, rate)
	mixed := beep.Mix(newVolume(click, 0.4), newVolume(noise, 0.3))

	return newVolume(mixed, cfg.EffectVolumes[SoundTick]*cfg.MasterVolume)
}

// CreateChimeSound is a rising major arpeggio for the reveal
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64, d, rel time.Duration) beep.Streamer {
		fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, chimeAttack, rel, rate)
		over := NewEnvelope(overtone(freq*2, d, rate), d, chimeAttack, rel/2, rate)
		return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	}
	// C5 E5 G5 C6
	seq := beep.Seq(
		note(523.25, chimeNoteDuration, chimeRelease),
		note(659.25, chimeNoteDuration, chimeRelease),
		note(783.99, chimeNoteDuration, chimeRelease),
		note(1046.50, chimeLastDuration, chimeLastRelease),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

// overtone is a pure sine partial, falling back to the local oscillator above Nyquist
func overtone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), tone)
}

// GetSoundEffect returns the streamer for a one-shot cue
func GetSoundEffect(st SoundType, cfg *Config) beep.Streamer {
	switch st {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	}
	return nil
}
