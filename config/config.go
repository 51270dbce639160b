// Package config loads lucky-globe settings from defaults, a TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/lucky-globe/audio"
	"github.com/lixenwraith/lucky-globe/draw"
	"github.com/lixenwraith/lucky-globe/globe"
)

// Environment overrides
const (
	EnvAudioEnabled = "LUCKY_GLOBE_AUDIO_ENABLED"
	EnvMasterVolume = "LUCKY_GLOBE_MASTER_VOLUME"
	EnvFPS          = "LUCKY_GLOBE_FPS"
	EnvRoster       = "LUCKY_GLOBE_ROSTER"
)

var ErrInvalid = errors.New("invalid config")

// GlobeConfig is the [globe] section
type GlobeConfig struct {
	Radius           float64 `toml:"radius"`
	Perspective      float64 `toml:"perspective"`
	CenterOffsetX    float64 `toml:"center_offset_x"`
	IdleDrift        float64 `toml:"idle_drift"`
	Friction         float64 `toml:"friction"`
	BaseSpeed        float64 `toml:"base_speed"`
	DragSensitivity  float64 `toml:"drag_sensitivity"`
	WheelSensitivity float64 `toml:"wheel_sensitivity"`
}

// DrawConfig is the [draw] section, durations in seconds
type DrawConfig struct {
	SpinMultiplier   float64 `toml:"spin_multiplier"`
	SpinSeconds      float64 `toml:"spin_seconds"`
	SettleMultiplier float64 `toml:"settle_multiplier"`
	SettleSeconds    float64 `toml:"settle_seconds"`
	IdleMultiplier   float64 `toml:"idle_multiplier"`
}

// AudioConfig is the [audio] section, volume 0-100
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"`
}

// DisplayConfig is the [display] section
type DisplayConfig struct {
	FPS       int  `toml:"fps"`
	TrueColor bool `toml:"truecolor"`
}

// RosterConfig is the [roster] section
type RosterConfig struct {
	Path    string   `toml:"path"`
	Exclude []string `toml:"exclude"`
}

// Config is the full application configuration
type Config struct {
	Globe   GlobeConfig   `toml:"globe"`
	Draw    DrawConfig    `toml:"draw"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
	Roster  RosterConfig  `toml:"roster"`

	// Key overrides, action names as values
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// Default returns a complete config matching the built-in tuning
func Default() *Config {
	p := globe.DefaultParams()
	t := draw.DefaultTiming()
	return &Config{
		Globe: GlobeConfig{
			Radius:           p.Radius,
			Perspective:      p.Perspective,
			CenterOffsetX:    p.CenterOffsetX,
			IdleDrift:        p.IdleDrift,
			Friction:         p.Friction,
			BaseSpeed:        p.BaseSpeed,
			DragSensitivity:  p.DragSensitivity,
			WheelSensitivity: p.WheelSensitivity,
		},
		Draw: DrawConfig{
			SpinMultiplier:   t.SpinMultiplier,
			SpinSeconds:      t.SpinDuration.Seconds(),
			SettleMultiplier: t.SettleMultiplier,
			SettleSeconds:    t.SettleDuration.Seconds(),
			IdleMultiplier:   t.IdleMultiplier,
		},
		Audio:   AudioConfig{Enabled: true, Volume: 50},
		Display: DisplayConfig{FPS: 60, TrueColor: true},
	}
}

// Load decodes a TOML file over the defaults
// Unknown keys are rejected so typos do not silently fall back
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv applies LUCKY_GLOBE_* overrides, malformed values are ignored
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(n, 0), 100)
		}
	}
	if v := getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Display.FPS = n
		}
	}
	if v := getenv(EnvRoster); v != "" {
		c.Roster.Path = v
	}
}

// Validate rejects values the globe or loop cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Globe.Radius <= 0 {
		errs = append(errs, fmt.Errorf("globe.radius must be positive, got %v", c.Globe.Radius))
	}
	if c.Globe.Perspective <= 0 {
		errs = append(errs, fmt.Errorf("globe.perspective must be positive, got %v", c.Globe.Perspective))
	}
	if c.Globe.Friction <= 0 || c.Globe.Friction >= 1 {
		errs = append(errs, fmt.Errorf("globe.friction must be in (0, 1), got %v", c.Globe.Friction))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	if c.Draw.SpinSeconds < 0 || c.Draw.SettleSeconds < 0 {
		errs = append(errs, errors.New("draw durations must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 100], got %d", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// GlobeParams maps the [globe] section onto visualizer parameters
func (c *Config) GlobeParams() globe.Params {
	p := globe.DefaultParams()
	p.Radius = c.Globe.Radius
	p.Perspective = c.Globe.Perspective
	p.CenterOffsetX = c.Globe.CenterOffsetX
	p.IdleDrift = c.Globe.IdleDrift
	p.Friction = c.Globe.Friction
	p.BaseSpeed = c.Globe.BaseSpeed
	p.DragSensitivity = c.Globe.DragSensitivity
	p.WheelSensitivity = c.Globe.WheelSensitivity
	return p
}

// DrawTiming maps the [draw] section onto sequence timing
func (c *Config) DrawTiming() draw.Timing {
	t := draw.DefaultTiming()
	t.SpinMultiplier = c.Draw.SpinMultiplier
	t.SpinDuration = seconds(c.Draw.SpinSeconds)
	t.SettleMultiplier = c.Draw.SettleMultiplier
	t.SettleDuration = seconds(c.Draw.SettleSeconds)
	t.IdleMultiplier = c.Draw.IdleMultiplier
	return t
}

// AudioSettings maps the [audio] section onto the sound manager config
func (c *Config) AudioSettings() *audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = float64(c.Audio.Volume) / 100
	a.SettleDuration = seconds(c.Draw.SettleSeconds)
	return a
}

// FrameInterval returns the tick period for the configured fps
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Display.FPS, 1))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
