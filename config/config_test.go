package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/lucky-globe/globe"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.GlobeParams() != globe.DefaultParams() {
		t.Error("Expected default globe params to round-trip")
	}
	timing := cfg.DrawTiming()
	if timing.SpinDuration != 3*time.Second || timing.SettleDuration != 2*time.Second {
		t.Errorf("Expected 3s/2s draw timing, got %v/%v", timing.SpinDuration, timing.SettleDuration)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60fps interval, got %v", cfg.FrameInterval())
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "globe.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[globe]
radius = 300
friction = 0.9

[draw]
spin_multiplier = 40
spin_seconds = 4.5

[audio]
enabled = false

[display]
fps = 30

[roster]
path = "people.csv"
exclude = ["u1", "u2"]

[keys]
d = "draw"

[special_keys]
f5 = "reload_roster"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Globe.Radius != 300 || cfg.Globe.Friction != 0.9 {
		t.Errorf("Unexpected globe section: %+v", cfg.Globe)
	}
	if cfg.Globe.Perspective != 1000 {
		t.Errorf("Expected untouched perspective default, got %v", cfg.Globe.Perspective)
	}
	if cfg.DrawTiming().SpinDuration != 4500*time.Millisecond || cfg.Draw.SpinMultiplier != 40 {
		t.Errorf("Unexpected draw section: %+v", cfg.Draw)
	}
	if cfg.Draw.SettleMultiplier != 5 {
		t.Errorf("Expected settle default 5, got %v", cfg.Draw.SettleMultiplier)
	}
	if cfg.Audio.Enabled || cfg.Display.FPS != 30 {
		t.Errorf("Unexpected audio/display: %+v %+v", cfg.Audio, cfg.Display)
	}
	if cfg.Roster.Path != "people.csv" || len(cfg.Roster.Exclude) != 2 {
		t.Errorf("Unexpected roster section: %+v", cfg.Roster)
	}
	if cfg.Keys["d"] != "draw" || cfg.SpecialKeys["f5"] != "reload_roster" {
		t.Errorf("Unexpected key sections: %v %v", cfg.Keys, cfg.SpecialKeys)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[globe]\nradious = 300\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a typo, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
	if _, err := Load(writeConfig(t, "[globe\n")); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(*Config) bool
	}{
		{"Audio disabled", map[string]string{EnvAudioEnabled: "false"}, func(c *Config) bool { return !c.Audio.Enabled }},
		{"Volume clamped", map[string]string{EnvMasterVolume: "250"}, func(c *Config) bool { return c.Audio.Volume == 100 }},
		{"Negative volume clamped", map[string]string{EnvMasterVolume: "-4"}, func(c *Config) bool { return c.Audio.Volume == 0 }},
		{"FPS", map[string]string{EnvFPS: "24"}, func(c *Config) bool { return c.Display.FPS == 24 }},
		{"Bad FPS ignored", map[string]string{EnvFPS: "fast"}, func(c *Config) bool { return c.Display.FPS == 60 }},
		{"Zero FPS ignored", map[string]string{EnvFPS: "0"}, func(c *Config) bool { return c.Display.FPS == 60 }},
		{"Roster", map[string]string{EnvRoster: "/tmp/r.json"}, func(c *Config) bool { return c.Roster.Path == "/tmp/r.json" }},
		{"Bad bool ignored", map[string]string{EnvAudioEnabled: "maybe"}, func(c *Config) bool { return c.Audio.Enabled }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.applyEnv(func(k string) string { return tt.env[k] })
			if !tt.check(cfg) {
				t.Errorf("Override not applied as expected: %+v", cfg)
			}
		})
	}
}

func TestApplyEnvReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvFPS, "45")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Display.FPS != 45 {
		t.Errorf("Expected 45 fps from environment, got %d", cfg.Display.FPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Zero radius", func(c *Config) { c.Globe.Radius = 0 }},
		{"Negative perspective", func(c *Config) { c.Globe.Perspective = -1 }},
		{"Friction one", func(c *Config) { c.Globe.Friction = 1 }},
		{"Zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"Negative spin", func(c *Config) { c.Draw.SpinSeconds = -1 }},
		{"Volume range", func(c *Config) { c.Audio.Volume = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestAudioSettings(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 80
	a := cfg.AudioSettings()
	if a.MasterVolume != 0.8 || !a.Enabled {
		t.Errorf("Unexpected audio settings: %+v", a)
	}
}

func TestAudioSettingsCarriesSettleDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    time.Duration
	}{
		{"default", 2, 2 * time.Second},
		{"short", 0.5, 500 * time.Millisecond},
		{"long", 4, 4 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Draw.SettleSeconds = tt.seconds
			if got := cfg.AudioSettings().SettleDuration; got != tt.want {
				t.Errorf("Expected settle %v, got %v", tt.want, got)
			}
		})
	}
}
