// Command lucky-globe runs the draw globe in a terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lucky-globe/audio"
	"github.com/lixenwraith/lucky-globe/config"
	"github.com/lixenwraith/lucky-globe/core"
	"github.com/lixenwraith/lucky-globe/globe"
	"github.com/lixenwraith/lucky-globe/input"
	"github.com/lixenwraith/lucky-globe/roster"
	"github.com/lixenwraith/lucky-globe/terminal"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	rosterFlag    = flag.String("roster", "", "Roster file (.json, .yaml, .csv), overrides config")
	sampleFlag    = flag.Int("sample", roster.DefaultSampleSize, "Demo participants when no roster is given")
	seedFlag      = flag.Uint64("seed", 1, "Demo roster seed")
	fpsFlag       = flag.Int("fps", 0, "Frame rate, overrides config")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.ResetMode()
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	code := run()
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucky-globe: %v\n", err)
		return 2
	}

	overrides, err := input.LoadKeyConfig(cfg.Keys, cfg.SpecialKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucky-globe: %v\n", err)
		return 2
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), overrides)

	loader := rosterLoader(cfg)
	var entities []globe.Entity
	if loader != nil {
		if entities, err = loader(); err != nil {
			fmt.Fprintf(os.Stderr, "lucky-globe: %v\n", err)
			return 1
		}
	} else {
		entities = roster.Sample(*sampleFlag, *seedFlag)
	}
	entities = roster.Exclude(entities, cfg.Roster.Exclude)

	if !terminal.IsInteractive() {
		fmt.Fprintln(os.Stderr, "lucky-globe: stdin and stdout must be a terminal")
		return 1
	}

	mode, err := resolveColorMode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucky-globe: %v\n", err)
		return 2
	}
	mode.Apply()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashScreen(screen)

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("[main] audio unavailable: %v (continuing without audio)", err)
		}
	}
	sound.SetMuted(*muteFlag)

	a := newApp(cfg, screen, keys, sound)
	a.loadRoster = loader
	a.painter.Glow = mode == terminal.ColorModeTrueColor
	a.seq.SetEntities(entities)

	log.Printf("[main] started: %d participants, %s color, %d fps", len(entities), mode, cfg.Display.FPS)
	code := a.run()
	a.shutdown()
	return code
}

// loadConfig layers defaults, the config file, the environment and flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if *rosterFlag != "" {
		cfg.Roster.Path = *rosterFlag
	}
	if *fpsFlag > 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if !cfg.Audio.Enabled {
		*muteFlag = true
	}
	return cfg, cfg.Validate()
}

// rosterLoader returns nil when no roster file is configured
func rosterLoader(cfg *config.Config) func() ([]globe.Entity, error) {
	path := cfg.Roster.Path
	if path == "" {
		return nil
	}
	return func() ([]globe.Entity, error) {
		return roster.Load(path)
	}
}

// resolveColorMode prefers an explicit flag, then the config, then detection
func resolveColorMode(cfg *config.Config) (terminal.ColorMode, error) {
	if *colorModeFlag == "auto" && !cfg.Display.TrueColor {
		return terminal.ColorMode256, nil
	}
	return terminal.ParseColorMode(*colorModeFlag)
}
