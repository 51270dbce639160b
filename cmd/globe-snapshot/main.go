// Command globe-snapshot renders globe frames to WebP or PNG without a display
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/lucky-globe/config"
	"github.com/lixenwraith/lucky-globe/draw"
	"github.com/lixenwraith/lucky-globe/engine"
	"github.com/lixenwraith/lucky-globe/globe"
	"github.com/lixenwraith/lucky-globe/render"
	"github.com/lixenwraith/lucky-globe/roster"
	"github.com/lixenwraith/lucky-globe/snapshot"
)

// options describes one export run
type options struct {
	Out         string
	Width       int
	Height      int
	Supersample int
	Warmup      int // Ticks before the first written frame
	Frames      int
	Spin        bool // Static spin without a draw sequence
	Draw        bool // Run a full draw sequence starting after warmup
}

func main() {
	var (
		opts       options
		configPath string
		rosterPath string
		sample     int
		seed       uint64
	)
	flag.StringVar(&opts.Out, "out", "globe.webp", "Output file (.webp or .png), numbered when -frames > 1")
	flag.IntVar(&opts.Width, "width", 1280, "Image width")
	flag.IntVar(&opts.Height, "height", 960, "Image height")
	flag.IntVar(&opts.Supersample, "supersample", 2, "Render at this multiple and downsample")
	flag.IntVar(&opts.Warmup, "warmup", 60, "Ticks to run before capturing")
	flag.IntVar(&opts.Frames, "frames", 1, "Frames to write")
	flag.BoolVar(&opts.Spin, "spin", false, "Render the spinning palette")
	flag.BoolVar(&opts.Draw, "draw", false, "Capture a draw sequence")
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file")
	flag.StringVar(&rosterPath, "roster", "", "Roster file (.json, .yaml, .csv)")
	flag.IntVar(&sample, "sample", roster.DefaultSampleSize, "Demo participants when no roster is given")
	flag.Uint64Var(&seed, "seed", 1, "Demo roster seed")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("globe-snapshot: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("globe-snapshot: %v", err)
	}

	var entities []globe.Entity
	if rosterPath != "" {
		var err error
		if entities, err = roster.Load(rosterPath); err != nil {
			log.Fatalf("globe-snapshot: %v", err)
		}
	} else {
		entities = roster.Sample(sample, seed)
	}
	entities = roster.Exclude(entities, cfg.Roster.Exclude)

	paths, err := export(cfg, entities, opts)
	if err != nil {
		log.Fatalf("globe-snapshot: %v", err)
	}
	for _, p := range paths {
		fmt.Fprintln(os.Stdout, p)
	}
}

// export renders opts.Frames frames on a virtual clock and returns the written paths
func export(cfg *config.Config, entities []globe.Entity, opts options) ([]string, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	format, err := snapshot.FormatFromPath(opts.Out)
	if err != nil {
		return nil, err
	}
	ss := max(opts.Supersample, 1)
	frames := max(opts.Frames, 1)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	interval := cfg.FrameInterval()

	var seq *draw.Sequence
	var inputs globe.Inputs
	if opts.Draw {
		seq = draw.NewSequence(clock, cfg.DrawTiming(), cfg.Display.FPS)
		seq.SetEntities(entities)
		inputs = seq
	} else {
		inputs = &globe.StaticInputs{List: entities, Spin: opts.Spin, Multiplier: 1}
	}

	vis := globe.NewVisualizer(inputs, cfg.GlobeParams())
	var frame *globe.Frame
	sched := engine.NewManualScheduler(func() {
		clock.Advance(interval)
		if seq != nil {
			seq.Update()
		}
		frame = vis.Tick(opts.Width*ss, opts.Height*ss)
	})
	sched.Start()
	defer sched.Stop()

	sched.Advance(opts.Warmup)
	if seq != nil {
		if err := seq.Begin(); err != nil {
			return nil, err
		}
	}

	dir := filepath.Dir(opts.Out)
	prefix := strings.TrimSuffix(filepath.Base(opts.Out), filepath.Ext(opts.Out))
	painter := render.NewRasterPainter()
	paths := make([]string, 0, frames)

	for i := 0; i < frames; i++ {
		sched.Tick()

		img := painter.Paint(frame)
		var out image.Image = img
		if ss > 1 {
			out = render.Downsample(img, opts.Width, opts.Height)
		}

		path := opts.Out
		if frames > 1 {
			path = snapshot.SequencePath(dir, prefix, i, format)
		}
		if err := snapshot.WriteFile(path, out); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	log.Printf("[snapshot] wrote %d %s frames, %d entities", len(paths), format, len(entities))
	return paths, nil
}
