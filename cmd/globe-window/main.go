// Command globe-window runs the draw globe in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/lixenwraith/lucky-globe/audio"
	"github.com/lixenwraith/lucky-globe/config"
	"github.com/lixenwraith/lucky-globe/core"
	"github.com/lixenwraith/lucky-globe/draw"
	"github.com/lixenwraith/lucky-globe/engine"
	"github.com/lixenwraith/lucky-globe/globe"
	"github.com/lixenwraith/lucky-globe/input"
	"github.com/lixenwraith/lucky-globe/render"
	"github.com/lixenwraith/lucky-globe/roster"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	rosterFlag = flag.String("roster", "", "Roster file (.json, .yaml, .csv)")
	sampleFlag = flag.Int("sample", roster.DefaultSampleSize, "Demo participants when no roster is given")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

type game struct {
	cfg     *config.Config
	seq     *draw.Sequence
	vis     *globe.Visualizer
	sound   *audio.SoundManager
	sched   *engine.ManualScheduler
	painter *render.RasterPainter

	width, height int
	frame         *globe.Frame
	surface       *ebiten.Image
	fit           float64

	dragging  bool
	touchIDs  []ebiten.TouchID
	pinchDist float64

	picking bool
	status  string
}

func newGame(cfg *config.Config, sound *audio.SoundManager) *game {
	clock := engine.NewTimeProvider()
	g := &game{
		cfg:     cfg,
		seq:     draw.NewSequence(clock, cfg.DrawTiming(), ebiten.DefaultTPS),
		sound:   sound,
		painter: render.NewRasterPainter(),
		width:   windowWidth,
		height:  windowHeight,
		fit:     1,
	}
	g.seq.OnPhase(sound.PhaseListener())
	g.vis = globe.NewVisualizer(g.seq, cfg.GlobeParams())
	g.sched = engine.NewManualScheduler(g.step)
	g.sched.Start()
	return g
}

// step advances one frame, run by the scheduler after posted work
func (g *game) step() {
	g.seq.Update()
	g.sound.SetSpinSpeed(g.seq.SpeedMultiplier())
	g.frame = g.vis.Tick(g.width, g.height)
	if fit := render.FitScale(g.frame); fit > 0 {
		g.fit = fit
	}
}

func (g *game) pointer(x, y int) (float64, float64) {
	return float64(x) / g.fit, float64(y) / g.fit
}

func (g *game) Update() error {
	ctrl := g.vis.Controller()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := g.seq.Begin(); err != nil {
			g.status = err.Error()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.seq.Cancel()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sound.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.vis.ResetView()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.pickRoster()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		ctrl.Wheel(-wy * input.ZoomStep)
	}

	g.updateMouse(ctrl)
	g.updateTouch(ctrl)

	g.sched.Tick()
	return nil
}

func (g *game) updateMouse(ctrl *globe.Controller) {
	x, y := g.pointer(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = ctrl.Start(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.dragging {
			ctrl.End()
			g.dragging = false
		}
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		ctrl.Move(x, y)
	}
}

// updateTouch maps one finger to drag and two fingers to pinch
func (g *game) updateTouch(ctrl *globe.Controller) {
	prev := len(g.touchIDs)
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])

	switch len(g.touchIDs) {
	case 1:
		x, y := g.pointer(ebiten.TouchPosition(g.touchIDs[0]))
		if prev != 1 {
			g.dragging = ctrl.Start(x, y)
		} else if g.dragging {
			ctrl.Move(x, y)
		}
		g.pinchDist = 0
	case 2:
		if g.dragging {
			ctrl.End()
			g.dragging = false
		}
		ax, ay := ebiten.TouchPosition(g.touchIDs[0])
		bx, by := ebiten.TouchPosition(g.touchIDs[1])
		dist := math.Hypot(float64(bx-ax), float64(by-ay))
		if g.pinchDist > 0 {
			ctrl.Pinch(g.pinchDist, dist)
		}
		g.pinchDist = dist
	default:
		if prev > 0 && g.dragging {
			ctrl.End()
			g.dragging = false
		}
		g.pinchDist = 0
	}
}

// pickRoster opens a native file dialog off the game loop
func (g *game) pickRoster() {
	if g.picking {
		return
	}
	g.picking = true
	core.Go(func() {
		path, err := zenity.SelectFile(
			zenity.Title("Open roster"),
			zenity.FileFilters{{
				Name:     "Rosters",
				Patterns: []string{"*.json", "*.yaml", "*.yml", "*.csv"},
			}},
		)
		var list []globe.Entity
		if err == nil {
			list, err = roster.Load(path)
		}
		g.sched.Post(func() {
			g.picking = false
			switch {
			case errors.Is(err, zenity.ErrCanceled):
			case err != nil:
				g.status = err.Error()
			default:
				list = roster.Exclude(list, g.cfg.Roster.Exclude)
				g.seq.SetEntities(list)
				g.status = fmt.Sprintf("%d participants from %s", len(list), filepath.Base(path))
			}
		})
	})
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	img := g.painter.Paint(g.frame)

	b := img.Bounds()
	if g.surface == nil || g.surface.Bounds().Dx() != b.Dx() || g.surface.Bounds().Dy() != b.Dy() {
		if g.surface != nil {
			g.surface.Deallocate()
		}
		g.surface = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.surface.WritePixels(img.Pix)
	screen.DrawImage(g.surface, nil)

	help := fmt.Sprintf("%s | Space: draw  Esc: cancel  O: open roster  M: mute  R: reset  Q: quit", g.seq.Phase())
	if g.status != "" {
		help += "\n" + g.status
	}
	ebitenutil.DebugPrintAt(screen, help, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "globe-window: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *rosterFlag != "" {
		cfg.Roster.Path = *rosterFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "globe-window: %v\n", err)
		os.Exit(2)
	}

	var entities []globe.Entity
	if cfg.Roster.Path != "" {
		var err error
		if entities, err = roster.Load(cfg.Roster.Path); err != nil {
			fmt.Fprintf(os.Stderr, "globe-window: %v\n", err)
			os.Exit(1)
		}
	} else {
		entities = roster.Sample(*sampleFlag, 1)
	}

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("[main] audio unavailable: %v", err)
		}
	}
	sound.SetMuted(*muteFlag || !cfg.Audio.Enabled)
	defer sound.Cleanup()

	g := newGame(cfg, sound)
	g.seq.SetEntities(roster.Exclude(entities, cfg.Roster.Exclude))

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Lucky Globe")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
