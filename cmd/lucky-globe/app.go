package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

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

const flashDuration = 2 * time.Second

// app is the terminal frontend, all fields below loop are owned by the frame loop goroutine
type app struct {
	cfg    *config.Config
	screen tcell.Screen
	clock  engine.Clock
	keys   *input.KeyTable
	sound  *audio.SoundManager
	seq    *draw.Sequence
	vis    *globe.Visualizer
	loop   *engine.FrameLoop

	buf     *render.RenderBuffer
	painter *render.TerminalPainter

	// roster source, nil loader means generated demo data
	loadRoster func() ([]globe.Entity, error)

	fit        float64
	dragging   bool
	flash      string
	flashUntil time.Time

	quit     chan struct{}
	quitOnce sync.Once
}

func newApp(cfg *config.Config, screen tcell.Screen, keys *input.KeyTable, sound *audio.SoundManager) *app {
	clock := engine.NewTimeProvider()
	seq := draw.NewSequence(clock, cfg.DrawTiming(), cfg.Display.FPS)
	seq.OnPhase(sound.PhaseListener())

	cols, rows := screen.Size()
	a := &app{
		cfg:     cfg,
		screen:  screen,
		clock:   clock,
		keys:    keys,
		sound:   sound,
		seq:     seq,
		vis:     globe.NewVisualizer(seq, cfg.GlobeParams()),
		buf:     render.NewRenderBuffer(cols, rows),
		painter: render.NewTerminalPainter(),
		fit:     1,
		quit:    make(chan struct{}),
	}
	a.loop = engine.NewFrameLoop(cfg.FrameInterval(), a.tick)
	return a
}

// tick advances the draw sequence and the globe, then paints one frame
func (a *app) tick() {
	a.seq.Update()
	a.sound.SetSpinSpeed(a.seq.SpeedMultiplier())

	cols, rows := a.buf.Size()
	f := a.vis.Tick(render.SurfaceSize(cols, rows))
	if fit := render.FitScale(f); fit > 0 {
		a.fit = fit
	}

	a.painter.Status = a.statusText()
	a.painter.Paint(a.buf, f)
	a.buf.Flush(a.screen)
}

func (a *app) statusText() string {
	var parts []string
	switch phase := a.seq.Phase(); phase {
	case draw.PhaseIdle:
		parts = append(parts, "space: draw")
	default:
		parts = append(parts, fmt.Sprintf("%s %.1fs", phase, a.seq.Remaining().Seconds()))
	}
	if n := a.seq.Draws(); n > 0 {
		parts = append(parts, fmt.Sprintf("draw #%d", n))
	}
	if a.sound.IsMuted() {
		parts = append(parts, "muted")
	}
	if a.flash != "" && a.clock.Now().Before(a.flashUntil) {
		parts = append(parts, a.flash)
	}
	return strings.Join(parts, " | ")
}

func (a *app) notify(format string, args ...any) {
	a.flash = fmt.Sprintf(format, args...)
	a.flashUntil = a.clock.Now().Add(flashDuration)
}

func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.buf.Resize(cols, rows)
	case *tcell.EventKey:
		a.apply(a.keys.Lookup(ev))
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// pointer converts a cell position to world pixels at the last frame's fit
func (a *app) pointer(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * render.CellWidth / a.fit
	y := (float64(row) + 0.5) * render.CellHeight / a.fit
	return x, y
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	ctrl := a.vis.Controller()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		ctrl.Wheel(-input.ZoomStep)
	case btn&tcell.WheelDown != 0:
		ctrl.Wheel(input.ZoomStep)
	case btn&tcell.Button1 != 0:
		x, y := a.pointer(ev.Position())
		if a.dragging {
			ctrl.Move(x, y)
		} else {
			a.dragging = ctrl.Start(x, y)
		}
	default:
		if a.dragging {
			ctrl.End()
			a.dragging = false
		}
	}
}

func (a *app) apply(intent input.Intent) {
	ctrl := a.vis.Controller()

	if dx, dy, ok := input.NudgeDelta(intent); ok {
		if ctrl.Start(0, 0) {
			ctrl.Move(dx, dy)
			ctrl.End()
		}
		return
	}

	switch intent {
	case input.IntentQuit:
		a.stop()
	case input.IntentDraw:
		if err := a.seq.Begin(); err != nil {
			switch {
			case errors.Is(err, draw.ErrEmptyRoster):
				a.notify("roster is empty")
			case errors.Is(err, draw.ErrDrawInProgress):
				a.notify("draw in progress")
			}
		}
	case input.IntentCancel:
		a.seq.Cancel()
	case input.IntentToggleMute:
		a.sound.ToggleMute()
	case input.IntentResetView:
		if !a.vis.ResetView() {
			a.notify("view locked while spinning")
		}
	case input.IntentZoomIn:
		ctrl.Wheel(-input.ZoomStep)
	case input.IntentZoomOut:
		ctrl.Wheel(input.ZoomStep)
	case input.IntentReloadRoster:
		a.reload()
	}
}

// reload reads the roster off the loop goroutine and posts the result back
func (a *app) reload() {
	if a.loadRoster == nil {
		a.notify("no roster file")
		return
	}
	core.Go(func() {
		list, err := a.loadRoster()
		a.loop.Post(func() {
			if err != nil {
				log.Printf("[main] roster reload failed: %v", err)
				a.notify("reload failed")
				return
			}
			list = roster.Exclude(list, a.cfg.Roster.Exclude)
			a.seq.SetEntities(list)
			a.notify("%d participants", len(list))
		})
	})
}

func (a *app) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// pollEvents forwards screen events to the frame loop until the screen is finalized
func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.loop.Post(func() { a.handleEvent(ev) })
	}
}

// run blocks until quit or a shutdown signal and returns the exit code
func (a *app) run() int {
	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)
	defer signal.Stop(sigCh)

	a.loop.Start()
	core.Go(a.pollEvents)

	for {
		select {
		case <-a.quit:
			return 0
		case sig := <-sigCh:
			if isReload(sig) {
				a.loop.Post(a.reload)
				continue
			}
			log.Printf("[main] %v received, shutting down", sig)
			return 0
		}
	}
}

// shutdown stops the loop before the screen so no tick flushes into a finalized screen
func (a *app) shutdown() {
	a.loop.Stop()
	a.sound.Cleanup()
	core.SetCrashScreen(nil)
	a.screen.Fini()
}
