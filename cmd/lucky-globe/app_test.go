package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lucky-globe/audio"
	"github.com/lixenwraith/lucky-globe/config"
	"github.com/lixenwraith/lucky-globe/draw"
	"github.com/lixenwraith/lucky-globe/input"
	"github.com/lixenwraith/lucky-globe/render"
	"github.com/lixenwraith/lucky-globe/roster"
)

func newTestApp(t *testing.T, participants int) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	a := newApp(config.Default(), screen, input.DefaultKeyTable(), audio.NewSoundManager(audio.DefaultConfig()))
	if participants > 0 {
		a.seq.SetEntities(roster.Sample(participants, 7))
	}
	return a
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestAppTickPlaceholder(t *testing.T) {
	a := newTestApp(t, 0)
	a.tick()

	if row := screenRow(a.screen, 12); !strings.Contains(row, render.PlaceholderText) {
		t.Errorf("Expected placeholder on middle row, got %q", row)
	}
}

func TestAppTickStatus(t *testing.T) {
	a := newTestApp(t, 30)
	a.tick()

	if row := screenRow(a.screen, 23); !strings.Contains(row, "30 entities") || !strings.Contains(row, "space: draw") {
		t.Errorf("Expected status line, got %q", row)
	}
}

func TestAppDrawAndCancel(t *testing.T) {
	a := newTestApp(t, 10)

	a.apply(input.IntentDraw)
	if a.seq.Phase() != draw.PhaseSpinning {
		t.Fatalf("Expected Spinning, got %v", a.seq.Phase())
	}

	a.apply(input.IntentDraw)
	if !strings.Contains(a.statusText(), "draw in progress") {
		t.Errorf("Expected in-progress notice, got %q", a.statusText())
	}

	a.apply(input.IntentResetView)
	if !strings.Contains(a.statusText(), "view locked") {
		t.Errorf("Expected locked notice, got %q", a.statusText())
	}

	a.apply(input.IntentCancel)
	if a.seq.Phase() != draw.PhaseIdle {
		t.Errorf("Expected Idle after cancel, got %v", a.seq.Phase())
	}
}

func TestAppDrawEmptyRoster(t *testing.T) {
	a := newTestApp(t, 0)
	a.apply(input.IntentDraw)

	if a.seq.Phase() != draw.PhaseIdle {
		t.Errorf("Expected Idle, got %v", a.seq.Phase())
	}
	if !strings.Contains(a.statusText(), "roster is empty") {
		t.Errorf("Expected empty roster notice, got %q", a.statusText())
	}
}

func TestAppNudgeAndZoom(t *testing.T) {
	a := newTestApp(t, 10)
	before := a.vis.Camera()

	a.apply(input.IntentNudgeRight)
	after := a.vis.Camera()
	want := input.Nudge * a.vis.Params().DragSensitivity
	if got := after.AngleX - before.AngleX; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Expected AngleX delta %v, got %v", want, got)
	}
	if after.Dragging {
		t.Error("Expected nudge to release the drag")
	}

	a.apply(input.IntentZoomIn)
	if a.vis.Camera().Scale <= before.Scale {
		t.Errorf("Expected zoom in, scale %v -> %v", before.Scale, a.vis.Camera().Scale)
	}

	a.apply(input.IntentResetView)
	if a.vis.Camera().Scale != before.Scale {
		t.Errorf("Expected reset scale %v, got %v", before.Scale, a.vis.Camera().Scale)
	}
}

func TestAppMouseDrag(t *testing.T) {
	a := newTestApp(t, 10)
	start := a.vis.Camera().AngleX

	a.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	if !a.dragging {
		t.Fatal("Expected drag to start")
	}
	a.handleEvent(tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone))
	if a.vis.Camera().AngleX <= start {
		t.Errorf("Expected AngleX to grow, got %v", a.vis.Camera().AngleX)
	}
	a.handleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	if a.dragging || a.vis.Camera().Dragging {
		t.Error("Expected drag to end on release")
	}
}

func TestAppMouseLockedWhileSpinning(t *testing.T) {
	a := newTestApp(t, 10)
	a.apply(input.IntentDraw)

	a.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	if a.dragging {
		t.Error("Expected drag rejected while spinning")
	}
}

func TestAppResize(t *testing.T) {
	a := newTestApp(t, 0)
	a.handleEvent(tcell.NewEventResize(100, 40))

	if w, h := a.buf.Size(); w != 100 || h != 40 {
		t.Errorf("Expected 100x40, got %dx%d", w, h)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, 0)
	a.apply(input.IntentQuit)
	a.apply(input.IntentQuit)

	select {
	case <-a.quit:
	default:
		t.Error("Expected quit channel closed")
	}
}

func TestAppMuteToggle(t *testing.T) {
	a := newTestApp(t, 0)
	a.apply(input.IntentToggleMute)
	if !strings.Contains(a.statusText(), "muted") {
		t.Errorf("Expected muted in status, got %q", a.statusText())
	}
}

func TestAppReloadWithoutFile(t *testing.T) {
	a := newTestApp(t, 0)
	a.apply(input.IntentReloadRoster)
	if !strings.Contains(a.statusText(), "no roster file") {
		t.Errorf("Expected notice, got %q", a.statusText())
	}
}
