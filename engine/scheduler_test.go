package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/lucky-globe/globe"
)

func TestManualSchedulerTicksOnlyWhenStarted(t *testing.T) {
	count := 0
	m := NewManualScheduler(func() { count++ })

	m.Tick()
	if count != 0 {
		t.Error("Expected no tick before Start")
	}

	m.Start()
	m.Advance(10)
	if count != 10 || m.Ticks() != 10 {
		t.Errorf("Expected 10 ticks, got %d (counter %d)", count, m.Ticks())
	}

	m.Stop()
	m.Advance(5)
	if count != 10 {
		t.Errorf("Expected no ticks after Stop, got %d", count)
	}
}

func TestManualSchedulerPostRunsBeforeTick(t *testing.T) {
	var order []string
	m := NewManualScheduler(func() { order = append(order, "tick") })

	if m.Post(func() {}) {
		t.Error("Expected Post rejected before Start")
	}

	m.Start()
	m.Post(func() { order = append(order, "a") })
	m.Post(func() { order = append(order, "b") })
	m.Tick()

	want := []string{"a", "b", "tick"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestManualSchedulerDrivesVisualizer(t *testing.T) {
	in := &globe.StaticInputs{}
	v := globe.NewVisualizer(in, globe.DefaultParams())

	var placeholders int
	m := NewManualScheduler(func() {
		if v.Tick(800, 600).Placeholder {
			placeholders++
		}
	})
	m.Start()
	m.Advance(30)

	if placeholders != 30 {
		t.Errorf("Expected 30 placeholder frames, got %d", placeholders)
	}
}

func TestFrameLoopTicksAndStops(t *testing.T) {
	var count atomic.Int64
	fl := NewFrameLoop(2*time.Millisecond, func() { count.Add(1) })

	fl.Start()
	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	fl.Stop()

	if count.Load() < 5 {
		t.Fatalf("Expected at least 5 ticks, got %d", count.Load())
	}

	stopped := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != stopped {
		t.Errorf("Expected no ticks after Stop, got %d more", count.Load()-stopped)
	}
	if fl.Running() {
		t.Error("Expected loop not running after Stop")
	}
}

func TestFrameLoopPostRunsOnLoop(t *testing.T) {
	ran := make(chan struct{})
	fl := NewFrameLoop(time.Millisecond, nil)
	fl.Start()
	defer fl.Stop()

	if !fl.Post(func() { close(ran) }) {
		t.Fatal("Expected Post accepted")
	}
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("Posted work never ran")
	}
}

func TestFrameLoopPostAfterStop(t *testing.T) {
	fl := NewFrameLoop(time.Millisecond, nil)
	fl.Start()
	fl.Stop()
	if fl.Post(func() {}) {
		t.Error("Expected Post rejected after Stop")
	}
}

func TestFrameLoopStopWithoutStart(t *testing.T) {
	fl := NewFrameLoop(time.Millisecond, nil)
	fl.Stop()
	fl.Stop()
}

func TestMockClockDrivesClockInterface(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	var c Clock = mock

	if !c.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, c.Now())
	}
	mock.Advance(90 * time.Second)
	if got := c.Now().Sub(start); got != 90*time.Second {
		t.Errorf("Expected 90s elapsed, got %v", got)
	}
	next := start.Add(time.Hour)
	mock.SetTime(next)
	if !c.Now().Equal(next) {
		t.Errorf("Expected %v after SetTime, got %v", next, c.Now())
	}
}

func TestTimeProviderAdvances(t *testing.T) {
	var c Clock = NewTimeProvider()
	t1 := c.Now()
	time.Sleep(2 * time.Millisecond)
	if !c.Now().After(t1) {
		t.Error("Expected wall clock to advance")
	}
}
