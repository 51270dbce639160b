package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lucky-globe/core"
)

// DefaultPostQueue is the gesture/work queue depth of a FrameLoop
const DefaultPostQueue = 256

// FrameLoop reschedules a tick function on a fixed interval
// Stop cancels all future ticks; posted work is drained before each tick
type FrameLoop struct {
	interval time.Duration
	tick     func()
	queue    chan func()

	tickCount atomic.Uint64
	dropped   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameLoop creates a loop calling tick every interval once started
func NewFrameLoop(interval time.Duration, tick func()) *FrameLoop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FrameLoop{
		interval: interval,
		tick:     tick,
		queue:    make(chan func(), DefaultPostQueue),
		stopChan: make(chan struct{}),
	}
}

// Start begins ticking, repeated calls are ignored
func (fl *FrameLoop) Start() {
	if fl.running.CompareAndSwap(false, true) {
		fl.wg.Add(1)
		core.Go(fl.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick to return
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() {
		close(fl.stopChan)
		if fl.running.Load() {
			fl.wg.Wait()
		}
		fl.running.Store(false)
	})
}

// Running reports whether the loop goroutine is active
func (fl *FrameLoop) Running() bool {
	return fl.running.Load()
}

// Tick runs one frame synchronously
// Only call it from the loop goroutine or before Start
func (fl *FrameLoop) Tick() {
	fl.tickCount.Add(1)
	if fl.tick != nil {
		fl.tick()
	}
}

// Post queues fn for the loop goroutine, false if the loop is stopped or the queue is full
func (fl *FrameLoop) Post(fn func()) bool {
	select {
	case <-fl.stopChan:
		return false
	default:
	}

	select {
	case fl.queue <- fn:
		return true
	default:
		if fl.dropped.Add(1)%64 == 1 {
			log.Printf("[engine] frame loop queue full, dropped %d posts", fl.dropped.Load())
		}
		return false
	}
}

// Ticks returns the number of ticks run
func (fl *FrameLoop) Ticks() uint64 {
	return fl.tickCount.Load()
}

func (fl *FrameLoop) loop() {
	defer fl.wg.Done()

	ticker := time.NewTicker(fl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-fl.stopChan:
			return

		case fn := <-fl.queue:
			fn()

		case <-ticker.C:
			fl.drain()
			// Stop may have landed while draining
			select {
			case <-fl.stopChan:
				return
			default:
			}
			fl.Tick()
		}
	}
}

// drain runs queued work without blocking
func (fl *FrameLoop) drain() {
	for {
		select {
		case fn := <-fl.queue:
			fn()
		default:
			return
		}
	}
}
