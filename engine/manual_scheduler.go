package engine

import "sync"

// ManualScheduler ticks only when told to, for hosts that own their frame clock,
// deterministic tests and offline export
// Post is safe from any goroutine, Tick must be called from one
type ManualScheduler struct {
	tick func()

	mu      sync.Mutex
	queue   []func()
	running bool
	ticks   uint64
}

// NewManualScheduler wraps tick
func NewManualScheduler(tick func()) *ManualScheduler {
	return &ManualScheduler{tick: tick}
}

func (m *ManualScheduler) Start() {
	m.mu.Lock()
	m.running = true
	m.mu.Unlock()
}

// Stop cancels future ticks and discards queued work
func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	m.running = false
	m.queue = nil
	m.mu.Unlock()
}

// Tick runs queued work then one frame, no-op while stopped
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	queued := m.queue
	m.queue = nil
	m.ticks++
	m.mu.Unlock()

	for _, fn := range queued {
		fn()
	}
	if m.tick != nil {
		m.tick()
	}
}

// Advance runs n ticks
func (m *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Post queues fn for the next tick, false while stopped
func (m *ManualScheduler) Post(fn func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return false
	}
	m.queue = append(m.queue, fn)
	return true
}

func (m *ManualScheduler) Ticks() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}

var (
	_ Scheduler = (*FrameLoop)(nil)
	_ Scheduler = (*ManualScheduler)(nil)
)
