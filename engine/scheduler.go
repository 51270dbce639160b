package engine

// Scheduler drives one recurring per-frame callback
// Posted work runs on the scheduler's goroutine before the next tick, so the
// tick function and posted closures never race
type Scheduler interface {
	Start()
	Stop()
	Tick()
	Post(fn func()) bool
	Ticks() uint64
}
