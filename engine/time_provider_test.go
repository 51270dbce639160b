package engine

import (
	"sync"
	"testing"
	"time"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(next)
	if now := mock.Now(); !now.Equal(next) {
		t.Errorf("Expected %v after SetTime, got %v", next, now)
	}

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	expected := next.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected %v after Advance, got %v", expected, now)
	}

	got := mock.Step(16*time.Millisecond, 10)
	expected = expected.Add(160 * time.Millisecond)
	if !got.Equal(expected) {
		t.Errorf("Expected %v after Step, got %v", expected, got)
	}
}

func TestMockTimeProviderConcurrent(t *testing.T) {
	mock := NewMockTimeProvider(time.Time{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(time.Time{}); got != 800*time.Millisecond {
		t.Errorf("Expected 800ms elapsed, got %v", got)
	}
}
