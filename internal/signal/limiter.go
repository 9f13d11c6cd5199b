package signal

import (
	"sync"
	"time"
)

// Default rate limits for the demo's signal sources.
const (
	// ScrollInterval caps scroll notifications at roughly one per frame.
	ScrollInterval = 16 * time.Millisecond

	// ResizeInterval caps resize notifications.
	ResizeInterval = 100 * time.Millisecond

	// InputDebounce is the quiet period applied to text input.
	InputDebounce = 300 * time.Millisecond
)

// Timer is the cancellable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts time for the rate limiters so tests can drive them
// deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// realClock delegates to the time package.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return realClock{} }

// Throttle returns a rate-limited wrapper around fn. The first call in a
// quiet window fires immediately (leading edge); further calls inside the
// interval are coalesced into a single trailing call carrying the latest
// value, so the final state is never dropped.
func Throttle[T any](interval time.Duration, clock Clock, fn func(T)) func(T) {
	var (
		mu       sync.Mutex
		lastFire time.Time
		pending  T
		waiting  bool
	)

	var fire func()
	fire = func() {
		mu.Lock()
		v := pending
		waiting = false
		lastFire = clock.Now()
		mu.Unlock()
		fn(v)
	}

	return func(v T) {
		mu.Lock()
		now := clock.Now()
		elapsed := now.Sub(lastFire)

		if waiting {
			pending = v
			mu.Unlock()
			return
		}

		if lastFire.IsZero() || elapsed >= interval {
			lastFire = now
			mu.Unlock()
			fn(v)
			return
		}

		pending = v
		waiting = true
		mu.Unlock()
		clock.AfterFunc(interval-elapsed, fire)
	}
}

// Debounce returns a trailing-edge wrapper around fn: each call resets the
// quiet period, and fn fires once with the latest value after calls stop
// arriving for the full wait duration.
func Debounce[T any](wait time.Duration, clock Clock, fn func(T)) func(T) {
	var (
		mu      sync.Mutex
		pending T
		timer   Timer
	)

	return func(v T) {
		mu.Lock()
		pending = v
		if timer != nil {
			timer.Stop()
		}
		timer = clock.AfterFunc(wait, func() {
			mu.Lock()
			value := pending
			timer = nil
			mu.Unlock()
			fn(value)
		})
		mu.Unlock()
	}
}
