package signal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvickers/renderlab/internal/signal"
)

func TestStream_SubscribePublishUnsubscribe(t *testing.T) {
	s := signal.NewStream[int]()

	var a, b []int
	unsubA := s.Subscribe(func(v int) { a = append(a, v) })
	unsubB := s.Subscribe(func(v int) { b = append(b, v) })
	require.Equal(t, 2, s.SubscriberCount())

	s.Publish(1)
	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{1}, b)

	unsubA()
	s.Publish(2)
	assert.Equal(t, []int{1}, a, "unsubscribed callback must not fire")
	assert.Equal(t, []int{1, 2}, b)

	// Double unsubscribe is harmless.
	unsubA()
	unsubB()
	assert.Equal(t, 0, s.SubscriberCount())
}

func TestThrottle_LeadingEdge(t *testing.T) {
	clock := signal.NewManualClock(time.Unix(1000, 0))
	var got []int
	throttled := signal.Throttle(16*time.Millisecond, clock, func(v int) { got = append(got, v) })

	throttled(1)
	assert.Equal(t, []int{1}, got, "first call fires immediately")
}

func TestThrottle_CoalescesToTrailingValue(t *testing.T) {
	clock := signal.NewManualClock(time.Unix(1000, 0))
	var got []int
	throttled := signal.Throttle(16*time.Millisecond, clock, func(v int) { got = append(got, v) })

	throttled(1)
	clock.Advance(4 * time.Millisecond)
	throttled(2)
	clock.Advance(4 * time.Millisecond)
	throttled(3)
	require.Equal(t, []int{1}, got, "calls inside the interval are deferred")

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, []int{1, 3}, got, "trailing call carries the latest value")
}

func TestThrottle_SpacedCallsAllFire(t *testing.T) {
	clock := signal.NewManualClock(time.Unix(1000, 0))
	var got []int
	throttled := signal.Throttle(16*time.Millisecond, clock, func(v int) { got = append(got, v) })

	throttled(1)
	clock.Advance(20 * time.Millisecond)
	throttled(2)
	clock.Advance(20 * time.Millisecond)
	throttled(3)

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDebounce_FiresOnceAfterQuietPeriod(t *testing.T) {
	clock := signal.NewManualClock(time.Unix(1000, 0))
	var got []string
	debounced := signal.Debounce(300*time.Millisecond, clock, func(v string) { got = append(got, v) })

	debounced("a")
	clock.Advance(100 * time.Millisecond)
	debounced("ab")
	clock.Advance(100 * time.Millisecond)
	debounced("abc")
	require.Empty(t, got, "nothing fires while calls keep arriving")

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, got, "fires once with the latest value")
}

func TestDebounce_SeparateBursts(t *testing.T) {
	clock := signal.NewManualClock(time.Unix(1000, 0))
	var got []string
	debounced := signal.Debounce(300*time.Millisecond, clock, func(v string) { got = append(got, v) })

	debounced("first")
	clock.Advance(400 * time.Millisecond)
	debounced("second")
	clock.Advance(400 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, got)
}
