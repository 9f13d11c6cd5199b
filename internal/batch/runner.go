package batch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Frame size bounds.
const (
	// DefaultFrameSize is the default number of events applied per frame.
	DefaultFrameSize = 64

	// MinFrameSize is the smallest allowed frame size.
	MinFrameSize = 1

	// MaxFrameSize is the largest allowed frame size.
	MaxFrameSize = 4096
)

// Common errors.
var (
	ErrInvalidFrameSize = errors.New("frame size must be between 1 and 4096")
	ErrNilApplyFunc     = errors.New("apply func cannot be nil")
	ErrNoEvents         = errors.New("events slice cannot be empty")
)

// ApplyFunc applies one frame of events. frameIndex is 0-based.
type ApplyFunc[T any] func(ctx context.Context, frame []T, frameIndex int) error

// ProgressFunc is invoked after each applied frame.
type ProgressFunc func(p Progress)

// Progress describes how far a replay has advanced.
type Progress struct {
	TotalEvents   int
	AppliedEvents int
	TotalFrames   int
	AppliedFrames int
	StartedAt     time.Time
}

// Percent returns completion as a value in [0, 100].
func (p Progress) Percent() float64 {
	if p.TotalEvents == 0 {
		return 0
	}
	return 100 * float64(p.AppliedEvents) / float64(p.TotalEvents)
}

// EventsPerSecond returns the applied-event rate since the replay started.
func (p Progress) EventsPerSecond() float64 {
	elapsed := time.Since(p.StartedAt).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.AppliedEvents) / elapsed
}

// Runner replays an ordered event sequence in fixed-size frames. Frames are
// applied sequentially; the event order within and across frames is the
// order of the input slice. Not safe for concurrent use.
type Runner[T any] struct {
	frameSize  int
	onProgress ProgressFunc
}

// NewRunner creates a Runner with the given frame size.
func NewRunner[T any](frameSize int) (*Runner[T], error) {
	if frameSize < MinFrameSize || frameSize > MaxFrameSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrameSize, frameSize)
	}
	return &Runner[T]{frameSize: frameSize}, nil
}

// WithProgress sets the per-frame progress callback.
func (r *Runner[T]) WithProgress(fn ProgressFunc) *Runner[T] {
	r.onProgress = fn
	return r
}

// FrameSize returns the configured frame size.
func (r *Runner[T]) FrameSize() int {
	return r.frameSize
}

// Frames returns the [start, end) boundaries the events would be split into.
func (r *Runner[T]) Frames(totalEvents int) [][2]int {
	total := r.totalFrames(totalEvents)
	out := make([][2]int, total)
	for i := range total {
		start := i * r.frameSize
		end := start + r.frameSize
		if end > totalEvents {
			end = totalEvents
		}
		out[i] = [2]int{start, end}
	}
	return out
}

// Run applies all events frame by frame, stopping on the first error or on
// context cancellation.
func (r *Runner[T]) Run(ctx context.Context, events []T, apply ApplyFunc[T]) error {
	if len(events) == 0 {
		return ErrNoEvents
	}
	if apply == nil {
		return ErrNilApplyFunc
	}

	progress := Progress{
		TotalEvents: len(events),
		TotalFrames: r.totalFrames(len(events)),
		StartedAt:   time.Now(),
	}

	for frameIndex := range progress.TotalFrames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := frameIndex * r.frameSize
		end := start + r.frameSize
		if end > len(events) {
			end = len(events)
		}

		if err := apply(ctx, events[start:end], frameIndex); err != nil {
			return fmt.Errorf("frame %d failed: %w", frameIndex, err)
		}

		progress.AppliedEvents += end - start
		progress.AppliedFrames++
		if r.onProgress != nil {
			r.onProgress(progress)
		}
	}

	return nil
}

func (r *Runner[T]) totalFrames(totalEvents int) int {
	frames := totalEvents / r.frameSize
	if totalEvents%r.frameSize > 0 {
		frames++
	}
	return frames
}
