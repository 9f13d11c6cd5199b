// Package bench replays a synthetic scroll trace through the windowed
// renderer without a terminal, measuring how many renders a throttled
// signal stream actually produces for a given event load.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rvickers/renderlab/internal/batch"
	"github.com/rvickers/renderlab/internal/items"
	"github.com/rvickers/renderlab/internal/metrics"
	"github.com/rvickers/renderlab/internal/signal"
	"github.com/rvickers/renderlab/internal/window"
)

// Option bounds.
var (
	ErrInvalidEventStep = errors.New("event step must be >= 1ms")
	ErrInvalidStride    = errors.New("scroll stride must be >= 1")
)

// Options configures a replay.
type Options struct {
	// Items is the dataset size.
	Items int

	// ItemHeight is the per-item height in pixels.
	ItemHeight int

	// Buffer is the overscan row count.
	Buffer int

	// ViewportHeight is the viewport height in pixels.
	ViewportHeight int

	// Stride is the scroll distance in pixels between consecutive events.
	Stride int

	// EventStep is the simulated time between scroll events.
	EventStep time.Duration

	// FrameSize is how many events the replay applies per batch frame.
	FrameSize int
}

// DefaultOptions returns a replay over 10,000 rows with a 60px item height,
// emitting events faster than the throttle interval.
func DefaultOptions() Options {
	return Options{
		Items:          10000,
		ItemHeight:     60,
		Buffer:         window.DefaultBuffer,
		ViewportHeight: 600,
		Stride:         90,
		EventStep:      4 * time.Millisecond,
		FrameSize:      batch.DefaultFrameSize,
	}
}

// RenderRecord is one completed render during the replay.
type RenderRecord struct {
	Render     int           `json:"render"`
	Offset     int           `json:"offset"`
	StartIndex int           `json:"start_index"`
	EndIndex   int           `json:"end_index"`
	Mounted    int           `json:"mounted"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Report summarizes a finished replay.
type Report struct {
	Options Options `json:"options"`

	// Events is the number of scroll events published.
	Events int `json:"events"`

	// Delivered is how many events survived throttling.
	Delivered int `json:"delivered"`

	// Renders is how many of the delivered events changed the window.
	Renders int `json:"renders"`

	// MountedViews is the cumulative number of views mounted.
	MountedViews int `json:"mounted_views"`

	// AvgRender is the mean render duration.
	AvgRender time.Duration `json:"avg_render_ns"`

	// Wall is the real elapsed time of the replay.
	Wall time.Duration `json:"wall_ns"`

	// FinalStats is the renderer state after the replay.
	FinalStats window.Stats `json:"final_stats"`

	// Process is a resource usage sample taken after the replay.
	Process metrics.ProcessSample `json:"process"`

	// Records holds one entry per completed render.
	Records []RenderRecord `json:"records,omitempty"`
}

// countingHost measures mounts without materializing a surface.
type countingHost struct {
	extent int
	offset int
}

func (h *countingHost) SetTotalExtent(px int) { h.extent = px }

func (h *countingHost) MountBatch([]window.View) {}

func (h *countingHost) ScrollTo(px int) { h.offset = px }

// Run replays the scroll trace described by opts and returns the report.
// The trace walks from the top of the list to the bottom in Stride steps,
// through a throttled stream driven by a simulated clock, so results are
// deterministic apart from render durations.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.EventStep < time.Millisecond {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidEventStep, opts.EventStep)
	}
	if opts.Stride < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, opts.Stride)
	}

	data := items.Generate(opts.Items, 42, time.Now())

	host := &countingHost{}
	renderer, err := window.New(host, data, window.Config{
		ItemHeight:     opts.ItemHeight,
		Buffer:         opts.Buffer,
		ViewportHeight: opts.ViewportHeight,
	}, func(it items.Item, _ int) string {
		return it.Title + " " + string(it.Status) + " " + it.Description
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Options: opts}
	collector := metrics.NewCollector()
	renderer.SetInstrumentation(func(stats window.Stats, elapsed time.Duration) {
		collector.Hook()(stats, elapsed)
		report.Records = append(report.Records, RenderRecord{
			Render:     collector.Renders(),
			Offset:     stats.ScrollOffset,
			StartIndex: stats.StartIndex,
			EndIndex:   stats.EndIndex,
			Mounted:    stats.EndIndex - stats.StartIndex,
			Elapsed:    elapsed,
		})
	})

	// Wire the renderer behind a throttled stream, the way the demo's host
	// surface would feed it.
	clock := signal.NewManualClock(time.Unix(0, 0))
	stream := signal.NewStream[int]()
	delivered := 0
	unsubscribe := stream.Subscribe(signal.Throttle(signal.ScrollInterval, clock, func(offset int) {
		delivered++
		renderer.HandleScroll(offset)
	}))
	defer unsubscribe()

	trace := buildTrace(opts)
	report.Events = len(trace)

	runner, err := batch.NewRunner[int](opts.FrameSize)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	err = runner.Run(ctx, trace, func(_ context.Context, frame []int, _ int) error {
		for _, offset := range frame {
			clock.Advance(opts.EventStep)
			stream.Publish(offset)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Flush any trailing throttled event.
	clock.Advance(signal.ScrollInterval)

	report.Wall = time.Since(started)
	report.Delivered = delivered
	report.Renders = collector.Renders()
	report.MountedViews = collector.MountedViews()
	report.AvgRender = collector.AverageRenderTime()
	report.FinalStats = renderer.Stats()

	if sample, sampleErr := metrics.SampleProcess(); sampleErr == nil {
		report.Process = sample
	}
	return report, nil
}

// buildTrace produces the scroll offsets from top to bottom of the list.
func buildTrace(opts Options) []int {
	maxOffset := opts.Items*opts.ItemHeight - opts.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}

	trace := make([]int, 0, maxOffset/opts.Stride+2)
	for offset := 0; offset <= maxOffset; offset += opts.Stride {
		trace = append(trace, offset)
	}
	if len(trace) == 0 || trace[len(trace)-1] != maxOffset {
		trace = append(trace, maxOffset)
	}
	return trace
}
