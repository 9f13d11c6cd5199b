package bench_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvickers/renderlab/internal/bench"
)

func smallOptions() bench.Options {
	opts := bench.DefaultOptions()
	opts.Items = 500
	return opts
}

func TestRun_ThrottleSuppressesEvents(t *testing.T) {
	report, err := bench.Run(context.Background(), smallOptions())
	require.NoError(t, err)

	assert.Positive(t, report.Events)
	assert.Positive(t, report.Delivered)
	assert.Less(t, report.Delivered, report.Events,
		"4ms events against a 16ms throttle must be coalesced")
	assert.LessOrEqual(t, report.Renders, report.Delivered)
}

func TestRun_ReachesBottomOfList(t *testing.T) {
	opts := smallOptions()
	report, err := bench.Run(context.Background(), opts)
	require.NoError(t, err)

	maxOffset := opts.Items*opts.ItemHeight - opts.ViewportHeight
	assert.Equal(t, maxOffset, report.FinalStats.ScrollOffset)
	assert.Equal(t, opts.Items, report.FinalStats.EndIndex)
	assert.InDelta(t, 100.0, report.FinalStats.ScrollPercent, 0.001)
}

func TestRun_RecordsMatchRenders(t *testing.T) {
	report, err := bench.Run(context.Background(), smallOptions())
	require.NoError(t, err)

	require.Len(t, report.Records, report.Renders)
	for _, rec := range report.Records {
		assert.Equal(t, rec.EndIndex-rec.StartIndex, rec.Mounted)
		assert.LessOrEqual(t, rec.Mounted, 13, "visible 10 + buffer 2, plus a partial row")
	}

	// Offsets in the replay only move forward.
	for i := 1; i < len(report.Records); i++ {
		assert.GreaterOrEqual(t, report.Records[i].Offset, report.Records[i-1].Offset)
	}
}

func TestRun_OptionValidation(t *testing.T) {
	opts := smallOptions()
	opts.EventStep = 0
	_, err := bench.Run(context.Background(), opts)
	assert.ErrorIs(t, err, bench.ErrInvalidEventStep)

	opts = smallOptions()
	opts.Stride = 0
	_, err = bench.Run(context.Background(), opts)
	assert.ErrorIs(t, err, bench.ErrInvalidStride)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bench.Run(ctx, smallOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_TinyListStillCompletes(t *testing.T) {
	opts := smallOptions()
	opts.Items = 5
	opts.EventStep = time.Millisecond

	report, err := bench.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, report.FinalStats.ScrollOffset, "content fits the viewport")
	assert.Equal(t, 5, report.FinalStats.EndIndex)
}
