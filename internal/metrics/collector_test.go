package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvickers/renderlab/internal/metrics"
	"github.com/rvickers/renderlab/internal/window"
)

func TestCollector_AccumulatesRenders(t *testing.T) {
	c := metrics.NewCollector()
	hook := c.Hook()

	hook(window.Stats{StartIndex: 0, EndIndex: 12}, 2*time.Millisecond)
	hook(window.Stats{StartIndex: 5, EndIndex: 17}, 4*time.Millisecond)

	assert.Equal(t, 2, c.Renders())
	assert.Equal(t, 24, c.MountedViews())
	assert.Equal(t, 3*time.Millisecond, c.AverageRenderTime())

	stats, elapsed := c.LastRender()
	assert.Equal(t, 5, stats.StartIndex)
	assert.Equal(t, 4*time.Millisecond, elapsed)
}

func TestCollector_Reset(t *testing.T) {
	c := metrics.NewCollector()
	c.Hook()(window.Stats{EndIndex: 10}, time.Millisecond)

	c.Reset()
	assert.Equal(t, 0, c.Renders())
	assert.Equal(t, 0, c.MountedViews())
	assert.Equal(t, time.Duration(0), c.AverageRenderTime())
}

func TestSampleProcess(t *testing.T) {
	sample, err := metrics.SampleProcess()
	require.NoError(t, err)
	assert.Positive(t, sample.RSS, "test process has resident memory")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, metrics.FormatBytes(tt.in))
	}
}
