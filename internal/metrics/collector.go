// Package metrics aggregates render accounting for the windowed renderer
// and samples process resource usage for the demo's stats panel.
package metrics

import (
	"sync"
	"time"

	"github.com/rvickers/renderlab/internal/window"
)

// Collector accumulates per-render measurements. It is fed from the
// renderer's instrumentation hook; all other methods are read-only
// snapshots. Safe for concurrent use so the TUI can read while signal
// timers write.
type Collector struct {
	mu sync.Mutex

	renders      int
	mountedViews int
	totalElapsed time.Duration
	lastElapsed  time.Duration
	lastStats    window.Stats
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Hook returns the instrumentation callback to install on a renderer.
func (c *Collector) Hook() window.Instrumentation {
	return func(stats window.Stats, elapsed time.Duration) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.renders++
		c.mountedViews += stats.EndIndex - stats.StartIndex
		c.totalElapsed += elapsed
		c.lastElapsed = elapsed
		c.lastStats = stats
	}
}

// Renders returns the number of completed renders.
func (c *Collector) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

// MountedViews returns the cumulative number of views mounted across all
// renders.
func (c *Collector) MountedViews() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mountedViews
}

// LastRender returns the stats and duration of the most recent render.
func (c *Collector) LastRender() (window.Stats, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastStats, c.lastElapsed
}

// AverageRenderTime returns the mean render duration, or 0 before the first
// render.
func (c *Collector) AverageRenderTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renders == 0 {
		return 0
	}
	return c.totalElapsed / time.Duration(c.renders)
}

// Reset zeroes all counters.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renders = 0
	c.mountedViews = 0
	c.totalElapsed = 0
	c.lastElapsed = 0
	c.lastStats = window.Stats{}
}
