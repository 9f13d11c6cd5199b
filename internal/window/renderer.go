package window

import (
	"errors"
	"fmt"
	"time"
)

// DefaultBuffer is the default number of overscan rows rendered past the
// visible range to mask render latency during fast scrolling.
const DefaultBuffer = 2

// Configuration validation errors.
var (
	ErrInvalidItemHeight = errors.New("item height must be >= 1")
	ErrNegativeBuffer    = errors.New("buffer must be >= 0")
	ErrNegativeViewport  = errors.New("viewport height must be >= 0")
	ErrNilRenderFunc     = errors.New("render func cannot be nil")
)

// Config holds the fixed geometry of a Renderer.
type Config struct {
	// ItemHeight is the fixed per-item height in pixels.
	ItemHeight int

	// Buffer is the overscan row count appended past the visible range.
	Buffer int

	// ViewportHeight is the initial viewport height in pixels.
	ViewportHeight int
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.ItemHeight < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemHeight, c.ItemHeight)
	}
	if c.Buffer < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeBuffer, c.Buffer)
	}
	if c.ViewportHeight < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeViewport, c.ViewportHeight)
	}
	return nil
}

// Range is a half-open index interval [Start, End) into the item list.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether index i falls within the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Stats is a read-only snapshot of the renderer's viewport state.
type Stats struct {
	TotalItems    int     `json:"total_items"`
	VisibleCount  int     `json:"visible_count"`
	StartIndex    int     `json:"start_index"`
	EndIndex      int     `json:"end_index"`
	ScrollOffset  int     `json:"scroll_offset"`
	ScrollPercent float64 `json:"scroll_percent"`
}

// Instrumentation is an optional hook invoked after every completed render
// with the post-render stats and the render duration. Hosts that want render
// accounting opt in explicitly; nothing is intercepted globally.
type Instrumentation func(stats Stats, elapsed time.Duration)

// Renderer owns an ordered item list and renders only the slice intersecting
// the viewport. All methods are no-ops when the host is nil.
type Renderer[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	host       Host

	itemHeight     int
	buffer         int
	viewportHeight int
	visibleCount   int
	scrollOffset   int

	rng  Range
	hook Instrumentation
}

// New creates a Renderer over a copy of items, configures the host's total
// scrollable extent to len(items)*ItemHeight, and mounts the initial window
// at offset 0. The caller's slice is never written to by mutation operations.
func New[T any](host Host, items []T, cfg Config, renderFunc RenderFunc[T]) (*Renderer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderFunc == nil {
		return nil, ErrNilRenderFunc
	}

	r := &Renderer[T]{
		items:          append([]T(nil), items...),
		renderFunc:     renderFunc,
		host:           host,
		itemHeight:     cfg.ItemHeight,
		buffer:         cfg.Buffer,
		viewportHeight: cfg.ViewportHeight,
	}
	r.visibleCount = ceilDiv(cfg.ViewportHeight, cfg.ItemHeight)
	r.rng = r.computeRange()

	if r.host != nil {
		r.host.SetTotalExtent(len(r.items) * r.itemHeight)
		r.render()
	}
	return r, nil
}

// SetInstrumentation installs the per-render hook. A nil hook disables it.
func (r *Renderer[T]) SetInstrumentation(hook Instrumentation) {
	r.hook = hook
}

// HandleScroll records a new scroll offset and re-renders only when the
// derived index range actually changed. Calling it twice with the same offset
// renders at most once.
func (r *Renderer[T]) HandleScroll(offset int) {
	if r.host == nil {
		return
	}
	if offset < 0 {
		offset = 0
	}

	// State must be current before the range is derived from it.
	r.scrollOffset = offset

	next := r.computeRange()
	if next == r.rng {
		return
	}
	r.rng = next
	r.render()
}

// HandleResize recomputes the viewport capacity and unconditionally
// re-renders: a capacity change invalidates the mounted set even when the
// index range happens to be identical.
func (r *Renderer[T]) HandleResize(viewportHeight int) {
	if r.host == nil {
		return
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}

	r.viewportHeight = viewportHeight
	r.visibleCount = ceilDiv(viewportHeight, r.itemHeight)
	r.rng = r.computeRange()
	r.render()
}

// InsertItem inserts item at position, growing the host extent. A render is
// triggered only when the position falls inside the currently mounted range;
// otherwise the item picks up its correct view the next time it scrolls in.
// Positions are clamped to [0, len(items)].
func (r *Renderer[T]) InsertItem(item T, position int) {
	if r.host == nil {
		return
	}
	if position < 0 {
		position = 0
	}
	if position > len(r.items) {
		position = len(r.items)
	}

	r.items = append(r.items, item)
	copy(r.items[position+1:], r.items[position:])
	r.items[position] = item

	r.host.SetTotalExtent(len(r.items) * r.itemHeight)
	r.applyMutation(position)
}

// UpdateItem replaces the record at index. Out-of-range indices are ignored.
func (r *Renderer[T]) UpdateItem(index int, item T) {
	if r.host == nil || index < 0 || index >= len(r.items) {
		return
	}
	r.items[index] = item
	r.applyMutation(index)
}

// RemoveItem deletes the record at index, shrinking the host extent.
// Out-of-range indices are ignored.
func (r *Renderer[T]) RemoveItem(index int) {
	if r.host == nil || index < 0 || index >= len(r.items) {
		return
	}
	r.items = append(r.items[:index], r.items[index+1:]...)

	r.host.SetTotalExtent(len(r.items) * r.itemHeight)
	r.applyMutation(index)
}

// applyMutation re-renders when the mutated index was inside the mounted
// range, and otherwise silently re-clamps the range against the new length.
func (r *Renderer[T]) applyMutation(index int) {
	inRange := r.rng.Contains(index)
	r.rng = r.computeRange()
	if inRange {
		r.render()
	}
}

// ScrollToIndex asks the host to move its scroll position so the given item
// sits at the top of the viewport. Out-of-range indices are a no-op; the
// actual window move happens when the host's scroll signal arrives back at
// HandleScroll.
func (r *Renderer[T]) ScrollToIndex(index int) {
	if r.host == nil || index < 0 || index >= len(r.items) {
		return
	}
	r.host.ScrollTo(index * r.itemHeight)
}

// Item returns the record at index and whether the index was valid.
func (r *Renderer[T]) Item(index int) (T, bool) {
	if index < 0 || index >= len(r.items) {
		var zero T
		return zero, false
	}
	return r.items[index], true
}

// Len returns the total item count.
func (r *Renderer[T]) Len() int {
	return len(r.items)
}

// VisibleRange returns the currently mounted index range.
func (r *Renderer[T]) VisibleRange() Range {
	return r.rng
}

// Stats returns a snapshot of the viewport state. ScrollPercent is the scroll
// offset as a percentage of the maximum scrollable distance, clamped to
// [0, 100]; it is 0 when the content fits entirely within the viewport.
func (r *Renderer[T]) Stats() Stats {
	return Stats{
		TotalItems:    len(r.items),
		VisibleCount:  r.visibleCount,
		StartIndex:    r.rng.Start,
		EndIndex:      r.rng.End,
		ScrollOffset:  r.scrollOffset,
		ScrollPercent: r.scrollPercent(),
	}
}

func (r *Renderer[T]) scrollPercent() float64 {
	maxScroll := len(r.items)*r.itemHeight - r.viewportHeight
	if maxScroll <= 0 {
		return 0
	}
	pct := 100 * float64(r.scrollOffset) / float64(maxScroll)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// computeRange derives the index range from the current viewport state:
// Start = offset/H, End = min(Start+visibleCount+buffer, N).
func (r *Renderer[T]) computeRange() Range {
	n := len(r.items)

	start := r.scrollOffset / r.itemHeight
	if start > n {
		start = n
	}

	end := start + r.visibleCount + r.buffer
	if end > n {
		end = n
	}

	return Range{Start: start, End: end}
}

// render discards the mounted views and mounts the current range as a single
// batch. Cost is O(range length), never O(N), and the host sees exactly one
// structural mutation.
func (r *Renderer[T]) render() {
	if r.host == nil {
		return
	}

	started := time.Now()
	views := make([]View, 0, r.rng.Len())
	for i := r.rng.Start; i < r.rng.End; i++ {
		views = append(views, View{
			Index:   i,
			Top:     i * r.itemHeight,
			Height:  r.itemHeight,
			Content: r.renderFunc(r.items[i], i),
		})
	}
	r.host.MountBatch(views)

	if r.hook != nil {
		r.hook(r.Stats(), time.Since(started))
	}
}

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
