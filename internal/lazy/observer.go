// Package lazy defers expensive item hydration until an item first becomes
// visible. It is the terminal analogue of lazy image loading: callbacks are
// registered per index and fired exactly once, the first time the rendered
// range covers that index.
package lazy

// LoadFunc hydrates the item at the given index.
type LoadFunc func(index int)

// Observer tracks which indices are awaiting hydration. Drive it from the
// renderer's instrumentation hook by calling Notify with each rendered
// range. Not safe for concurrent use.
type Observer struct {
	pending map[int]LoadFunc
	loaded  map[int]bool
}

// NewObserver creates an empty observer.
func NewObserver() *Observer {
	return &Observer{
		pending: make(map[int]LoadFunc),
		loaded:  make(map[int]bool),
	}
}

// Observe registers fn to run when index first becomes visible. Registering
// an index that already loaded is a no-op; re-registering a pending index
// replaces its callback.
func (o *Observer) Observe(index int, fn LoadFunc) {
	if fn == nil || o.loaded[index] {
		return
	}
	o.pending[index] = fn
}

// Notify reports that [start, end) is now visible, firing and retiring the
// pending callbacks inside the range. Callbacks run synchronously;
// invocation order within the range is unspecified.
func (o *Observer) Notify(start, end int) {
	for index, fn := range o.pending {
		if index < start || index >= end {
			continue
		}
		delete(o.pending, index)
		o.loaded[index] = true
		fn(index)
	}
}

// Loaded reports whether index has already been hydrated.
func (o *Observer) Loaded(index int) bool {
	return o.loaded[index]
}

// PendingCount returns the number of indices still awaiting visibility.
func (o *Observer) PendingCount() int {
	return len(o.pending)
}

// LoadedCount returns the number of indices hydrated so far.
func (o *Observer) LoadedCount() int {
	return len(o.loaded)
}

// Forget drops any pending or loaded record for index. Call it when the item
// at that position is removed or replaced.
func (o *Observer) Forget(index int) {
	delete(o.pending, index)
	delete(o.loaded, index)
}
