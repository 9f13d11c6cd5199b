package window

// View is a single materialized item view. Views are positioned absolutely
// within the host's scrollable extent, so mount order never affects layout.
type View struct {
	// Index is the item's absolute position in the list.
	Index int

	// Top is the view's offset in pixels from the top of the scrollable extent.
	Top int

	// Height is the view's fixed height in pixels.
	Height int

	// Content is the rendered item body.
	Content string
}

// Host is the scrollable surface views are mounted into. Implementations are
// expected to treat MountBatch as a replace-all operation: previously mounted
// views do not survive a mount.
type Host interface {
	// SetTotalExtent sets the host's total scrollable height in pixels.
	SetTotalExtent(px int)

	// MountBatch atomically replaces all mounted views with the given batch.
	MountBatch(views []View)

	// ScrollTo requests the host move its scroll position to the given pixel
	// offset. The host is expected to report the move back through whatever
	// scroll signal feeds Renderer.HandleScroll.
	ScrollTo(px int)
}

// RenderFunc renders the item at the given absolute index into view content.
type RenderFunc[T any] func(item T, index int) string
