package listview

import (
	"sort"
	"strings"

	"github.com/rvickers/renderlab/internal/window"
)

// termHost is a window.Host backed by terminal rows. Mounted views are kept
// sorted by position; Visible extracts the slice of rows intersecting the
// viewport when the component draws.
type termHost struct {
	extent int
	offset int
	height int
	views  []window.View

	// onScroll is the host's scroll signal back to the renderer.
	onScroll func(px int)
}

func (h *termHost) SetTotalExtent(px int) {
	h.extent = px
}

func (h *termHost) MountBatch(views []window.View) {
	h.views = views
	sort.Slice(h.views, func(i, j int) bool { return h.views[i].Top < h.views[j].Top })
}

// ScrollTo clamps the requested offset so the viewport never scrolls past
// the last row, then reports the move back through the scroll signal.
func (h *termHost) ScrollTo(px int) {
	maxOffset := h.extent - h.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if px > maxOffset {
		px = maxOffset
	}
	if px < 0 {
		px = 0
	}
	h.offset = px
	if h.onScroll != nil {
		h.onScroll(px)
	}
}

// Visible renders the rows covering [offset, offset+height). Rows without a
// mounted view (outside the windowed range) come out blank, which in
// practice never shows because the range always covers the viewport.
func (h *termHost) Visible(height int) string {
	if height <= 0 {
		return ""
	}

	rows := make([]string, height)
	for _, v := range h.views {
		row := v.Top - h.offset
		if row < 0 || row >= height {
			continue
		}
		rows[row] = v.Content
	}
	return strings.Join(rows, "\n")
}
