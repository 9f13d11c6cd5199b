// Package window implements windowed ("virtual") list rendering: only the
// slice of a large ordered list that intersects the viewport is materialized,
// and the host surface receives exactly one structural mutation per render.
//
// The renderer is single-threaded and event-driven. It assumes its scroll and
// resize inputs are already rate-limited upstream (see internal/signal) and
// performs no throttling of its own. All operations are synchronous and run
// to completion; nothing here is safe for concurrent use.
package window
