// Package listview is a Bubble Tea component that presents a large item
// list through the windowed renderer. One terminal row plays the role of
// one pixel: the viewport height in rows is the viewport height in pixels,
// and every item is exactly one row tall.
//
// The component owns a terminal host surface and wires its scroll feedback
// straight back into the renderer, so a ScrollToIndex call settles
// synchronously within a single Update.
package listview
