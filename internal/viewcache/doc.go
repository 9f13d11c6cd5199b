// Package viewcache provides a small in-memory LRU cache for rendered item
// views. Formatting a row is cheap but not free, and during scrolling the
// same rows are re-rendered constantly; memoizing the formatted text keyed
// by item identity keeps render cost proportional to rows that actually
// changed.
//
// The cache memoizes row content only. Mounted views themselves remain
// transient and are rebuilt wholesale on every render.
package viewcache
