// Package signal provides the event plumbing that feeds the windowed
// renderer: an explicit subscription stream plus throttle and debounce
// rate limiters.
//
// Scroll and resize notifications are rate-limited here, upstream of the
// renderer, which assumes its inputs arrive at a bounded rate. Both limiters
// take their notion of time from a Clock so tests run without real timers.
package signal
