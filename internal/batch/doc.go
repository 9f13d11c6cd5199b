// Package batch groups a large workload into frame-sized chunks so each
// chunk can be applied as one atomic update. The demo uses it to coalesce
// item mutations, and the benchmark uses it to replay a scroll trace one
// frame of events at a time with progress reporting.
package batch
