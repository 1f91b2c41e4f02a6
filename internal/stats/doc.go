// Package stats accumulates session statistics for the trigger daemon.
//
// The Aggregator owns three monotonically non-decreasing counters —
// total triggers, successful captures, failed captures — behind atomic
// operations, so the edge-notification goroutine, the capture worker,
// and the session loop can touch them concurrently without lost updates.
//
// A Snapshot derives uptime and success rate from the counters and reads
// the busy state through a probe at snapshot time; it is a point-in-time
// view, not a jointly-consistent read with the counters.
//
// Snapshots persist to session_stats.json in the photo output directory
// via an atomic temp-file-and-rename write, and can be loaded back for
// post-flight inspection.
package stats
