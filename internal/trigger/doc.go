// Package trigger decides whether a rising-edge pulse becomes a capture
// attempt.
//
// The Controller owns three pieces of policy:
//
//   - Debounce: edges arriving inside the debounce window of the last
//     accepted edge are discarded silently — they are never counted and
//     never logged as triggers.
//   - Sequencing: each accepted edge gets the next 1-based sequence number
//     and unconditionally increments the trigger counter, even when the
//     capture is subsequently rejected as busy. Counting missed
//     opportunities while ignoring electrical noise is deliberate.
//   - Single flight: at most one capture attempt is in flight at a time,
//     enforced with an atomic compare-and-swap busy latch. The latch is
//     taken before dispatch and released by the worker on every exit
//     path.
//
// OnEdge is called from the GPIO event goroutine and from the console's
// synthetic-trigger command; it never blocks past dispatching the worker.
package trigger
