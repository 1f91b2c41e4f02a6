// Package indicator drives the status LED with non-blocking blink patterns.
//
// Callers hand patterns to [Indicator.Signal], which never blocks: requests
// are queued on a bounded channel consumed by a single goroutine that owns
// the pin, so overlapping requests are serialized on the output instead of
// racing. When the queue is full the pattern is dropped — visual feedback
// is advisory and must never stall the capture path.
//
// The LED is optional hardware. Constructing an Indicator with a nil pin
// yields a fully functional no-op, so trigger processing is unaffected by
// a missing or failed status line.
package indicator
