package stats

import (
	"sync/atomic"
	"time"
)

// Status values reported in a Snapshot's CurrentStatus field.
const (
	StatusReady     = "ready"
	StatusCapturing = "capturing"
)

// Aggregator accumulates session counters. All methods are safe for
// concurrent use; counters only ever increase for the process lifetime.
type Aggregator struct {
	totalTriggers      atomic.Uint64
	successfulCaptures atomic.Uint64
	failedCaptures     atomic.Uint64

	sessionStart time.Time
	statusProbe  func() bool // reports whether a capture is in flight
}

// New creates an Aggregator with the session start pinned to now.
func New() *Aggregator {
	return &Aggregator{
		sessionStart: time.Now(),
	}
}

// SetStatusProbe installs the function consulted at snapshot time to
// decide between "ready" and "capturing". Typically wired to the trigger
// controller's busy latch. Must be called before the probe can race with
// snapshots, i.e. during startup wiring.
func (a *Aggregator) SetStatusProbe(probe func() bool) {
	a.statusProbe = probe
}

// IncTriggers records an accepted trigger edge.
func (a *Aggregator) IncTriggers() {
	a.totalTriggers.Add(1)
}

// IncSuccesses records a successful capture attempt.
func (a *Aggregator) IncSuccesses() {
	a.successfulCaptures.Add(1)
}

// IncFailures records a failed capture attempt, whatever the failure class.
func (a *Aggregator) IncFailures() {
	a.failedCaptures.Add(1)
}

// TotalTriggers returns the accepted trigger count.
func (a *Aggregator) TotalTriggers() uint64 {
	return a.totalTriggers.Load()
}

// SessionStart returns the session start timestamp.
func (a *Aggregator) SessionStart() time.Time {
	return a.sessionStart
}

// Snapshot is a point-in-time view of the session statistics, shaped to
// match the persisted session_stats.json file.
type Snapshot struct {
	TotalTriggers      uint64    `json:"total_triggers"`
	SuccessfulCaptures uint64    `json:"successful_captures"`
	FailedCaptures     uint64    `json:"failed_captures"`
	SessionStart       time.Time `json:"session_start"`
	UptimeSeconds      float64   `json:"uptime_seconds"`
	SuccessRatePercent float64   `json:"success_rate_percent"`
	CurrentStatus      string    `json:"current_status"`
}

// Snapshot derives the current statistics. The busy state is read through
// the status probe at call time; counters are read individually, so a
// snapshot taken mid-attempt may see the trigger counter ahead of the
// outcome counters.
func (a *Aggregator) Snapshot() Snapshot {
	total := a.totalTriggers.Load()
	success := a.successfulCaptures.Load()
	failed := a.failedCaptures.Load()

	status := StatusReady
	if a.statusProbe != nil && a.statusProbe() {
		status = StatusCapturing
	}

	return Snapshot{
		TotalTriggers:      total,
		SuccessfulCaptures: success,
		FailedCaptures:     failed,
		SessionStart:       a.sessionStart,
		UptimeSeconds:      time.Since(a.sessionStart).Seconds(),
		SuccessRatePercent: successRatePercent(success, total),
		CurrentStatus:      status,
	}
}

// successRatePercent computes successes/max(total,1) as a percentage.
// Zero triggers yields 0, not a division error.
func successRatePercent(success, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(success) / float64(total) * 100
}
