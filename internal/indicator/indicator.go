package indicator

import (
	"sync"
	"time"

	"github.com/aerialops/snaptrigger/internal/logging"
)

// Pattern identifies a visual signal on the status LED.
type Pattern int

const (
	// Idle turns the LED off.
	Idle Pattern = iota
	// Busy holds the LED on while a capture is in flight.
	Busy
	// Ready blinks 3 times fast: GPIO initialized, waiting for pulses.
	Ready
	// CameraOK blinks 2 times slow: camera detected at startup.
	CameraOK
	// Success blinks once fast: capture downloaded.
	Success
	// ProcessFailed blinks 3 times fast: capture command exited nonzero.
	ProcessFailed
	// Timeout blinks 5 times fast: capture command exceeded its deadline.
	Timeout
)

// String returns a human-readable name for the pattern.
func (p Pattern) String() string {
	switch p {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	case Ready:
		return "ready"
	case CameraOK:
		return "camera_ok"
	case Success:
		return "success"
	case ProcessFailed:
		return "process_failed"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// blinkSpec describes how a blinking pattern is rendered.
type blinkSpec struct {
	count int
	delay time.Duration
}

// blinkSpecs maps blinking patterns to their shape. Busy and Idle are
// steady states, not blinks, and are handled separately.
var blinkSpecs = map[Pattern]blinkSpec{
	Ready:         {count: 3, delay: 200 * time.Millisecond},
	CameraOK:      {count: 2, delay: 500 * time.Millisecond},
	Success:       {count: 1, delay: 100 * time.Millisecond},
	ProcessFailed: {count: 3, delay: 100 * time.Millisecond},
	Timeout:       {count: 5, delay: 100 * time.Millisecond},
}

// queueSize bounds pending patterns. A full queue drops new requests
// rather than blocking the capture path.
const queueSize = 16

// Pin abstracts a single digital output line.
type Pin interface {
	// Set drives the line high (true) or low (false).
	Set(high bool) error
	// Close releases the line claim.
	Close() error
}

// Indicator renders patterns on a status LED. A single goroutine owns
// the pin; Signal is safe to call from any goroutine and never blocks.
type Indicator struct {
	pin    Pin
	logger *logging.Logger
	sleep  func(time.Duration)

	mu        sync.RWMutex
	closed    bool
	requests  chan Pattern
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an Indicator driving the given pin and starts its worker
// goroutine. A nil pin yields a no-op indicator: Signal and Close still
// work, nothing is driven.
func New(pin Pin, logger *logging.Logger) *Indicator {
	if logger == nil {
		logger = logging.Nop()
	}

	ind := &Indicator{
		pin:      pin,
		logger:   logger.WithComponent("indicator"),
		sleep:    time.Sleep,
		requests: make(chan Pattern, queueSize),
		done:     make(chan struct{}),
	}

	if pin != nil {
		go ind.run()
	} else {
		close(ind.done)
	}

	return ind
}

// Signal queues a pattern for rendering and returns immediately.
// If the queue is full, or the indicator has been closed, the pattern
// is dropped.
func (ind *Indicator) Signal(p Pattern) {
	if ind.pin == nil {
		return
	}
	ind.mu.RLock()
	defer ind.mu.RUnlock()
	if ind.closed {
		ind.logger.Debug("pattern dropped, indicator closed", "pattern", p.String())
		return
	}
	select {
	case ind.requests <- p:
	default:
		ind.logger.Debug("pattern dropped, queue full", "pattern", p.String())
	}
}

// Close stops the worker, drives the LED low and releases the pin.
// Patterns already queued are rendered before shutdown; signals
// arriving after Close begins are dropped.
func (ind *Indicator) Close() error {
	ind.closeOnce.Do(func() {
		ind.mu.Lock()
		ind.closed = true
		close(ind.requests)
		ind.mu.Unlock()
	})
	<-ind.done

	if ind.pin == nil {
		return nil
	}
	_ = ind.pin.Set(false)
	return ind.pin.Close()
}

// run consumes the request queue and renders each pattern in turn.
func (ind *Indicator) run() {
	defer close(ind.done)

	for p := range ind.requests {
		if err := ind.render(p); err != nil {
			ind.logger.Warn("failed to drive status pin", "pattern", p.String(), "error", err)
		}
	}
}

// render drives one pattern to completion on the pin.
func (ind *Indicator) render(p Pattern) error {
	switch p {
	case Busy:
		return ind.pin.Set(true)
	case Idle:
		return ind.pin.Set(false)
	}

	spec, ok := blinkSpecs[p]
	if !ok {
		return nil
	}

	for i := 0; i < spec.count; i++ {
		if err := ind.pin.Set(true); err != nil {
			return err
		}
		ind.sleep(spec.delay)
		if err := ind.pin.Set(false); err != nil {
			return err
		}
		ind.sleep(spec.delay)
	}
	return nil
}
