package trigger

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/aerialops/snaptrigger/internal/event"
	"github.com/aerialops/snaptrigger/internal/indicator"
	"github.com/aerialops/snaptrigger/internal/logging"
	"github.com/aerialops/snaptrigger/internal/stats"
)

// Event identifies one accepted trigger edge. Immutable once created.
type Event struct {
	// Seq is the 1-based trigger sequence number, assigned in
	// edge-arrival order as observed by the controller.
	Seq uint64
	// At is the edge's arrival timestamp.
	At time.Time
}

// DispatchFunc runs a capture attempt for an accepted trigger. It is
// invoked on a dedicated worker goroutine; the busy latch stays held
// until it returns.
type DispatchFunc func(ev Event)

// Controller turns edge callbacks into capture dispatches.
// OnEdge is safe to call from any goroutine.
type Controller struct {
	debounce time.Duration
	dispatch DispatchFunc

	aggregator *stats.Aggregator
	ind        *indicator.Indicator
	bus        *event.Bus
	logger     *logging.Logger

	mu           sync.Mutex // guards lastAccepted and seq
	lastAccepted time.Time
	seq          uint64

	// busy is the single-flight latch: true while a capture attempt is
	// in flight. Taken with compare-and-swap so concurrent edges cannot
	// both dispatch.
	busy atomic.Bool

	wg sync.WaitGroup
}

// NewController creates a Controller. The aggregator, indicator and bus
// are required; logger may be nil.
func NewController(debounce time.Duration, dispatch DispatchFunc, aggregator *stats.Aggregator, ind *indicator.Indicator, bus *event.Bus, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{
		debounce:   debounce,
		dispatch:   dispatch,
		aggregator: aggregator,
		ind:        ind,
		bus:        bus,
		logger:     logger.WithComponent("trigger"),
	}
}

// OnEdge processes one detected rising edge. Bounced edges are invisible
// to statistics; accepted edges are numbered and counted even when
// rejected as busy. The call returns as soon as the capture worker is
// dispatched, never blocking the edge-notification goroutine on the
// attempt itself.
func (c *Controller) OnEdge(t time.Time) {
	c.mu.Lock()
	if !c.lastAccepted.IsZero() && t.Sub(c.lastAccepted) < c.debounce {
		c.mu.Unlock()
		return
	}
	c.lastAccepted = t
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.aggregator.IncTriggers()
	c.bus.Publish(event.NewTriggerAcceptedEvent(seq))

	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Warn("trigger ignored, capture in progress", "trigger", seq)
		c.bus.Publish(event.NewTriggerIgnoredEvent(seq))
		return
	}

	c.logger.Info("trigger detected", "trigger", seq)
	c.ind.Signal(indicator.Busy)

	ev := Event{Seq: seq, At: t}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.busy.Store(false)
			c.ind.Signal(indicator.Idle)
		}()
		c.dispatch(ev)
	}()
}

// Inject synthesizes a trigger edge at the current time, used by the
// console's test command.
func (c *Controller) Inject() {
	c.OnEdge(time.Now())
}

// Busy reports whether a capture attempt is currently in flight.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// Wait blocks until all dispatched capture workers have finished.
// Used by tests and by shutdown to drain the in-flight attempt.
func (c *Controller) Wait() {
	c.wg.Wait()
}
