package trigger

import (
	"sync"
	"testing"
	"time"

	"github.com/aerialops/snaptrigger/internal/event"
	"github.com/aerialops/snaptrigger/internal/indicator"
	"github.com/aerialops/snaptrigger/internal/stats"
)

// recorder captures dispatched events and can hold workers open to keep
// the busy latch taken.
type recorder struct {
	mu      sync.Mutex
	events  []Event
	started chan struct{} // receives once per dispatch start
	release chan struct{} // when non-nil, dispatch blocks until closed
}

func newRecorder() *recorder {
	return &recorder{started: make(chan struct{}, 16)}
}

func (r *recorder) dispatch(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.started <- struct{}{}
	if r.release != nil {
		<-r.release
	}
}

func (r *recorder) dispatched() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func newTestController(debounce time.Duration, rec *recorder) (*Controller, *stats.Aggregator) {
	agg := stats.New()
	ctrl := NewController(debounce, rec.dispatch, agg, indicator.New(nil, nil), event.NewBus(), nil)
	return ctrl, agg
}

func TestController_DebounceScenario(t *testing.T) {
	rec := newRecorder()
	ctrl, agg := newTestController(100*time.Millisecond, rec)

	// Edges at t=0, t=50ms, t=150ms with a 100ms window: only the first
	// and last are accepted.
	base := time.Now()
	ctrl.OnEdge(base)
	ctrl.OnEdge(base.Add(50 * time.Millisecond))
	ctrl.OnEdge(base.Add(150 * time.Millisecond))
	ctrl.Wait()

	if got := agg.TotalTriggers(); got != 2 {
		t.Errorf("expected 2 triggers, got %d", got)
	}
	events := rec.dispatched()
	if len(events) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Errorf("sequence numbers should be 1 and 2, got %d and %d", events[0].Seq, events[1].Seq)
	}
}

func TestController_BouncedEdgesInvisible(t *testing.T) {
	rec := newRecorder()
	ctrl, agg := newTestController(100*time.Millisecond, rec)

	base := time.Now()
	ctrl.OnEdge(base)
	for i := 1; i <= 5; i++ {
		ctrl.OnEdge(base.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	ctrl.Wait()

	if got := agg.TotalTriggers(); got != 1 {
		t.Errorf("bounced edges must not be counted: expected 1 trigger, got %d", got)
	}
}

func TestController_BusyRejectionCountsButDoesNotDispatch(t *testing.T) {
	rec := newRecorder()
	rec.release = make(chan struct{})
	ctrl, agg := newTestController(100*time.Millisecond, rec)

	base := time.Now()
	ctrl.OnEdge(base)
	<-rec.started // first attempt is now in flight

	// A second edge outside the debounce window while busy: counted,
	// never dispatched, latch unchanged.
	ctrl.OnEdge(base.Add(200 * time.Millisecond))

	if got := agg.TotalTriggers(); got != 2 {
		t.Errorf("busy-rejected edge must still count: expected 2 triggers, got %d", got)
	}
	if !ctrl.Busy() {
		t.Error("latch should remain held by the in-flight attempt")
	}
	if len(rec.dispatched()) != 1 {
		t.Errorf("expected a single dispatch, got %d", len(rec.dispatched()))
	}

	close(rec.release)
	ctrl.Wait()

	if ctrl.Busy() {
		t.Error("latch should be released once the attempt finishes")
	}
	if len(rec.dispatched()) != 1 {
		t.Errorf("finishing the first attempt must not dispatch the rejected edge: got %d", len(rec.dispatched()))
	}
}

func TestController_SingleFlight(t *testing.T) {
	rec := newRecorder()
	rec.release = make(chan struct{})
	ctrl, _ := newTestController(time.Millisecond, rec)

	base := time.Now()
	for i := 0; i < 10; i++ {
		ctrl.OnEdge(base.Add(time.Duration(i) * 10 * time.Millisecond))
	}

	// Only one worker may have started.
	<-rec.started
	select {
	case <-rec.started:
		t.Fatal("second attempt dispatched while the first was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(rec.release)
	ctrl.Wait()
}

func TestController_OnEdgeDoesNotBlockOnDispatch(t *testing.T) {
	rec := newRecorder()
	rec.release = make(chan struct{})
	defer close(rec.release)
	ctrl, _ := newTestController(time.Millisecond, rec)

	done := make(chan struct{})
	go func() {
		ctrl.OnEdge(time.Now())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnEdge blocked on the capture attempt")
	}
}

func TestController_InjectFeedsSequence(t *testing.T) {
	rec := newRecorder()
	ctrl, agg := newTestController(time.Nanosecond, rec)

	ctrl.Inject()
	ctrl.Wait()

	if got := agg.TotalTriggers(); got != 1 {
		t.Errorf("expected 1 trigger from injection, got %d", got)
	}
	events := rec.dispatched()
	if len(events) != 1 || events[0].Seq != 1 {
		t.Errorf("unexpected dispatches: %+v", events)
	}
}

func TestController_PublishesIgnoredEvents(t *testing.T) {
	rec := newRecorder()
	rec.release = make(chan struct{})

	agg := stats.New()
	bus := event.NewBus()
	var ignored []uint64
	bus.Subscribe(event.TypeTriggerIgnored, func(e event.Event) {
		ignored = append(ignored, e.(event.TriggerIgnoredEvent).Sequence)
	})

	ctrl := NewController(time.Millisecond, rec.dispatch, agg, indicator.New(nil, nil), bus, nil)

	base := time.Now()
	ctrl.OnEdge(base)
	<-rec.started
	ctrl.OnEdge(base.Add(10 * time.Millisecond))

	if len(ignored) != 1 || ignored[0] != 2 {
		t.Errorf("expected ignored event for sequence 2, got %v", ignored)
	}

	close(rec.release)
	ctrl.Wait()
}
