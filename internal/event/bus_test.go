package event

import (
	"sync"
	"testing"
	"time"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TypeTriggerAccepted, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var received Event
	bus.Subscribe(TypeTriggerAccepted, func(e Event) {
		received = e
	})

	bus.Publish(NewTriggerAcceptedEvent(3))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	if received.EventType() != TypeTriggerAccepted {
		t.Errorf("Expected event type %q, got %q", TypeTriggerAccepted, received.EventType())
	}
	accepted, ok := received.(TriggerAcceptedEvent)
	if !ok {
		t.Fatalf("Expected TriggerAcceptedEvent, got %T", received)
	}
	if accepted.Sequence != 3 {
		t.Errorf("Expected sequence 3, got %d", accepted.Sequence)
	}
}

func TestBus_PublishOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	ignoredCalls := 0
	completedCalls := 0
	bus.Subscribe(TypeTriggerIgnored, func(e Event) { ignoredCalls++ })
	bus.Subscribe(TypeCaptureCompleted, func(e Event) { completedCalls++ })

	bus.Publish(NewTriggerIgnoredEvent(5))

	if ignoredCalls != 1 {
		t.Errorf("Expected 1 ignored call, got %d", ignoredCalls)
	}
	if completedCalls != 0 {
		t.Errorf("Expected 0 completed calls, got %d", completedCalls)
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()

	var types []string
	bus.SubscribeAll(func(e Event) {
		types = append(types, e.EventType())
	})

	bus.Publish(NewTriggerAcceptedEvent(1))
	bus.Publish(NewCaptureStartedEvent(1, "aerial_20250101_120000_T00001.jpg"))
	bus.Publish(NewCaptureCompletedEvent(1, "success", "aerial_20250101_120000_T00001.jpg", time.Second))

	if len(types) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(types))
	}
	if types[0] != TypeTriggerAccepted || types[1] != TypeCaptureStarted || types[2] != TypeCaptureCompleted {
		t.Errorf("Unexpected event order: %v", types)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.Subscribe(TypeTriggerIgnored, func(e Event) { calls++ })

	if !bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return true for a known ID")
	}
	if bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return false for an already-removed ID")
	}

	bus.Publish(NewTriggerIgnoredEvent(1))
	if calls != 0 {
		t.Errorf("Handler called after unsubscribe: %d calls", calls)
	}
}

func TestBus_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(TypeCaptureCompleted, func(e Event) {
		panic("handler bug")
	})

	called := false
	bus.Subscribe(TypeCaptureCompleted, func(e Event) {
		called = true
	})

	bus.Publish(NewCaptureCompletedEvent(1, "timeout", "f.jpg", 30*time.Second))

	if !called {
		t.Error("Second handler should run despite the first panicking")
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(TypeTriggerAccepted, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			bus.Publish(NewTriggerAcceptedEvent(seq))
		}(uint64(i + 1))
	}
	wg.Wait()

	if count != 50 {
		t.Errorf("Expected 50 deliveries, got %d", count)
	}
}
