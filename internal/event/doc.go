// Package event provides a pub-sub event bus for decoupled inter-component
// communication in the trigger daemon.
//
// The trigger controller and capture worker publish events as edges arrive
// and attempts complete; the session loop subscribes to surface notices on
// the console without coupling to either producer.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Types
//
//   - [TriggerAcceptedEvent]: an edge passed the debounce filter and was numbered
//   - [TriggerIgnoredEvent]: an accepted edge was rejected because a capture was in flight
//   - [CaptureStartedEvent]: a capture attempt began executing
//   - [CaptureCompletedEvent]: a capture attempt finished, with its classified result
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously on the publisher's goroutine and are protected against
// panics: a panicking handler does not prevent delivery to the rest.
//
// # Basic Usage
//
//	bus := event.NewBus()
//
//	bus.Subscribe(event.TypeTriggerIgnored, func(e event.Event) {
//	    ignored := e.(event.TriggerIgnoredEvent)
//	    log.Printf("trigger #%d ignored", ignored.Sequence)
//	})
//
//	bus.Publish(event.NewTriggerIgnoredEvent(seq))
package event
