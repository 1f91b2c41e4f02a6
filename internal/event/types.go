package event

import "time"

// Event type identifiers, following the "category.action" convention.
const (
	TypeTriggerAccepted  = "trigger.accepted"
	TypeTriggerIgnored   = "trigger.ignored"
	TypeCaptureStarted   = "capture.started"
	TypeCaptureCompleted = "capture.completed"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// TriggerAcceptedEvent is emitted when an edge passes the debounce filter
// and is assigned a sequence number.
type TriggerAcceptedEvent struct {
	baseEvent
	Sequence uint64 // 1-based trigger sequence number
}

// NewTriggerAcceptedEvent creates a TriggerAcceptedEvent.
func NewTriggerAcceptedEvent(sequence uint64) TriggerAcceptedEvent {
	return TriggerAcceptedEvent{
		baseEvent: newBaseEvent(TypeTriggerAccepted),
		Sequence:  sequence,
	}
}

// TriggerIgnoredEvent is emitted when an accepted edge is rejected
// because a capture attempt is already in flight.
type TriggerIgnoredEvent struct {
	baseEvent
	Sequence uint64 // sequence number the rejected edge was assigned
}

// NewTriggerIgnoredEvent creates a TriggerIgnoredEvent.
func NewTriggerIgnoredEvent(sequence uint64) TriggerIgnoredEvent {
	return TriggerIgnoredEvent{
		baseEvent: newBaseEvent(TypeTriggerIgnored),
		Sequence:  sequence,
	}
}

// CaptureStartedEvent is emitted when a capture attempt begins executing.
type CaptureStartedEvent struct {
	baseEvent
	Sequence uint64 // trigger sequence number driving this attempt
	File     string // destination filename
}

// NewCaptureStartedEvent creates a CaptureStartedEvent.
func NewCaptureStartedEvent(sequence uint64, file string) CaptureStartedEvent {
	return CaptureStartedEvent{
		baseEvent: newBaseEvent(TypeCaptureStarted),
		Sequence:  sequence,
		File:      file,
	}
}

// CaptureCompletedEvent is emitted when a capture attempt finishes,
// whatever the classification.
type CaptureCompletedEvent struct {
	baseEvent
	Sequence uint64        // trigger sequence number driving this attempt
	Result   string        // classified result ("success", "process_failed", "timeout", "error")
	File     string        // destination filename
	Elapsed  time.Duration // wall time spent on the attempt
}

// NewCaptureCompletedEvent creates a CaptureCompletedEvent.
func NewCaptureCompletedEvent(sequence uint64, result, file string, elapsed time.Duration) CaptureCompletedEvent {
	return CaptureCompletedEvent{
		baseEvent: newBaseEvent(TypeCaptureCompleted),
		Sequence:  sequence,
		Result:    result,
		File:      file,
		Elapsed:   elapsed,
	}
}
