package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// consumer is the label attached to every line claim, visible in
// gpioinfo output.
const consumer = "snaptrigger"

// EdgeHandler is invoked once per detected rising edge with the arrival
// time of the pulse. It runs on the line's event goroutine and must not
// block.
type EdgeHandler func(t time.Time)

// Watcher owns the trigger input line and forwards rising edges to a
// handler.
type Watcher struct {
	line *gpiocdev.Line
}

// Watch claims offset on chip as a pull-down input with rising-edge
// detection and the given kernel debounce hint, delivering each pulse to
// handler. The handler receives the local arrival time rather than the
// kernel event timestamp, so downstream debounce math shares one clock
// with synthetic triggers.
func Watch(chip string, offset int, debounce time.Duration, handler EdgeHandler) (*Watcher, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsInput,
		gpiocdev.WithPullDown,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithDebounce(debounce),
		gpiocdev.WithConsumer(consumer),
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			handler(time.Now())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("request trigger line %s:%d: %w", chip, offset, err)
	}

	return &Watcher{line: line}, nil
}

// Close releases the trigger line claim. No edges are delivered after
// Close returns.
func (w *Watcher) Close() error {
	return w.line.Close()
}
