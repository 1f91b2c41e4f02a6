package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aerialops/snaptrigger/internal/event"
	"github.com/aerialops/snaptrigger/internal/logging"
	"github.com/aerialops/snaptrigger/internal/stats"
	"github.com/aerialops/snaptrigger/internal/trigger"
)

// Loop is the interactive session loop. It consumes the trigger
// controller and statistics aggregator as a client; it never mutates
// capture state beyond injecting synthetic triggers.
type Loop struct {
	controller *trigger.Controller
	aggregator *stats.Aggregator
	bus        *event.Bus
	logger     *logging.Logger

	interval  time.Duration
	outputDir string

	in  io.Reader
	out io.Writer
}

// New creates a session Loop reading commands from in and printing to out.
func New(controller *trigger.Controller, aggregator *stats.Aggregator, bus *event.Bus, logger *logging.Logger, interval time.Duration, outputDir string, in io.Reader, out io.Writer) *Loop {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loop{
		controller: controller,
		aggregator: aggregator,
		bus:        bus,
		logger:     logger.WithComponent("session"),
		interval:   interval,
		outputDir:  outputDir,
		in:         in,
		out:        out,
	}
}

// Run drives the loop until the context is cancelled or the q command
// arrives. It subscribes to trigger and capture events for console
// notices and unsubscribes before returning.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ignoredSub := l.bus.Subscribe(event.TypeTriggerIgnored, func(e event.Event) {
		ev := e.(event.TriggerIgnoredEvent)
		fmt.Fprintf(l.out, "trigger #%d ignored, capture in progress\n", ev.Sequence)
	})
	defer l.bus.Unsubscribe(ignoredSub)

	completedSub := l.bus.Subscribe(event.TypeCaptureCompleted, func(e event.Event) {
		ev := e.(event.CaptureCompletedEvent)
		fmt.Fprintf(l.out, "capture #%d %s (%s) in %.1fs\n",
			ev.Sequence, ev.Result, ev.File, ev.Elapsed.Seconds())
	})
	defer l.bus.Unsubscribe(completedSub)

	commands := make(chan string)
	go l.readCommands(ctx, commands)

	fmt.Fprintln(l.out, "waiting for trigger pulses ('t' trigger, 's' status, 'q' quit)")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			l.printStatus()

		case cmd, ok := <-commands:
			if !ok {
				// Console closed (EOF); keep serving hardware triggers.
				commands = nil
				continue
			}
			switch cmd {
			case "t":
				l.logger.Info("synthetic trigger requested")
				l.controller.Inject()
			case "s":
				l.printStatus()
			case "q":
				l.logger.Info("shutdown requested from console")
				return nil
			default:
				fmt.Fprintf(l.out, "unknown command %q\n", cmd)
			}
		}
	}
}

// printStatus renders the current snapshot to the console.
func (l *Loop) printStatus() {
	fmt.Fprintln(l.out, RenderStatus(l.aggregator.Snapshot(), l.outputDir))
}

// readCommands forwards trimmed, lowercased console lines until EOF or
// cancellation.
func (l *Loop) readCommands(ctx context.Context, commands chan<- string) {
	defer close(commands)

	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if cmd == "" {
			continue
		}
		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
