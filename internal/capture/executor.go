package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aerialops/snaptrigger/internal/event"
	"github.com/aerialops/snaptrigger/internal/indicator"
	"github.com/aerialops/snaptrigger/internal/logging"
	"github.com/aerialops/snaptrigger/internal/stats"
	"github.com/aerialops/snaptrigger/internal/trigger"
)

// Config holds the Executor's operating parameters.
type Config struct {
	// OutputDir is where downloaded images land.
	OutputDir string
	// Timeout is the enforced deadline per capture attempt.
	Timeout time.Duration
	// DetectTimeout bounds the startup camera presence probe.
	DetectTimeout time.Duration
}

// Executor runs capture attempts off the triggering goroutine and
// classifies their results. It is safe for use by one attempt at a time;
// single-flight execution is enforced upstream by the trigger
// controller's busy latch.
type Executor struct {
	config Config
	runner CommandRunner

	aggregator *stats.Aggregator
	ind        *indicator.Indicator
	bus        *event.Bus
	logger     *logging.Logger

	now func() time.Time
}

// NewExecutor creates an Executor. The aggregator, indicator and bus are
// required; logger may be nil for a silent executor.
func NewExecutor(config Config, runner CommandRunner, aggregator *stats.Aggregator, ind *indicator.Indicator, bus *event.Bus, logger *logging.Logger) *Executor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Executor{
		config:     config,
		runner:     runner,
		aggregator: aggregator,
		ind:        ind,
		bus:        bus,
		logger:     logger.WithComponent("capture"),
		now:        time.Now,
	}
}

// Run executes one capture attempt for the given trigger event and
// returns its classified outcome. All faults, including panics inside
// the attempt, are absorbed here: the outcome counters are incremented,
// the matching LED pattern is armed, and a capture.completed event is
// published on every branch.
func (e *Executor) Run(ctx context.Context, ev trigger.Event) Outcome {
	outcome := e.attempt(ctx, ev)
	e.record(ev, outcome)
	return outcome
}

// attempt performs the capture and classifies the raw result.
// A panic anywhere inside is converted into a KindErrored outcome.
func (e *Executor) attempt(ctx context.Context, ev trigger.Event) (out Outcome) {
	started := e.now()
	file := Filename(started, ev.Seq)

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Kind:          KindErrored,
				File:          file,
				Elapsed:       time.Since(started),
				FileSizeBytes: -1,
				Diagnostic:    fmt.Sprintf("panic during capture: %v", r),
			}
		}
	}()

	path := filepath.Join(e.config.OutputDir, file)

	e.logger.WithTrigger(ev.Seq).Info("executing capture", "file", file)
	e.bus.Publish(event.NewCaptureStartedEvent(ev.Seq, file))

	cctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	err := e.runner.Capture(cctx, path)
	elapsed := time.Since(started)

	switch {
	case err == nil:
		// Size is informational; a failed stat never reclassifies the
		// attempt.
		size := int64(-1)
		if info, statErr := os.Stat(path); statErr == nil {
			size = info.Size()
		}
		return Outcome{Kind: KindSuccess, File: file, Elapsed: elapsed, FileSizeBytes: size}

	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Kind: KindTimedOut, File: file, Elapsed: elapsed, FileSizeBytes: -1}

	case errors.Is(err, context.Canceled):
		return Outcome{
			Kind:          KindCanceled,
			File:          file,
			Elapsed:       elapsed,
			FileSizeBytes: -1,
			Diagnostic:    "canceled before completion",
		}

	default:
		var exitErr *ExitStatusError
		if errors.As(err, &exitErr) {
			return Outcome{
				Kind:          KindProcessFailed,
				File:          file,
				Elapsed:       elapsed,
				FileSizeBytes: -1,
				Diagnostic:    exitErr.Stderr,
			}
		}
		return Outcome{
			Kind:          KindErrored,
			File:          file,
			Elapsed:       elapsed,
			FileSizeBytes: -1,
			Diagnostic:    err.Error(),
		}
	}
}

// record applies an outcome to the statistics, the status LED and the
// event bus.
func (e *Executor) record(ev trigger.Event, outcome Outcome) {
	log := e.logger.WithTrigger(ev.Seq)

	switch outcome.Kind {
	case KindSuccess:
		e.aggregator.IncSuccesses()
		e.ind.Signal(indicator.Success)
		log.Info("capture succeeded",
			"file", outcome.File,
			"size_bytes", outcome.FileSizeBytes,
			"elapsed", outcome.Elapsed.Round(time.Millisecond).String())

	case KindProcessFailed:
		e.aggregator.IncFailures()
		e.ind.Signal(indicator.ProcessFailed)
		log.Error("capture failed",
			"file", outcome.File,
			"stderr", outcome.Diagnostic,
			"elapsed", outcome.Elapsed.Round(time.Millisecond).String())

	case KindTimedOut:
		e.aggregator.IncFailures()
		e.ind.Signal(indicator.Timeout)
		log.Error("capture timed out",
			"file", outcome.File,
			"deadline", e.config.Timeout.String())

	case KindErrored:
		e.aggregator.IncFailures()
		// No dedicated LED pattern for unexpected faults.
		e.ind.Signal(indicator.ProcessFailed)
		log.Error("unexpected capture error",
			"file", outcome.File,
			"error", outcome.Diagnostic)

	case KindCanceled:
		e.aggregator.IncFailures()
		// Not a camera fault; no failure pattern during shutdown.
		log.Warn("capture canceled",
			"file", outcome.File,
			"elapsed", outcome.Elapsed.Round(time.Millisecond).String())
	}

	e.bus.Publish(event.NewCaptureCompletedEvent(ev.Seq, outcome.Kind.String(), outcome.File, outcome.Elapsed))
}

// DetectCamera probes for an attached camera, signalling CameraOK when
// one is found. A miss (or a probe failure) is a warning only — the
// camera may be attached later, so the daemon keeps running either way.
func (e *Executor) DetectCamera(ctx context.Context) bool {
	cctx, cancel := context.WithTimeout(ctx, e.config.DetectTimeout)
	defer cancel()

	out, err := e.runner.Detect(cctx)
	if err != nil {
		e.logger.Warn("camera detection probe failed", "error", err)
		return false
	}

	model, found := parseDetectOutput(out)
	if !found {
		e.logger.Warn("no camera detected at startup")
		return false
	}

	e.logger.Info("camera detected", "model", model)
	e.ind.Signal(indicator.CameraOK)
	return true
}

// parseDetectOutput extracts the first camera entry from gphoto2
// --auto-detect output, which prints a two-line header followed by one
// line per attached camera.
func parseDetectOutput(out string) (model string, found bool) {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i < 2 {
			continue
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
	}
	return "", false
}
