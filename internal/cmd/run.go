package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aerialops/snaptrigger/internal/capture"
	"github.com/aerialops/snaptrigger/internal/config"
	"github.com/aerialops/snaptrigger/internal/event"
	"github.com/aerialops/snaptrigger/internal/gpio"
	"github.com/aerialops/snaptrigger/internal/indicator"
	"github.com/aerialops/snaptrigger/internal/logging"
	"github.com/aerialops/snaptrigger/internal/session"
	"github.com/aerialops/snaptrigger/internal/stats"
	"github.com/aerialops/snaptrigger/internal/trigger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the capture trigger daemon",
	Long: `Run claims the trigger GPIO line, probes for the camera, and waits
for flight-controller pulses. Each accepted pulse starts one capture
attempt; results accumulate in session statistics that are persisted
on shutdown.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-hardware", false, "run console-only, without claiming GPIO lines")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	noHardware, _ := cmd.Flags().GetBool("no-hardware")
	if noHardware {
		cfg.Hardware.Enabled = false
	}

	if err := os.MkdirAll(cfg.Capture.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger, err := logging.New(cfg.LogFile(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewBus()
	aggregator := stats.New()

	// The status LED is optional hardware: a failed claim disables
	// indicator output but never trigger processing.
	var pin indicator.Pin
	if cfg.Hardware.Enabled && cfg.Hardware.StatusPin >= 0 {
		p, err := gpio.RequestOutput(cfg.Hardware.Chip, cfg.Hardware.StatusPin)
		if err != nil {
			logger.Warn("status LED unavailable", "error", err)
		} else {
			pin = p
		}
	}
	ind := indicator.New(pin, logger)
	defer ind.Close()

	executor := capture.NewExecutor(capture.Config{
		OutputDir:     cfg.Capture.OutputDir,
		Timeout:       cfg.Capture.Timeout(),
		DetectTimeout: cfg.Capture.DetectTimeout(),
	}, capture.NewGPhotoRunner(cfg.Capture.Command), aggregator, ind, bus, logger)

	controller := trigger.NewController(cfg.Trigger.DebounceWindow(), func(ev trigger.Event) {
		executor.Run(ctx, ev)
	}, aggregator, ind, bus, logger)
	aggregator.SetStatusProbe(controller.Busy)

	if cfg.Hardware.Enabled {
		watcher, err := gpio.Watch(cfg.Hardware.Chip, cfg.Hardware.TriggerPin, cfg.Trigger.DebounceWindow(), controller.OnEdge)
		if err != nil {
			return fmt.Errorf("claim trigger line: %w", err)
		}
		defer watcher.Close()
		logger.Info("trigger line claimed",
			"chip", cfg.Hardware.Chip,
			"pin", cfg.Hardware.TriggerPin)
	} else {
		logger.Info("hardware disabled, console triggers only")
	}

	ind.Signal(indicator.Ready)
	executor.DetectCamera(ctx)

	loop := session.New(controller, aggregator, bus, logger,
		cfg.Session.StatusInterval(), cfg.Capture.OutputDir, os.Stdin, os.Stdout)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session loop failed", "error", err)
	}

	// Shutdown: let the in-flight attempt settle, then persist.
	controller.Wait()
	if err := aggregator.Persist(cfg.Capture.OutputDir); err != nil {
		logger.Error("failed to persist statistics", "error", err)
	} else {
		logger.Info("session statistics persisted", "file", stats.StatsFile(cfg.Capture.OutputDir))
	}

	return nil
}
