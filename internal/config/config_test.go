package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Hardware.Enabled {
		t.Error("hardware should be enabled by default")
	}
	if cfg.Hardware.Chip != "gpiochip0" {
		t.Errorf("expected chip gpiochip0, got %q", cfg.Hardware.Chip)
	}
	if cfg.Hardware.TriggerPin != 18 {
		t.Errorf("expected trigger pin 18, got %d", cfg.Hardware.TriggerPin)
	}
	if cfg.Hardware.StatusPin != 24 {
		t.Errorf("expected status pin 24, got %d", cfg.Hardware.StatusPin)
	}
	if cfg.Trigger.DebounceMs != 100 {
		t.Errorf("expected debounce 100ms, got %d", cfg.Trigger.DebounceMs)
	}
	if cfg.Capture.Command != "gphoto2" {
		t.Errorf("expected command gphoto2, got %q", cfg.Capture.Command)
	}
	if cfg.Capture.TimeoutSeconds != 30 {
		t.Errorf("expected capture timeout 30s, got %d", cfg.Capture.TimeoutSeconds)
	}
}

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.Trigger.DebounceWindow() != 100*time.Millisecond {
		t.Errorf("unexpected debounce window: %v", cfg.Trigger.DebounceWindow())
	}
	if cfg.Capture.Timeout() != 30*time.Second {
		t.Errorf("unexpected capture timeout: %v", cfg.Capture.Timeout())
	}
	if cfg.Capture.DetectTimeout() != 10*time.Second {
		t.Errorf("unexpected detect timeout: %v", cfg.Capture.DetectTimeout())
	}
	if cfg.Session.StatusInterval() != 30*time.Second {
		t.Errorf("unexpected status interval: %v", cfg.Session.StatusInterval())
	}
}

func TestLogFile(t *testing.T) {
	cfg := Default()
	cfg.Capture.OutputDir = "/data/photos"

	if got := cfg.LogFile(); !strings.HasSuffix(got, "trigger.log") {
		t.Errorf("expected default log path under output dir, got %q", got)
	}

	cfg.Logging.File = "/var/log/snaptrigger.log"
	if got := cfg.LogFile(); got != "/var/log/snaptrigger.log" {
		t.Errorf("expected explicit log path, got %q", got)
	}

	cfg.Logging.Enabled = false
	if got := cfg.LogFile(); got != "" {
		t.Errorf("expected empty path when logging disabled, got %q", got)
	}
}
