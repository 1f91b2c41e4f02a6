package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete snaptrigger configuration
type Config struct {
	Hardware Hardware `mapstructure:"hardware"`
	Trigger  Trigger  `mapstructure:"trigger"`
	Capture  Capture  `mapstructure:"capture"`
	Session  Session  `mapstructure:"session"`
	Logging  Logging  `mapstructure:"logging"`
}

// Hardware describes the GPIO wiring to the flight controller and the
// optional status LED.
type Hardware struct {
	// Enabled controls whether GPIO lines are claimed at startup.
	// When false the daemon runs console-only: triggers can still be
	// injected with the 't' command.
	Enabled bool `mapstructure:"enabled"`
	// Chip is the GPIO character device to open (default: "gpiochip0")
	Chip string `mapstructure:"chip"`
	// TriggerPin is the line offset receiving the flight controller's
	// TTL pulse (default: 18)
	TriggerPin int `mapstructure:"trigger_pin"`
	// StatusPin is the line offset driving the status LED.
	// A negative value disables the LED; trigger processing is unaffected.
	StatusPin int `mapstructure:"status_pin"`
}

// Trigger controls edge acceptance
type Trigger struct {
	// DebounceMs is the software debounce window in milliseconds.
	// Edges arriving within this window of the last accepted edge are
	// discarded without being counted (default: 100)
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Capture controls the external capture-and-download command
type Capture struct {
	// Command is the camera control binary (default: "gphoto2")
	Command string `mapstructure:"command"`
	// OutputDir is where downloaded images and session_stats.json land.
	// Created at startup if absent.
	OutputDir string `mapstructure:"output_dir"`
	// TimeoutSeconds is the enforced deadline per capture attempt (default: 30)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// DetectTimeoutSeconds bounds the startup camera presence probe (default: 10)
	DetectTimeoutSeconds int `mapstructure:"detect_timeout_seconds"`
}

// Session controls the interactive session loop
type Session struct {
	// StatusIntervalSeconds is how often the status block is printed (default: 30)
	StatusIntervalSeconds int `mapstructure:"status_interval_seconds"`
}

// Logging controls debug logging behavior
type Logging struct {
	// Enabled controls whether file logging is enabled (default: true).
	// When disabled, logs go to stderr.
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means <output_dir>/trigger.log.
	File string `mapstructure:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// DebounceWindow returns the debounce window as a time.Duration
func (t *Trigger) DebounceWindow() time.Duration {
	return time.Duration(t.DebounceMs) * time.Millisecond
}

// Timeout returns the capture deadline as a time.Duration
func (c *Capture) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DetectTimeout returns the camera probe deadline as a time.Duration
func (c *Capture) DetectTimeout() time.Duration {
	return time.Duration(c.DetectTimeoutSeconds) * time.Second
}

// StatusInterval returns the status report period as a time.Duration
func (s *Session) StatusInterval() time.Duration {
	return time.Duration(s.StatusIntervalSeconds) * time.Second
}

// LogFile resolves the log file path, falling back to the output directory.
func (c *Config) LogFile() string {
	if !c.Logging.Enabled {
		return ""
	}
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Capture.OutputDir, "trigger.log")
}

// Default returns a Config with sensible default values
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Hardware: Hardware{
			Enabled:    true,
			Chip:       "gpiochip0",
			TriggerPin: 18,
			StatusPin:  24,
		},
		Trigger: Trigger{
			DebounceMs: 100,
		},
		Capture: Capture{
			Command:              "gphoto2",
			OutputDir:            filepath.Join(home, "aerial_photos"),
			TimeoutSeconds:       30,
			DetectTimeoutSeconds: 10,
		},
		Session: Session{
			StatusIntervalSeconds: 30,
		},
		Logging: Logging{
			Enabled:    true,
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Hardware defaults
	viper.SetDefault("hardware.enabled", defaults.Hardware.Enabled)
	viper.SetDefault("hardware.chip", defaults.Hardware.Chip)
	viper.SetDefault("hardware.trigger_pin", defaults.Hardware.TriggerPin)
	viper.SetDefault("hardware.status_pin", defaults.Hardware.StatusPin)

	// Trigger defaults
	viper.SetDefault("trigger.debounce_ms", defaults.Trigger.DebounceMs)

	// Capture defaults
	viper.SetDefault("capture.command", defaults.Capture.Command)
	viper.SetDefault("capture.output_dir", defaults.Capture.OutputDir)
	viper.SetDefault("capture.timeout_seconds", defaults.Capture.TimeoutSeconds)
	viper.SetDefault("capture.detect_timeout_seconds", defaults.Capture.DetectTimeoutSeconds)

	// Session defaults
	viper.SetDefault("session.status_interval_seconds", defaults.Session.StatusIntervalSeconds)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "snaptrigger")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".snaptrigger"
	}
	return filepath.Join(home, ".config", "snaptrigger")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
