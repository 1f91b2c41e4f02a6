package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "capture.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateHardware()...)
	errors = append(errors, c.validateTrigger()...)
	errors = append(errors, c.validateCapture()...)
	errors = append(errors, c.validateSession()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateHardware() []ValidationError {
	var errors []ValidationError

	if c.Hardware.Enabled {
		if c.Hardware.Chip == "" {
			errors = append(errors, ValidationError{
				Field:   "hardware.chip",
				Value:   c.Hardware.Chip,
				Message: "must not be empty when hardware is enabled",
			})
		}
		if c.Hardware.TriggerPin < 0 {
			errors = append(errors, ValidationError{
				Field:   "hardware.trigger_pin",
				Value:   c.Hardware.TriggerPin,
				Message: "must be a non-negative line offset",
			})
		}
		if c.Hardware.StatusPin >= 0 && c.Hardware.StatusPin == c.Hardware.TriggerPin {
			errors = append(errors, ValidationError{
				Field:   "hardware.status_pin",
				Value:   c.Hardware.StatusPin,
				Message: "must differ from hardware.trigger_pin",
			})
		}
	}

	return errors
}

func (c *Config) validateTrigger() []ValidationError {
	var errors []ValidationError

	if c.Trigger.DebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "trigger.debounce_ms",
			Value:   c.Trigger.DebounceMs,
			Message: "must be zero or positive",
		})
	}

	return errors
}

func (c *Config) validateCapture() []ValidationError {
	var errors []ValidationError

	if c.Capture.Command == "" {
		errors = append(errors, ValidationError{
			Field:   "capture.command",
			Value:   c.Capture.Command,
			Message: "must not be empty",
		})
	}
	if c.Capture.OutputDir == "" {
		errors = append(errors, ValidationError{
			Field:   "capture.output_dir",
			Value:   c.Capture.OutputDir,
			Message: "must not be empty",
		})
	}
	if c.Capture.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "capture.timeout_seconds",
			Value:   c.Capture.TimeoutSeconds,
			Message: "must be positive",
		})
	}
	if c.Capture.DetectTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "capture.detect_timeout_seconds",
			Value:   c.Capture.DetectTimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateSession() []ValidationError {
	var errors []ValidationError

	if c.Session.StatusIntervalSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "session.status_interval_seconds",
			Value:   c.Session.StatusIntervalSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be zero or positive",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be zero or positive",
		})
	}

	return errors
}
