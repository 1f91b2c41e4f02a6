package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts the external camera command so the Executor's
// classification logic can be exercised without a camera attached.
type CommandRunner interface {
	// Capture runs the capture-and-download command, writing the image to
	// destPath and overwriting any existing file. It returns nil on a
	// zero exit, *ExitStatusError on a nonzero exit,
	// context.DeadlineExceeded when the context's deadline expired,
	// context.Canceled when the context was canceled, and any other
	// error for faults outside the command's control.
	Capture(ctx context.Context, destPath string) error

	// Detect probes for an attached camera and returns the probe's
	// combined output for logging.
	Detect(ctx context.Context) (string, error)
}

// ExitStatusError reports a capture command that ran to completion but
// exited nonzero.
type ExitStatusError struct {
	Code   int    // the command's exit code
	Stderr string // trimmed stderr diagnostics
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("capture command exited with status %d", e.Code)
	}
	return fmt.Sprintf("capture command exited with status %d: %s", e.Code, e.Stderr)
}

// GPhotoRunner drives a gphoto2-compatible camera control binary.
type GPhotoRunner struct {
	command string
}

// NewGPhotoRunner creates a runner invoking the given binary
// (normally "gphoto2").
func NewGPhotoRunner(command string) *GPhotoRunner {
	return &GPhotoRunner{command: command}
}

// Capture implements CommandRunner using
// "<command> --capture-image-and-download --filename <dest> --force-overwrite".
func (r *GPhotoRunner) Capture(ctx context.Context, destPath string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.command,
		"--capture-image-and-download",
		"--filename", destPath,
		"--force-overwrite",
	)
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// CommandContext kills the process when the context ends; surface the
	// deadline or cancellation rather than the resulting exit failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitStatusError{
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}

	return err
}

// Detect implements CommandRunner using "<command> --auto-detect".
func (r *GPhotoRunner) Detect(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.command, "--auto-detect").CombinedOutput()
	return string(out), err
}
