package capture

import "time"

// Kind classifies the result of a capture attempt.
type Kind int

const (
	// KindSuccess means the command exited zero and the image was downloaded.
	KindSuccess Kind = iota
	// KindProcessFailed means the command exited nonzero.
	KindProcessFailed
	// KindTimedOut means the command exceeded the enforced deadline.
	// Kept distinct from KindProcessFailed so operators can tell a hung
	// camera from a rejected command.
	KindTimedOut
	// KindErrored means the attempt hit an unexpected fault outside the
	// command's own exit status.
	KindErrored
	// KindCanceled means the attempt's context was canceled, normally
	// because the daemon is shutting down mid-capture. Kept distinct from
	// KindProcessFailed so an operator-initiated shutdown is not logged
	// as a camera failure.
	KindCanceled
)

// String returns the wire name of the kind, as used in events and logs.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindProcessFailed:
		return "process_failed"
	case KindTimedOut:
		return "timeout"
	case KindErrored:
		return "error"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one capture attempt.
// Exactly one Outcome is produced per dispatched trigger.
type Outcome struct {
	// Kind is the attempt's classification.
	Kind Kind
	// File is the destination filename (base name, not the full path).
	File string
	// Elapsed is the wall time spent on the attempt.
	Elapsed time.Duration
	// FileSizeBytes is the downloaded image size for successful attempts,
	// or -1 when the file could not be stat'ed. Informational only; a
	// failed stat does not change the classification.
	FileSizeBytes int64
	// Diagnostic carries the command's stderr for process failures, or a
	// fault description for unexpected errors.
	Diagnostic string
}
