// Package capture executes one photo-capture attempt per accepted trigger.
//
// The Executor builds a deterministic destination filename, invokes the
// external capture-and-download command under an enforced deadline, and
// classifies the result into one of four outcome kinds: success, process
// failure, timeout, or unexpected error. Every fault inside an attempt —
// including a panic — is absorbed at the attempt boundary and converted
// into an Outcome, a statistics increment, and a status-LED pattern;
// nothing propagates to the caller.
//
// # Main Types
//
//   - [Executor]: runs and classifies capture attempts
//   - [Outcome]: the classified result of one attempt
//   - [CommandRunner]: abstraction over the external camera command,
//     implemented by [GPhotoRunner] and by fakes in tests
//
// # Classification Contract
//
// The runner reports failures through two well-known error shapes so the
// Executor (and test fakes) can drive every branch:
//   - context.DeadlineExceeded marks a command that outlived its deadline
//   - [*ExitStatusError] marks a command that exited nonzero, carrying
//     the exit code and stderr diagnostics
//
// Any other error is classified as an unexpected fault.
package capture
