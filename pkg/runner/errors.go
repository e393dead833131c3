package runner

import "errors"

// Sentinel errors for CLI invocation outcomes.
var (
	// ErrSpawnFailed indicates the CLI binary could not be started.
	ErrSpawnFailed = errors.New("failed to spawn CLI process")

	// ErrTimeout indicates the invocation exceeded its deadline and the
	// process was killed.
	ErrTimeout = errors.New("CLI invocation timed out")

	// ErrCancelled indicates the invocation context was cancelled and the
	// process was killed.
	ErrCancelled = errors.New("CLI invocation cancelled")

	// ErrNonZeroExit indicates the CLI exited with a non-zero status.
	ErrNonZeroExit = errors.New("CLI exited with non-zero status")
)
