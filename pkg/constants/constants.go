package constants

import "time"

const (
	// DefaultStaleTimeout is how old a marker file may grow before waiters
	// disregard it as abandoned.
	DefaultStaleTimeout = 10 * time.Second

	// DefaultWaitMessage is logged at debug severity on each polling
	// iteration while a caller is blocked on somebody else's marker.
	DefaultWaitMessage = "Waiting for lock file to disappear..."

	// DefaultPollInterval is the fixed sleep between marker checks while
	// waiting. The wait loop uses a fixed interval only; there is no backoff.
	DefaultPollInterval = 100 * time.Millisecond

	// MarkerFileMode is the permission mode used when creating marker files.
	MarkerFileMode = 0o644
)
