// Package dirlock is a cooperative, file-based lock for shared directories
//
// dirlock coordinates access to a shared directory across independent
// processes that may have no other communication channel. The lock is nothing
// more than a marker file: its presence means "held", its modification time
// is the sole signal used to decide whether a previous holder abandoned it.
// Processes that crash without cleaning up are tolerated automatically -
// once a marker is older than the staleness timeout, waiters stop honoring
// it and move on.
//
// # Quick Start
//
//	guard := lock.New(filepath.Join(dir, ".dirlock"))
//
//	err := guard.WithLock(func() error {
//	    // do something in the shared directory
//	    return nil
//	})
//
// # Key Properties
//
//   - Best-Effort Mutual Exclusion: existence check and marker creation are
//     separate system calls, so two processes can briefly both believe they
//     hold the lock; this is an accepted property of the design
//   - Staleness Recovery: markers older than the timeout are disregarded,
//     favoring liveness over strict safety
//   - Failure Tolerance: acquisition and release never abort the caller;
//     failures are reported to the logging collaborator and swallowed
//   - Scoped Acquisition: WithLock guarantees release on every exit path,
//     including errors and panics
//
// # Package Organization
//
// The public API is organized into focused packages:
//
//   - pkg/lock: the lock guard itself (acquire, release, scoped execution)
//   - pkg/logger: the pluggable logging collaborator
//   - pkg/errors: typed errors for the opt-in strict API
//   - pkg/constants: the default timeout, wait message and poll interval
//
// This root package contains no code - it only anchors module-level
// documentation.
package dirlock
