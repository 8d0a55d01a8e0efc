// Package lock provides a cooperative, marker-file-based lock for shared
// directories.
//
// The lock is the mere presence of a marker file: whichever process created
// it is considered the holder, and releasing the lock deletes the file. The
// marker's content is the holder's process ID, written as advisory
// information only; it is never read back or validated. The marker's
// modification time is the sole signal used to decide whether a holder
// abandoned the lock.
//
// # Core Components
//
// - Guard: holds the configuration for one named lock and performs
// acquisition, release and scoped execution
//
// # Usage
//
// Basic usage pattern:
//
//	guard := lock.New("/shared/dir/.dirlock")
//
//	err := guard.WithLock(func() error {
//	    // work inside the shared directory
//	    return nil
//	})
//
// Explicit acquire/release, when a scope does not fit:
//
//	guard.Acquire()
//	defer guard.Release()
//
// # Waiting and Staleness
//
// Acquire spins with a fixed sleep interval while a live marker exists. A
// marker is live while its age is strictly between zero and the staleness
// timeout; once it grows older than the timeout, waiters disregard it as
// abandoned and overwrite it. No timeout error is ever raised by the wait
// loop: the design favors liveness over strict safety.
//
// # Known Weakness
//
// There is no atomic test-and-set here. The existence check and the marker
// creation are separate system calls, so two processes can both observe the
// lock free and both create the marker, briefly holding the lock
// simultaneously. This is an accepted, documented property of the design,
// not a bug. Use an OS-level advisory lock if strict mutual exclusion is
// required.
//
// # Error Handling
//
// Acquire and Release never fail: marker creation and deletion errors are
// reported to the logging collaborator and swallowed, on the theory that
// failing to lock a shared directory is less catastrophic than deadlocking
// the caller forever. Callers that want to observe those failures can use
// AcquireStrict and ReleaseStrict, which return typed errors instead of
// logging them.
//
// # Thread Safety
//
// The hazard this package addresses is cross-process. Multiple goroutines
// within one process sharing a path are not protected against; layer a
// sync.Mutex on top if that matters to you.
//
// # System Requirements
//
// All cooperating processes must see a single shared file system with
// consistent modification times. Locking across machines or across file
// systems without shared mtimes is out of scope.
package lock
