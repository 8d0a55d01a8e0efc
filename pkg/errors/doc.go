// Package errors provides error handling utilities for dirlock.
//
// The default lock guard API never surfaces errors: failures are reported to
// the logging collaborator and swallowed, because failing to lock a shared
// directory is considered less catastrophic than deadlocking the caller.
// This package exists for the opt-in strict API, which returns typed errors
// instead of logging them.
//
// # Features
//
//   - Sentinel errors usable with errors.Is
//   - A LockError type carrying the marker path and holder PID
//   - Error wrapping with context
//
// # Usage
//
// Basic error wrapping:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to create marker")
//	}
//
// Inspecting strict API failures:
//
//	if err := guard.AcquireStrict(); errors.Is(err, errors.ErrMarkerCreateFailed) {
//	    // the lock was considered free but the marker could not be written
//	}
//
// # Compatibility
//
// The package is fully compatible with the standard library errors package
// and can be used as a drop-in replacement with additional functionality.
package errors
