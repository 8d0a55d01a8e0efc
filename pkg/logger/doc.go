// Package logger defines the logging collaborator used by the lock guard.
//
// The lock guard reports two kinds of events: the wait message emitted on
// each polling iteration while blocked (debug severity), and marker
// creation/deletion failures (error severity). It depends only on the small
// Logger interface in this package, never on a concrete sink.
//
// # Implementations
//
//   - Default: a charmbracelet/log logger writing to stderr at its default
//     level, so wait messages stay quiet unless the caller lowers the level
//   - Verbose: the same sink with debug messages visible
//   - Noop: discards everything
//
// A *log.Logger from github.com/charmbracelet/log satisfies Logger directly,
// so callers with an existing configured instance can pass it as-is.
//
// # Contract
//
// Implementations must never block or panic; the lock guard calls the sink
// from its polling loop and from failure paths that are already being
// swallowed.
package logger
