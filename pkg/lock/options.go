package lock

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"

	"github.com/bashhack/dirlock/pkg/logger"
)

// Option configures a Guard at construction time.
type Option func(*Guard)

// WithStaleTimeout sets how old a marker may grow before waiters disregard
// it as abandoned.
func WithStaleTimeout(d time.Duration) Option {
	return func(g *Guard) {
		g.timeout = d
	}
}

// WithWaitMessage sets the message logged at debug severity on each polling
// iteration while blocked. Callers are encouraged to customize it so logs
// identify which lock is blocking.
func WithWaitMessage(msg string) Option {
	return func(g *Guard) {
		g.waitMsg = msg
	}
}

// WithPollInterval sets the fixed sleep between marker checks while waiting.
// The interval must be positive; the wait loop uses fixed-interval polling
// only, with no backoff.
func WithPollInterval(d time.Duration) Option {
	return func(g *Guard) {
		g.poll = d
	}
}

// WithLogger sets the logging collaborator that receives wait messages and
// marker failures.
func WithLogger(l logger.Logger) Option {
	return func(g *Guard) {
		g.log = l
	}
}

// WithFilesystem sets the file system the marker lives on. Tests use an
// in-memory afero filesystem here so the polling logic runs against fake
// files instead of real disk I/O.
func WithFilesystem(fs afero.Fs) Option {
	return func(g *Guard) {
		g.fs = fs
	}
}

// WithClock sets the clock used for staleness arithmetic and poll sleeps.
// Tests use a mock clock here.
func WithClock(c clock.Clock) Option {
	return func(g *Guard) {
		g.clock = c
	}
}
