package lock

import (
	"os"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"

	"github.com/bashhack/dirlock/pkg/constants"
	dirlockErrors "github.com/bashhack/dirlock/pkg/errors"
	"github.com/bashhack/dirlock/pkg/logger"
)

// Guard manages a single named marker-file lock. Its configuration is fixed
// at construction; the only mutable state is the marker file itself, out on
// the file system.
type Guard struct {
	path    string
	timeout time.Duration
	waitMsg string
	poll    time.Duration

	fs    afero.Fs
	clock clock.Clock
	log   logger.Logger
	pid   int
}

// New creates a Guard for the marker file at path. The defaults (a 10 second
// staleness timeout, a 100ms poll interval, the standard wait message, the
// real file system and clock, and the default logger) can be overridden with
// options.
func New(path string, opts ...Option) *Guard {
	g := &Guard{
		path:    path,
		timeout: constants.DefaultStaleTimeout,
		waitMsg: constants.DefaultWaitMessage,
		poll:    constants.DefaultPollInterval,
		fs:      afero.NewOsFs(),
		clock:   clock.New(),
		log:     logger.Default(),
		pid:     os.Getpid(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the marker file location this guard coordinates on.
func (g *Guard) Path() string {
	return g.path
}

// Acquire blocks until no live marker file exists, then creates one holding
// this process's PID. It never fails: if the marker cannot be written, the
// failure is logged at error severity and the caller proceeds as if it held
// the lock. No timeout error is ever raised by the wait loop; once a marker
// outlives the staleness timeout it is simply overwritten.
func (g *Guard) Acquire() {
	g.waitMarkerGone()
	if err := g.createMarker(); err != nil {
		g.log.Errorf("Could not create lock file: %v", err)
	}
}

// AcquireStrict is Acquire for callers that want to know whether the marker
// was actually written. The wait behavior is identical; a marker creation
// failure is returned as a *errors.LockError wrapping ErrMarkerCreateFailed
// instead of being logged.
func (g *Guard) AcquireStrict() error {
	g.waitMarkerGone()
	return g.createMarker()
}

// Release deletes the marker file. A marker that is already gone is treated
// as success, since a competing process may have overwritten and removed it
// under the known race. Any other deletion failure is logged at error
// severity and swallowed; Release never fails.
func (g *Guard) Release() {
	if err := g.removeMarker(); err != nil {
		g.log.Errorf("Could not delete lock file: %v", err)
	}
}

// ReleaseStrict is Release for callers that want deletion failures back. An
// already-absent marker is still silent success; anything else is returned
// as a *errors.LockError wrapping ErrMarkerRemoveFailed.
func (g *Guard) ReleaseStrict() error {
	return g.removeMarker()
}

// WithLock acquires the lock, runs fn, and releases the lock on every exit
// path, including a panic inside fn. Whatever fn returns (or panics with)
// propagates to the caller unchanged; the release step never inspects or
// suppresses it.
func (g *Guard) WithLock(fn func() error) error {
	g.Acquire()
	defer g.Release()
	return fn()
}

// waitMarkerGone spins with a fixed sleep until no live marker exists. A
// marker is live while its age, relative to the time sampled at the start of
// the iteration, is strictly between zero and the staleness timeout. Each
// blocked iteration emits the wait message at debug severity.
func (g *Guard) waitMarkerGone() {
	now := g.clock.Now()
	for {
		fi, err := g.fs.Stat(g.path)
		if err != nil {
			// Covers both "never existed" and the marker vanishing between
			// polls when a competing process releases it. Either way the
			// lock is no longer held.
			return
		}
		mtime := fi.ModTime()
		if !now.Before(mtime.Add(g.timeout)) || !now.After(mtime) {
			return
		}
		g.log.Debugf("%s", g.waitMsg)
		g.clock.Sleep(g.poll)
		now = g.clock.Now()
	}
}

// createMarker writes the marker file with this process's PID as content,
// overwriting any stale marker left behind by a previous holder.
func (g *Guard) createMarker() error {
	err := afero.WriteFile(g.fs, g.path, []byte(strconv.Itoa(g.pid)), constants.MarkerFileMode)
	if err != nil {
		return dirlockErrors.NewLockError(g.path, g.pid,
			dirlockErrors.Wrapf(dirlockErrors.ErrMarkerCreateFailed, "%v", err))
	}
	return nil
}

// removeMarker deletes the marker file, treating an already-absent marker
// as success.
func (g *Guard) removeMarker() error {
	if err := g.fs.Remove(g.path); err != nil && !os.IsNotExist(err) {
		return dirlockErrors.NewLockError(g.path, g.pid,
			dirlockErrors.Wrapf(dirlockErrors.ErrMarkerRemoveFailed, "%v", err))
	}
	return nil
}
