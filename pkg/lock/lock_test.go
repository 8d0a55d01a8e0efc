package lock

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashhack/dirlock/pkg/constants"
	dirlockErrors "github.com/bashhack/dirlock/pkg/errors"
)

// recordingLogger captures everything the guard reports, so tests can assert
// on severities without a real sink.
type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
	errs   []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs = append(r.debugs, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) debugMessages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.debugs...)
}

func (r *recordingLogger) errorMessages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errs...)
}

func TestNewDefaults(t *testing.T) {
	g := New("/shared/.dirlock")

	assert.Equal(t, "/shared/.dirlock", g.Path())
	assert.Equal(t, constants.DefaultStaleTimeout, g.timeout)
	assert.Equal(t, 10*time.Second, g.timeout)
	assert.Equal(t, constants.DefaultWaitMessage, g.waitMsg)
	assert.Equal(t, "Waiting for lock file to disappear...", g.waitMsg)
	assert.Equal(t, constants.DefaultPollInterval, g.poll)
	assert.Equal(t, os.Getpid(), g.pid)
	assert.NotNil(t, g.fs)
	assert.NotNil(t, g.clock)
	assert.NotNil(t, g.log)
}

func TestNewOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	rec := &recordingLogger{}

	g := New("/shared/.dirlock",
		WithStaleTimeout(time.Minute),
		WithWaitMessage("waiting on the shared dir"),
		WithPollInterval(time.Millisecond),
		WithFilesystem(fs),
		WithLogger(rec),
	)

	assert.Equal(t, time.Minute, g.timeout)
	assert.Equal(t, "waiting on the shared dir", g.waitMsg)
	assert.Equal(t, time.Millisecond, g.poll)
}

func TestAcquireAndRelease(t *testing.T) {
	fs := afero.NewMemMapFs()
	rec := &recordingLogger{}
	path := "/shared/.dirlock"
	g := New(path, WithFilesystem(fs), WithLogger(rec), WithPollInterval(time.Millisecond))

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, exists, "marker should not exist before Acquire")

	g.Acquire()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "marker should exist after Acquire")
	pid, err := strconv.Atoi(string(data))
	require.NoError(t, err, "marker content should be a decimal PID")
	assert.Equal(t, os.Getpid(), pid)

	g.Release()

	exists, err = afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists, "marker should be gone after Release")
	assert.Empty(t, rec.errorMessages())
}

func TestWithLockRunsBodyAndCleansUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/shared/.dirlock"
	g := New(path, WithFilesystem(fs), WithLogger(&recordingLogger{}), WithPollInterval(time.Millisecond))

	var sawMarker bool
	err := g.WithLock(func() error {
		sawMarker, _ = afero.Exists(fs, path)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawMarker, "marker should exist while the body runs")

	exists, _ := afero.Exists(fs, path)
	assert.False(t, exists, "marker should be gone after the scope exits")
}

func TestWithLockPropagatesErrorUnchanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/shared/.dirlock"
	g := New(path, WithFilesystem(fs), WithLogger(&recordingLogger{}), WithPollInterval(time.Millisecond))

	bodyErr := dirlockErrors.New("body failed")
	err := g.WithLock(func() error {
		return bodyErr
	})

	assert.Same(t, bodyErr, err, "the body's error must propagate unchanged")

	exists, _ := afero.Exists(fs, path)
	assert.False(t, exists, "marker must be released even when the body fails")
}

func TestWithLockReleasesOnPanic(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/shared/.dirlock"
	g := New(path, WithFilesystem(fs), WithLogger(&recordingLogger{}), WithPollInterval(time.Millisecond))

	require.PanicsWithValue(t, "body exploded", func() {
		_ = g.WithLock(func() error {
			panic("body exploded")
		})
	})

	exists, _ := afero.Exists(fs, path)
	assert.False(t, exists, "marker must be released even when the body panics")
}

func TestAcquireSwallowsCreateFailure(t *testing.T) {
	// A read-only filesystem makes marker creation fail the way a
	// permission-denied directory would.
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	rec := &recordingLogger{}
	g := New("/shared/.dirlock", WithFilesystem(fs), WithLogger(rec), WithPollInterval(time.Millisecond))

	g.Acquire() // must return normally

	errs := rec.errorMessages()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Could not create lock file")
	assert.Contains(t, errs[0], "/shared/.dirlock")
}

func TestAcquireStrictSurfacesCreateFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	g := New("/shared/.dirlock", WithFilesystem(fs), WithLogger(&recordingLogger{}), WithPollInterval(time.Millisecond))

	err := g.AcquireStrict()

	require.Error(t, err)
	assert.True(t, dirlockErrors.Is(err, dirlockErrors.ErrMarkerCreateFailed))

	var lockErr *dirlockErrors.LockError
	require.True(t, dirlockErrors.As(err, &lockErr))
	assert.Equal(t, "/shared/.dirlock", lockErr.Path)
	assert.Equal(t, os.Getpid(), lockErr.PID)
}
