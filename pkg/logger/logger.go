package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the sink the lock guard reports to. Debugf receives the wait
// message on each blocked polling iteration; Errorf receives marker
// creation and deletion failures.
//
// The format string follows fmt.Printf style formatting.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Interface compliance checks.
var (
	_ Logger = (*log.Logger)(nil)
	_ Logger = noop{}
)

// Default returns a Logger backed by charmbracelet/log, writing to stderr.
// Wait messages are logged at debug severity and stay hidden at the default
// level; failures are always visible.
func Default() Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dirlock",
	})
}

// Verbose is like Default but with debug messages visible, so the per-poll
// wait message shows up while a caller is blocked.
func Verbose() Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dirlock",
		Level:  log.DebugLevel,
	})
}

// NewWithOutput returns a Logger writing to w at the given level. It is
// primarily useful in tests and in programs that route logs to a file.
func NewWithOutput(w io.Writer, level log.Level) Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "dirlock",
		Level:  level,
	})
}

// Noop returns a Logger that discards everything.
func Noop() Logger {
	return noop{}
}

type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Errorf(string, ...interface{}) {}
