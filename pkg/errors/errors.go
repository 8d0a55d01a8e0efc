package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrMarkerCreateFailed indicates the marker file could not be written
	// after the wait loop judged the lock free.
	ErrMarkerCreateFailed = errors.New("failed to create lock marker file")

	// ErrMarkerRemoveFailed indicates the marker file exists but could not
	// be deleted on release.
	ErrMarkerRemoveFailed = errors.New("failed to remove lock marker file")
)

// New creates a new error with the given message.
// This is a convenience function that wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// LockError represents an error that occurred while interacting with a
// marker file. It includes the marker path, the PID that was being written
// as the holder identifier, and the underlying error.
type LockError struct {
	Path string
	PID  int
	Err  error
}

// Error implements the error interface with details about the marker file and process.
func (e *LockError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("lock error with marker %s (PID: %d): %v", e.Path, e.PID, e.Err)
	}
	return fmt.Sprintf("lock error with marker %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *LockError) Unwrap() error {
	return e.Err
}

// NewLockError creates a new LockError with the given parameters.
func NewLockError(path string, pid int, err error) *LockError {
	return &LockError{
		Path: path,
		PID:  pid,
		Err:  err,
	}
}
