// Package constants provides the default configuration values for dirlock.
//
// This package centralizes the incidental configuration of the lock guard:
// the staleness timeout, the message logged while a caller waits for a
// marker file to disappear, the polling interval, and the permission bits
// used when creating marker files.
//
// # Usage
//
// The constants in this package can be imported and used directly:
//
//	import "github.com/bashhack/dirlock/pkg/constants"
//
//	guard := lock.New(path, lock.WithStaleTimeout(2*constants.DefaultStaleTimeout))
//
// # Design Considerations
//
// These values are deliberately plain constants rather than configuration
// machinery. None of them affect the correctness hazards the lock guard deals
// with; they are the knobs a caller might reasonably want to read or scale
// when building their own configuration on top.
package constants
