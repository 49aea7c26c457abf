package colorstore

import "errors"

// Sentinel errors for colorstore operations.
var (
	// ErrLockingProtocol names the locking-error class of failure. No
	// function in this module returns it: TryLockR wraps
	// sync.RWMutex.TryRLock, whose only outcomes are "acquired" and "busy".
	ErrLockingProtocol = errors.New("colorstore: unexpected locking outcome")

	// ErrSize indicates a negative or otherwise invalid vertex count was
	// passed to a store constructor.
	ErrSize = errors.New("colorstore: invalid size")
)
