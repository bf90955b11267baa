package hashtable

import "errors"

var (
	// ErrKeyNotFound is returned by lookups and deletes that probe a
	// full cycle without locating the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTableFull is returned when an insert cannot place its key and
	// the size schedule has no larger capacity left. This is not
	// recoverable by retrying.
	ErrTableFull = errors.New("table full")
)
