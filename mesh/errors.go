package mesh

import "errors"

// ErrInvalidHandle is returned when an operation is given a handle that
// cannot be resolved: invalid, stale, or already removed.
var ErrInvalidHandle = errors.New("mesh: invalid or stale handle")
