// SPDX-License-Identifier: MIT
// Package: hedgekernel/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see builderErrorf below).
//   • Construction functions MUST NOT panic on malformed mesh state; they
//     return ErrInvalidHandle instead. Panics are confined to option
//     constructors (WithX...) rejecting meaningless inputs.
package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle indicates a construction step was given, or derived, a
// handle that does not resolve against the kernel in use (invalid, stale,
// or pointing at a removed element). The underlying source this package is
// ported from logs and silently returns a zero handle in this situation;
// this package surfaces it as an error instead, so a malformed build
// request cannot produce a mesh that looks valid but isn't.
var ErrInvalidHandle = errors.New("builder: invalid or unresolved handle")

// ErrTooFewRows indicates NewGrid was asked for fewer than one row.
var ErrTooFewRows = errors.New("builder: grid needs at least 1 row")

// ErrTooFewCols indicates NewGrid was asked for fewer than one column.
var ErrTooFewCols = errors.New("builder: grid needs at least 1 column")

// builderErrorf wraps an inner error with a deterministic method-name
// prefix, preserving the sentinel for errors.Is while adding context.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
