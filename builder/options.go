// SPDX-License-Identifier: MIT
// Package: hedgekernel/builder
//
// options.go — functional options for NewGrid.
//
// Contract (strict):
//   • Options are functional (type GridOption func(*gridConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Construction functions themselves MUST NOT panic.
package builder

import "github.com/photex-labs/hedgekernel/mesh"

// gridConfig holds NewGrid's resolved configuration.
type gridConfig struct {
	origin  mesh.Position
	spacing float32
}

func newGridConfig() gridConfig {
	return gridConfig{origin: mesh.Position{0, 0, 0}, spacing: 1}
}

// GridOption customizes NewGrid's layout.
type GridOption func(*gridConfig)

// WithOrigin sets the position of the grid's (row 0, col 0) point.
func WithOrigin(p mesh.Position) GridOption {
	return func(c *gridConfig) {
		c.origin = p
	}
}

// WithSpacing sets the distance between adjacent grid points along both
// axes. Panics if spacing is not positive, since a degenerate or
// negative spacing would fold the grid onto itself.
func WithSpacing(spacing float32) GridOption {
	if spacing <= 0 {
		panic("builder: WithSpacing(spacing<=0)")
	}

	return func(c *gridConfig) {
		c.spacing = spacing
	}
}
