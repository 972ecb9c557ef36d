// Package builder provides the half-edge construction primitives used to
// assemble a mesh.Kernel from scratch: pairing half-edges into twins,
// linking them into face loops, and closing a loop back on itself. It also
// provides NewGrid, a deterministic regular-grid mesh constructor built
// from those primitives.
//
// Construction here never repairs or validates an already-built mesh —
// that is explicitly out of scope for the kernel this package builds on
// top of — it only ever adds new, internally-consistent structure.
package builder
