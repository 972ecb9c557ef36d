// Package meshgraph builds a dual graph over a mesh's faces — one node per
// face, an edge between faces sharing a non-boundary half-edge — and runs
// classic graph algorithms over it: connected components, reachability,
// shortest path, and minimum spanning forest, plus dense adjacency and
// incidence export. None of it touches geometry; a caller that wants
// distance-weighted shortest paths supplies its own WeightFunc.
package meshgraph

import "errors"

// ErrNilKernel is returned when a nil *mesh.Kernel is given to BuildFaceAdjacency.
var ErrNilKernel = errors.New("meshgraph: nil kernel")

// ErrUnknownFace is returned when an operation is given a face not present
// in the FaceAdjacency it was built from.
var ErrUnknownFace = errors.New("meshgraph: face not present in adjacency")
