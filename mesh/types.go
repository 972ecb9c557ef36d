// Package mesh implements a half-edge (doubly-connected edge list) mesh
// kernel: four generational arenas — points, vertices, half-edges, and
// faces — wired together by cross-referencing handles, plus a
// defragmentation engine that packs each arena back to a contiguous range
// after removals.
//
// The kernel holds no geometric predicates and performs no file I/O; it is
// pure topology plus position storage, built for callers (a builder, a
// higher-level solver) to drive.
package mesh

import "github.com/photex-labs/hedgekernel/arena"

// Position is a point in 3-space. The kernel stores it but never
// interprets it; no geometric predicate reads into this type.
type Position [3]float32

// PointIndex, VertexIndex, EdgeIndex and FaceIndex address the four
// element kinds the kernel stores. They carry no data beyond an
// (offset, generation) pair; the element-kind type parameter only
// prevents a handle for one arena being passed where another is expected.
type (
	PointIndex = arena.Handle[PointData]
	VertexIndex = arena.Handle[VertexData]
	EdgeIndex   = arena.Handle[HalfEdgeData]
	FaceIndex   = arena.Handle[FaceData]
)

// PointData is the payload stored for a Point: a bare position with no
// further invariant — a point is valid simply by being active.
type PointData struct {
	Position Position
}

// VertexData associates a point in space with one outgoing half-edge. A
// vertex is valid only when both references resolve: an active point and
// an active outgoing edge.
type VertexData struct {
	Point PointIndex
	Edge  EdgeIndex
}

// FaceData names one half-edge of the face's boundary loop; walking Next
// from it visits every edge of the loop exactly once. A face is valid
// only when that edge reference resolves.
type FaceData struct {
	Edge EdgeIndex
}

// HalfEdgeData is the core cross-referencing record of the mesh: every
// other half-edge reachable from it (twin, next, prev), the face it
// borders (invalid if this edge is a boundary edge), the vertex it
// originates from, and a traversal tag used to make cycle-safe walks
// possible without extra per-call bookkeeping.
type HalfEdgeData struct {
	Twin   EdgeIndex
	Next   EdgeIndex
	Prev   EdgeIndex
	Face   FaceIndex
	Vertex VertexIndex
	Tag    uint32
}

// IsConnected reports whether both the next and prev links of e resolve to
// something — i.e. whether e participates in a closed loop at all.
func (e HalfEdgeData) IsConnected() bool {
	return e.Next.IsValid() && e.Prev.IsValid()
}
