package mesh

import (
	"sync/atomic"

	"github.com/photex-labs/hedgekernel/arena"
)

// Kernel owns the four element arenas that make up a mesh and a monotonic
// tag counter used to stamp cycle-safe traversals. It performs no
// concurrent-mutation protection: per the single-mutator model this
// package is built for, callers serialize their own access.
type Kernel struct {
	points   arena.Arena[PointData]
	vertices arena.Arena[VertexData]
	edges    arena.Arena[HalfEdgeData]
	faces    arena.Arena[FaceData]
	tag      atomic.Uint32
}

// NewKernel returns an empty kernel ready to use. The zero value of Kernel
// is also ready to use; this constructor exists for symmetry with the
// rest of the package's API and to seed the tag counter starting at 1 so
// that a freshly-zeroed HalfEdgeData.Tag (0) never collides with a real
// traversal stamp.
func NewKernel() *Kernel {
	k := &Kernel{}
	k.tag.Store(1)

	return k
}

// NextTag mints a fresh traversal stamp. Every call to a traversal method
// that walks a cycle (a face loop, a vertex fan) draws one of these, so
// that two independent traversals never confuse each other's visited
// marks even if they interleave.
func (k *Kernel) NextTag() uint32 {
	return k.tag.Add(1)
}

// SetEdgeTag stamps an edge's Tag field in place. The tag is a plain
// struct field rather than an atomically-guarded cell: the single-mutator
// concurrency model means no two traversals run against the kernel at
// once, so there is no aliasing hazard to guard against.
func (k *Kernel) SetEdgeTag(h EdgeIndex, tag uint32) {
	if e, ok := k.edges.Get(h); ok {
		e.Tag = tag
	}
}

// EdgeTag reads an edge's current traversal stamp. It returns 0 (never a
// valid stamp, since NextTag starts from 2) for an unresolvable handle.
func (k *Kernel) EdgeTag(h EdgeIndex) uint32 {
	if e, ok := k.edges.Get(h); ok {
		return e.Tag
	}

	return 0
}

// AddPoint stores a new point and returns its handle.
func (k *Kernel) AddPoint(data PointData) PointIndex {
	return k.points.Push(data)
}

// GetPoint resolves a point handle to its data.
func (k *Kernel) GetPoint(h PointIndex) (*PointData, bool) {
	return k.points.Get(h)
}

// RemovePoint deactivates a point. It is idempotent on an already-invalid
// or already-removed handle. Any vertex still referencing this point is
// left dangling until the caller repairs or removes it — the kernel
// performs no automatic topological repair.
func (k *Kernel) RemovePoint(h PointIndex) {
	k.points.Remove(h)
}

// AddVertex stores a new vertex and returns its handle.
func (k *Kernel) AddVertex(data VertexData) VertexIndex {
	return k.vertices.Push(data)
}

// GetVertex resolves a vertex handle to its data.
func (k *Kernel) GetVertex(h VertexIndex) (*VertexData, bool) {
	return k.vertices.Get(h)
}

// RemoveVertex deactivates a vertex.
func (k *Kernel) RemoveVertex(h VertexIndex) {
	k.vertices.Remove(h)
}

// AddEdge stores a new half-edge and returns its handle.
func (k *Kernel) AddEdge(data HalfEdgeData) EdgeIndex {
	return k.edges.Push(data)
}

// GetEdge resolves a half-edge handle to its data.
func (k *Kernel) GetEdge(h EdgeIndex) (*HalfEdgeData, bool) {
	return k.edges.Get(h)
}

// RemoveEdge deactivates a half-edge.
func (k *Kernel) RemoveEdge(h EdgeIndex) {
	k.edges.Remove(h)
}

// AddFace stores a new face and returns its handle.
func (k *Kernel) AddFace(data FaceData) FaceIndex {
	return k.faces.Push(data)
}

// GetFace resolves a face handle to its data.
func (k *Kernel) GetFace(h FaceIndex) (*FaceData, bool) {
	return k.faces.Get(h)
}

// RemoveFace deactivates a face.
func (k *Kernel) RemoveFace(h FaceIndex) {
	k.faces.Remove(h)
}

// PointCount, VertexCount, EdgeCount and FaceCount report the number of
// currently active elements of each kind.
func (k *Kernel) PointCount() int  { return k.points.Len() }
func (k *Kernel) VertexCount() int { return k.vertices.Len() }
func (k *Kernel) EdgeCount() int   { return k.edges.Len() }
func (k *Kernel) FaceCount() int   { return k.faces.Len() }

// ActiveElementCount sums the active counts across all four arenas.
func (k *Kernel) ActiveElementCount() int {
	return k.PointCount() + k.VertexCount() + k.EdgeCount() + k.FaceCount()
}

// InactiveElementCount sums the number of free, unreclaimed slots across
// all four arenas. A non-zero count means Defragment has work to do.
func (k *Kernel) InactiveElementCount() int {
	count := 0
	if k.points.HasInactiveCells() {
		count += capMinusLen(&k.points)
	}
	if k.vertices.HasInactiveCells() {
		count += capMinusLen(&k.vertices)
	}
	if k.edges.HasInactiveCells() {
		count += capMinusLen(&k.edges)
	}
	if k.faces.HasInactiveCells() {
		count += capMinusLen(&k.faces)
	}

	return count
}

// capMinusLen reports the number of free slots in an arena: total
// capacity minus the sentinel minus the active count.
func capMinusLen[T any](a *arena.Arena[T]) int {
	return (a.Capacity() - 1) - a.Len()
}

// Face returns a traversal handle bound to this kernel for the given face
// index. It does not check validity; resolution happens lazily on first
// use, exactly like every other traversal façade.
func (k *Kernel) Face(h FaceIndex) FaceHandle { return FaceHandle{kernel: k, index: h} }

// Edge returns a traversal handle bound to this kernel for the given edge
// index.
func (k *Kernel) Edge(h EdgeIndex) EdgeHandle { return EdgeHandle{kernel: k, index: h} }

// Vertex returns a traversal handle bound to this kernel for the given
// vertex index.
func (k *Kernel) Vertex(h VertexIndex) VertexHandle { return VertexHandle{kernel: k, index: h} }

// Faces visits every active face in ascending offset order.
func (k *Kernel) Faces(visit func(FaceIndex, *FaceData) bool) {
	k.faces.All(visit)
}

// Edges visits every active half-edge in ascending offset order.
func (k *Kernel) Edges(visit func(EdgeIndex, *HalfEdgeData) bool) {
	k.edges.All(visit)
}

// Vertices visits every active vertex in ascending offset order.
func (k *Kernel) Vertices(visit func(VertexIndex, *VertexData) bool) {
	k.vertices.All(visit)
}

// Points visits every active point in ascending offset order.
func (k *Kernel) Points(visit func(PointIndex, *PointData) bool) {
	k.points.All(visit)
}
