package mesh

// FaceHandle, EdgeHandle and VertexHandle are thin, copyable traversal
// façades: each bundles a kernel reference with a single element index so
// that navigating the mesh reads as method chains (f.Edge().Next().Twin())
// rather than repeated kernel lookups threaded through by hand. They carry
// no state of their own beyond the index, so holding one is exactly as
// cheap as holding the index directly.

// FaceHandle is a traversal façade bound to one face.
type FaceHandle struct {
	kernel *Kernel
	index  FaceIndex
}

// Index returns the underlying face index.
func (f FaceHandle) Index() FaceIndex { return f.index }

// IsValid reports whether the face resolves to live data.
func (f FaceHandle) IsValid() bool {
	_, ok := f.kernel.GetFace(f.index)
	return ok
}

// Edge returns the face's root half-edge.
func (f FaceHandle) Edge() EdgeHandle {
	data, ok := f.kernel.GetFace(f.index)
	if !ok {
		return f.kernel.Edge(EdgeIndex{})
	}

	return f.kernel.Edge(data.Edge)
}

// Edges returns an iterator over every half-edge of the face's boundary
// loop, starting from the root edge. A fresh traversal tag is drawn for
// every call, so concurrent-in-time (though never concurrent-in-access,
// per the single-mutator model) independent traversals never interfere.
func (f FaceHandle) Edges() *FaceEdges {
	return &FaceEdges{
		kernel: f.kernel,
		tag:    f.kernel.NextTag(),
		root:   f.Edge(),
	}
}

// Vertices returns an iterator over every vertex of the face's boundary
// loop, in the same order as Edges.
func (f FaceHandle) Vertices() *FaceVertices {
	return &FaceVertices{inner: f.Edges()}
}

// EdgeHandle is a traversal façade bound to one half-edge.
type EdgeHandle struct {
	kernel *Kernel
	index  EdgeIndex
}

// Index returns the underlying edge index.
func (e EdgeHandle) Index() EdgeIndex { return e.index }

// IsValid reports whether the edge resolves to live data.
func (e EdgeHandle) IsValid() bool {
	_, ok := e.kernel.GetEdge(e.index)
	return ok
}

// IsBoundary reports whether this edge borders the mesh's exterior: either
// it has no face of its own, or its twin has no face.
func (e EdgeHandle) IsBoundary() bool {
	if !e.Face().IsValid() {
		return true
	}

	return !e.Twin().Face().IsValid()
}

// Next, Prev and Twin navigate to the adjacent half-edges.
func (e EdgeHandle) Next() EdgeHandle { return e.linked(func(d *HalfEdgeData) EdgeIndex { return d.Next }) }
func (e EdgeHandle) Prev() EdgeHandle { return e.linked(func(d *HalfEdgeData) EdgeIndex { return d.Prev }) }
func (e EdgeHandle) Twin() EdgeHandle { return e.linked(func(d *HalfEdgeData) EdgeIndex { return d.Twin }) }

func (e EdgeHandle) linked(pick func(*HalfEdgeData) EdgeIndex) EdgeHandle {
	data, ok := e.kernel.GetEdge(e.index)
	if !ok {
		return e.kernel.Edge(EdgeIndex{})
	}

	return e.kernel.Edge(pick(data))
}

// Face returns the face this edge borders, or an invalid FaceHandle for a
// boundary edge.
func (e EdgeHandle) Face() FaceHandle {
	data, ok := e.kernel.GetEdge(e.index)
	if !ok {
		return e.kernel.Face(FaceIndex{})
	}

	return e.kernel.Face(data.Face)
}

// Vertex returns the vertex this edge originates from.
func (e EdgeHandle) Vertex() VertexHandle {
	data, ok := e.kernel.GetEdge(e.index)
	if !ok {
		return e.kernel.Vertex(VertexIndex{})
	}

	return e.kernel.Vertex(data.Vertex)
}

// VertexHandle is a traversal façade bound to one vertex.
type VertexHandle struct {
	kernel *Kernel
	index  VertexIndex
}

// Index returns the underlying vertex index.
func (v VertexHandle) Index() VertexIndex { return v.index }

// IsValid reports whether the vertex resolves to live data.
func (v VertexHandle) IsValid() bool {
	_, ok := v.kernel.GetVertex(v.index)
	return ok
}

// Edge returns the vertex's outgoing half-edge.
func (v VertexHandle) Edge() EdgeHandle {
	data, ok := v.kernel.GetVertex(v.index)
	if !ok {
		return v.kernel.Edge(EdgeIndex{})
	}

	return v.kernel.Edge(data.Edge)
}

// Point returns the point this vertex sits at.
func (v VertexHandle) Point() (*PointData, bool) {
	data, ok := v.kernel.GetVertex(v.index)
	if !ok {
		return nil, false
	}

	return v.kernel.GetPoint(data.Point)
}

// Edges returns a circulator over the half-edges radiating outward from
// this vertex, in rotational order starting at the vertex's outgoing edge.
// The walk ends at the first boundary edge it would rotate into, so on an
// open fan the outgoing edges past that boundary are not visited. A fresh
// traversal tag is drawn for every call.
func (v VertexHandle) Edges() *VertexCirculator {
	return &VertexCirculator{
		kernel:  v.kernel,
		tag:     v.kernel.NextTag(),
		vertex:  v,
		started: false,
	}
}

// FaceEdges iterates the half-edges of one face's boundary loop. The zero
// value is not usable; obtain one via FaceHandle.Edges.
type FaceEdges struct {
	kernel  *Kernel
	tag     uint32
	root    EdgeHandle
	current EdgeHandle
	started bool
	done    bool
}

// Next advances the iterator and returns the next edge, or a zero
// EdgeHandle with ok=false once the loop has closed. Termination is
// guarded two ways: a tag collision (this edge was already visited this
// traversal) and a return to the root edge (the loop closed normally).
// Either is sufficient on well-formed input; both are kept so a traversal
// over a loop left in a transiently inconsistent state by a caller still
// terminates instead of spinning.
func (it *FaceEdges) Next() (EdgeHandle, bool) {
	if it.done {
		return EdgeHandle{}, false
	}

	if !it.started {
		it.started = true
		if !it.root.IsValid() {
			it.done = true
			return EdgeHandle{}, false
		}
		it.current = it.root
		it.kernel.SetEdgeTag(it.current.index, it.tag)

		return it.current, true
	}

	next := it.current.Next()
	if !next.IsValid() {
		it.done = true
		return EdgeHandle{}, false
	}
	if it.kernel.EdgeTag(next.index) == it.tag {
		it.done = true
		return EdgeHandle{}, false
	}

	it.current = next
	it.kernel.SetEdgeTag(it.current.index, it.tag)

	if it.current.index == it.root.index {
		it.done = true
		return EdgeHandle{}, false
	}

	return it.current, true
}

// FaceVertices iterates the vertices of one face's boundary loop, derived
// from the same edge walk as FaceEdges.
type FaceVertices struct {
	inner *FaceEdges
}

// Next advances the iterator and returns the next vertex.
func (it *FaceVertices) Next() (VertexHandle, bool) {
	edge, ok := it.inner.Next()
	if !ok {
		return VertexHandle{}, false
	}

	return edge.Vertex(), true
}

// VertexCirculator iterates the half-edges radiating outward from one
// vertex, rotating via Prev().Twin() — the standard half-edge fan walk.
// The zero value is not usable; obtain one via VertexHandle.Edges.
type VertexCirculator struct {
	kernel       *Kernel
	tag          uint32
	vertex       VertexHandle
	centralPoint PointIndex
	current      EdgeHandle
	started      bool
	done         bool
}

// Next advances the circulator and returns the next outgoing edge, or
// ok=false once the fan is exhausted — either because it closed back on
// itself (tag collision) or because it hit a boundary (an open fan has no
// further edge to rotate into).
func (it *VertexCirculator) Next() (EdgeHandle, bool) {
	if it.done {
		return EdgeHandle{}, false
	}

	if !it.started {
		it.started = true
		first := it.vertex.Edge()
		if !first.IsValid() {
			it.done = true
			return EdgeHandle{}, false
		}
		if vdata, ok := it.kernel.GetVertex(it.vertex.index); ok {
			it.centralPoint = vdata.Point
		}
		it.current = first
		it.kernel.SetEdgeTag(it.current.index, it.tag)

		return it.current, true
	}

	candidate := it.current.Prev().Twin()
	if !candidate.IsValid() {
		it.done = true
		return EdgeHandle{}, false
	}
	if it.kernel.EdgeTag(candidate.index) == it.tag {
		it.done = true
		return EdgeHandle{}, false
	}
	if candidate.IsBoundary() {
		it.done = true
		return EdgeHandle{}, false
	}

	candidateVertexData, ok := it.kernel.GetVertex(candidate.Vertex().index)
	if !ok || candidateVertexData.Point != it.centralPoint {
		// Defensive: a well-formed fan always rotates back to the same
		// central point. A mismatch means the topology is not a valid
		// manifold fan around this vertex; stop rather than walk
		// somewhere meaningless.
		it.done = true
		return EdgeHandle{}, false
	}

	it.current = candidate
	it.kernel.SetEdgeTag(it.current.index, it.tag)

	return it.current, true
}
