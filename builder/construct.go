package builder

import "github.com/photex-labs/hedgekernel/mesh"

// MethodBuildFullEdge, MethodBuildFullEdgeFrom, MethodCloseEdgeLoop,
// MethodConnectEdges and MethodAssignFaceToLoop name the constructors for
// error-context wrapping.
const (
	MethodBuildFullEdge     = "BuildFullEdge"
	MethodBuildFullEdgeFrom = "BuildFullEdgeFrom"
	MethodCloseEdgeLoop     = "CloseEdgeLoop"
	MethodConnectEdges      = "ConnectEdges"
	MethodAssignFaceToLoop  = "AssignFaceToLoop"
)

// BuildFullEdge allocates a new pair of twinned half-edges running between
// v0 and v1: one originating at v0 (the returned handle), one at v1. Both
// vertices have their outgoing-edge reference set to the edge that
// originates there.
func BuildFullEdge(k *mesh.Kernel, v0, v1 mesh.VertexIndex) (mesh.EdgeIndex, error) {
	if _, ok := k.GetVertex(v0); !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodBuildFullEdge, ErrInvalidHandle)
	}
	if _, ok := k.GetVertex(v1); !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodBuildFullEdge, ErrInvalidHandle)
	}

	e0 := k.AddEdge(mesh.HalfEdgeData{Vertex: v0})
	e1 := k.AddEdge(mesh.HalfEdgeData{Vertex: v1, Twin: e0})

	if d, ok := k.GetEdge(e0); ok {
		d.Twin = e1
	}
	if vd, ok := k.GetVertex(v0); ok {
		vd.Edge = e0
	}
	if vd, ok := k.GetVertex(v1); ok {
		vd.Edge = e1
	}

	return e0, nil
}

// BuildFullEdgeFrom extends a partial loop: it derives the starting vertex
// from prev's twin (prev's twin originates where the new edge should),
// builds a full edge from there to v1, and connects prev to the new edge
// in the same motion.
func BuildFullEdgeFrom(k *mesh.Kernel, prev mesh.EdgeIndex, v1 mesh.VertexIndex) (mesh.EdgeIndex, error) {
	prevData, ok := k.GetEdge(prev)
	if !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodBuildFullEdgeFrom, ErrInvalidHandle)
	}
	twinData, ok := k.GetEdge(prevData.Twin)
	if !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodBuildFullEdgeFrom, ErrInvalidHandle)
	}

	e0, err := BuildFullEdge(k, twinData.Vertex, v1)
	if err != nil {
		return mesh.EdgeIndex{}, err
	}

	if err := ConnectEdges(k, prev, e0); err != nil {
		return mesh.EdgeIndex{}, err
	}

	return e0, nil
}

// CloseEdgeLoop builds the final edge of a loop, connecting prev to it and
// it to next, closing the loop back on itself. The new edge runs from
// prev's twin's vertex to next's vertex.
func CloseEdgeLoop(k *mesh.Kernel, prev, next mesh.EdgeIndex) (mesh.EdgeIndex, error) {
	prevData, ok := k.GetEdge(prev)
	if !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodCloseEdgeLoop, ErrInvalidHandle)
	}
	twinData, ok := k.GetEdge(prevData.Twin)
	if !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodCloseEdgeLoop, ErrInvalidHandle)
	}
	nextData, ok := k.GetEdge(next)
	if !ok {
		return mesh.EdgeIndex{}, builderErrorf(MethodCloseEdgeLoop, ErrInvalidHandle)
	}

	e0, err := BuildFullEdge(k, twinData.Vertex, nextData.Vertex)
	if err != nil {
		return mesh.EdgeIndex{}, err
	}

	if err := ConnectEdges(k, prev, e0); err != nil {
		return mesh.EdgeIndex{}, err
	}
	if err := ConnectEdges(k, e0, next); err != nil {
		return mesh.EdgeIndex{}, err
	}

	return e0, nil
}

// ConnectEdges sets prev.Next = next and next.Prev = prev. It touches
// nothing else — no vertex, face, or twin reference is implied by
// connecting two edges in sequence.
func ConnectEdges(k *mesh.Kernel, prev, next mesh.EdgeIndex) error {
	p, ok := k.GetEdge(prev)
	if !ok {
		return builderErrorf(MethodConnectEdges, ErrInvalidHandle)
	}
	n, ok := k.GetEdge(next)
	if !ok {
		return builderErrorf(MethodConnectEdges, ErrInvalidHandle)
	}

	p.Next = next
	n.Prev = prev

	return nil
}

// AssignFaceToLoop sets face's root edge to root, then walks the loop
// starting at root assigning face to every edge's Face reference, until it
// either reaches an edge already naming face (fixpoint — the rest of the
// loop was already assigned by a previous call) or returns to root (the
// loop closed).
func AssignFaceToLoop(k *mesh.Kernel, root mesh.EdgeIndex, face mesh.FaceIndex) error {
	f, ok := k.GetFace(face)
	if !ok {
		return builderErrorf(MethodAssignFaceToLoop, ErrInvalidHandle)
	}
	f.Edge = root

	current := root
	for {
		e, ok := k.GetEdge(current)
		if !ok {
			return builderErrorf(MethodAssignFaceToLoop, ErrInvalidHandle)
		}
		if e.Face == face {
			break
		}
		e.Face = face

		if e.Next == root {
			break
		}
		if !e.Next.IsValid() {
			return builderErrorf(MethodAssignFaceToLoop, ErrInvalidHandle)
		}
		current = e.Next
	}

	return nil
}
