package mesh

import "github.com/photex-labs/hedgekernel/arena"

// Defragment packs every arena back to a contiguous active range, in the
// fixed order faces, vertices, points, edges. The order matters: faces and
// vertices are sortable in place because nothing outside the mesh holds a
// raw offset into them across a defragment call except the edges that are
// about to be rewritten in the same pass, so they go first; points are
// rewritten incrementally because only vertices hold back-references into
// the point arena; edges go last because they are self-referential
// (twin/next/prev) as well as being the only thing faces and vertices
// point into, so by the time edges move, every other arena's offsets are
// already final.
//
// After Defragment returns, every arena's free set is empty and every
// surviving cross-reference resolves to the correct, current handle —
// including references to elements that did not move, which is why this
// is a single coordinated pass rather than four independent calls.
func (k *Kernel) Defragment() {
	if k.InactiveElementCount() == 0 {
		return
	}

	k.defragFaces()
	k.defragVertices()
	k.defragPoints()
	k.defragEdges()
}

// defragFaces sorts the face arena active-first, then walks each
// surviving face's boundary loop rewriting every edge's Face reference to
// the face's new handle, stopping as soon as an edge is found already
// pointing at it (the loop is already correct from there on, since every
// face's loop is only ever written by this same fixpoint-guarded walk).
func (k *Kernel) defragFaces() {
	if !k.faces.HasInactiveCells() {
		return
	}

	k.faces.SortActiveFirst()
	k.faces.TruncateInactive()

	k.faces.All(func(newFace FaceIndex, face *FaceData) bool {
		root := face.Edge
		if !root.IsValid() {
			return true
		}

		current := root
		for {
			edge, ok := k.edges.Get(current)
			if !ok {
				break
			}
			if edge.Face == newFace {
				break // fixpoint: the rest of the loop is already correct
			}
			edge.Face = newFace

			next := edge.Next
			if next == root {
				break // closed the loop
			}
			if !next.IsValid() {
				break
			}
			current = next
		}

		return true
	})
}

// defragVertices sorts the vertex arena active-first, then rewrites the
// Vertex reference of every half-edge that named a surviving vertex by its
// old handle. Every half-edge of a vertex's fan originates there, so all of
// them are rewritten, not only the vertex's outgoing edge.
func (k *Kernel) defragVertices() {
	if !k.vertices.HasInactiveCells() {
		return
	}

	// SortActiveFirst keeps relative order and moves each generation with
	// its slot, so the i-th active vertex lands at offset i unchanged.
	renamed := make(map[VertexIndex]VertexIndex)
	k.vertices.All(func(old VertexIndex, _ *VertexData) bool {
		renamed[old] = VertexIndex{Offset: arena.Offset(len(renamed) + 1), Generation: old.Generation}
		return true
	})

	k.vertices.SortActiveFirst()
	k.vertices.TruncateInactive()

	k.edges.All(func(_ EdgeIndex, edge *HalfEdgeData) bool {
		if newVertex, ok := renamed[edge.Vertex]; ok {
			edge.Vertex = newVertex
		}

		return true
	})
}

// defragPoints cannot be sorted in place: the only back-references to a
// point live in vertices, scattered in no particular order, so each free
// slot is incrementally filled from the highest surviving offset and every
// vertex pointing at the moved offset is repointed to its new one.
func (k *Kernel) defragPoints() {
	for {
		inactive, active, ok := k.points.NextSwapPair()
		if !ok {
			break
		}

		k.points.SwapOffsets(inactive, active)
		swapped := k.points.HandleAt(inactive)

		k.vertices.All(func(_ VertexIndex, vertex *VertexData) bool {
			if vertex.Point.Offset == active {
				vertex.Point = swapped
			}

			return true
		})
	}

	k.points.TruncateInactive()
}

// defragEdges is the most involved phase: half-edges reference each other
// directly (twin, next, prev) as well as being referenced from faces and
// vertices, so every swap must rewrite up to five cross-references. The
// three edge-to-edge references (next's prev, prev's next, twin's twin)
// are rewritten unconditionally once the referenced edge resolves. The
// face's root edge and the vertex's outgoing edge are rewritten only if
// they still name the offset that just moved — another edge from the same
// loop or fan may have already claimed that root/outgoing slot.
func (k *Kernel) defragEdges() {
	for {
		inactive, active, ok := k.edges.NextSwapPair()
		if !ok {
			break
		}

		k.edges.SwapOffsets(inactive, active)
		swapped := k.edges.HandleAt(inactive)

		edge, _ := k.edges.Get(swapped)

		if next, ok := k.edges.Get(edge.Next); ok {
			next.Prev = swapped
		}
		if prev, ok := k.edges.Get(edge.Prev); ok {
			prev.Next = swapped
		}
		if twin, ok := k.edges.Get(edge.Twin); ok {
			twin.Twin = swapped
		}

		if face, ok := k.faces.Get(edge.Face); ok && face.Edge.Offset == active {
			face.Edge = swapped
		}
		if vertex, ok := k.vertices.Get(edge.Vertex); ok && vertex.Edge.Offset == active {
			vertex.Edge = swapped
		}
	}

	k.edges.TruncateInactive()
}
