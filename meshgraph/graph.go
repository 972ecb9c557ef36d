package meshgraph

import (
	"sort"

	"github.com/photex-labs/hedgekernel/mesh"
)

// FaceAdjacency is the dual graph of a mesh: one node per active face, and
// one edge between two faces that share at least one non-boundary
// half-edge; when they share several, only one of them is recorded. It is
// a snapshot — built once from a kernel's current state — and
// does not track subsequent mutation of the kernel it was built from.
type FaceAdjacency struct {
	faces []mesh.FaceIndex
	adj   map[mesh.FaceIndex]map[mesh.FaceIndex]mesh.EdgeIndex
}

// BuildFaceAdjacency walks every active face's boundary loop and records an
// adjacency entry for each edge whose twin borders another face.
func BuildFaceAdjacency(k *mesh.Kernel) (*FaceAdjacency, error) {
	if k == nil {
		return nil, ErrNilKernel
	}

	fa := &FaceAdjacency{adj: make(map[mesh.FaceIndex]map[mesh.FaceIndex]mesh.EdgeIndex)}

	k.Faces(func(h mesh.FaceIndex, _ *mesh.FaceData) bool {
		fa.faces = append(fa.faces, h)
		fa.adj[h] = make(map[mesh.FaceIndex]mesh.EdgeIndex)

		return true
	})

	for _, h := range fa.faces {
		it := k.Face(h).Edges()
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			if e.IsBoundary() {
				continue
			}
			neighbor := e.Twin().Face()
			if !neighbor.IsValid() {
				continue
			}
			fa.adj[h][neighbor.Index()] = e.Index()
		}
	}

	return fa, nil
}

// Faces returns the faces this adjacency was built over, in the order the
// kernel enumerated them (ascending offset at build time).
func (fa *FaceAdjacency) Faces() []mesh.FaceIndex {
	return append([]mesh.FaceIndex(nil), fa.faces...)
}

// Neighbors returns the faces adjacent to f, in deterministic ascending
// offset order.
func (fa *FaceAdjacency) Neighbors(f mesh.FaceIndex) []mesh.FaceIndex {
	nbrs := fa.adj[f]
	out := make([]mesh.FaceIndex, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// EdgeBetween returns the half-edge on f's side of the boundary it shares
// with neighbor, if any.
func (fa *FaceAdjacency) EdgeBetween(f, neighbor mesh.FaceIndex) (mesh.EdgeIndex, bool) {
	nbrs, ok := fa.adj[f]
	if !ok {
		return mesh.EdgeIndex{}, false
	}
	e, ok := nbrs[neighbor]

	return e, ok
}

// Has reports whether f is a face this adjacency was built over.
func (fa *FaceAdjacency) Has(f mesh.FaceIndex) bool {
	_, ok := fa.adj[f]

	return ok
}
