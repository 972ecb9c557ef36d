package meshgraph

import "github.com/photex-labs/hedgekernel/mesh"

// Reachable walks fa depth-first from root and returns the set of faces
// reachable from it, including root itself. It is the sanity-check
// primitive: a mesh meant to be a single connected surface should have
// every face reachable from any one of them.
func Reachable(fa *FaceAdjacency, root mesh.FaceIndex) map[mesh.FaceIndex]bool {
	visited := make(map[mesh.FaceIndex]bool, len(fa.faces))

	var visit func(mesh.FaceIndex)
	visit = func(f mesh.FaceIndex) {
		if visited[f] {
			return
		}
		visited[f] = true
		for _, n := range fa.Neighbors(f) {
			visit(n)
		}
	}

	if fa.Has(root) {
		visit(root)
	}

	return visited
}
