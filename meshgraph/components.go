package meshgraph

import "github.com/photex-labs/hedgekernel/mesh"

// Components partitions every face in fa into connected components via
// breadth-first search, visiting each face exactly once. The result order
// of components follows the order faces were first discovered; within a
// component, faces are listed in visit (not necessarily offset) order.
func Components(fa *FaceAdjacency) [][]mesh.FaceIndex {
	visited := make(map[mesh.FaceIndex]bool, len(fa.faces))
	var comps [][]mesh.FaceIndex

	for _, root := range fa.faces {
		if visited[root] {
			continue
		}

		comp := []mesh.FaceIndex{}
		queue := []mesh.FaceIndex{root}
		visited[root] = true

		for len(queue) > 0 {
			face := queue[0]
			queue = queue[1:]
			comp = append(comp, face)

			for _, n := range fa.Neighbors(face) {
				if visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}

		comps = append(comps, comp)
	}

	return comps
}
