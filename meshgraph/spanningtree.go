package meshgraph

import (
	"sort"

	"github.com/photex-labs/hedgekernel/mesh"
)

// SpanningTree computes a minimum spanning forest of fa's dual graph via
// Kruskal's algorithm with union-find: one spanning tree per connected
// component. A forest rather than a single tree, since nothing about a
// mesh guarantees its dual graph is connected, and there is no reason to
// fail the whole computation just because two disjoint surfaces happen to
// share a kernel.
//
// The returned edges are half-edges on the lower-offset face's side of
// each crossing; a caller placing a seam or a cut can walk IsBoundary
// afterward to see where it would land.
func SpanningTree(fa *FaceAdjacency, weight WeightFunc) []mesh.EdgeIndex {
	if weight == nil {
		weight = UnitWeight
	}

	type candidate struct {
		from, to mesh.FaceIndex
		via      mesh.EdgeIndex
		cost     int64
	}

	var candidates []candidate
	for _, f := range fa.faces {
		for _, n := range fa.Neighbors(f) {
			if !f.Less(n) {
				continue // visit each undirected crossing once
			}
			via, _ := fa.EdgeBetween(f, n)
			candidates = append(candidates, candidate{from: f, to: n, via: via, cost: weight(f, n, via)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].cost < candidates[j].cost })

	parent := make(map[mesh.FaceIndex]mesh.FaceIndex, len(fa.faces))
	rank := make(map[mesh.FaceIndex]int, len(fa.faces))
	for _, f := range fa.faces {
		parent[f] = f
	}

	var find func(mesh.FaceIndex) mesh.FaceIndex
	find = func(f mesh.FaceIndex) mesh.FaceIndex {
		for parent[f] != f {
			parent[f] = parent[parent[f]]
			f = parent[f]
		}

		return f
	}
	union := func(a, b mesh.FaceIndex) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	var forest []mesh.EdgeIndex
	for _, c := range candidates {
		if find(c.from) != find(c.to) {
			union(c.from, c.to)
			forest = append(forest, c.via)
		}
	}

	return forest
}
