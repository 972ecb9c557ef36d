package meshgraph

import (
	"container/heap"
	"errors"
	"math"

	"github.com/photex-labs/hedgekernel/mesh"
)

// ErrNegativeWeight is returned when a WeightFunc produces a negative
// value; Dijkstra's algorithm is undefined over negative weights.
var ErrNegativeWeight = errors.New("meshgraph: negative edge weight")

// WeightFunc assigns a cost to crossing from face `from` to face `to`
// through half-edge `via`. The kernel carries no geometry, so there is no
// default weight to fall back to beyond the trivial UnitWeight.
type WeightFunc func(from, to mesh.FaceIndex, via mesh.EdgeIndex) int64

// UnitWeight costs every crossing 1, turning ShortestPath into an
// unweighted breadth-first shortest path.
func UnitWeight(mesh.FaceIndex, mesh.FaceIndex, mesh.EdgeIndex) int64 { return 1 }

// ShortestPath computes minimum-cost distances from source to every face
// reachable from it in fa, using weight to cost each crossing. It returns
// the distance map (math.MaxInt64 for unreached faces) and a predecessor
// map for path reconstruction.
func ShortestPath(fa *FaceAdjacency, source mesh.FaceIndex, weight WeightFunc) (map[mesh.FaceIndex]int64, map[mesh.FaceIndex]mesh.FaceIndex, error) {
	if weight == nil {
		weight = UnitWeight
	}
	if !fa.Has(source) {
		return nil, nil, ErrUnknownFace
	}

	dist := make(map[mesh.FaceIndex]int64, len(fa.faces))
	prev := make(map[mesh.FaceIndex]mesh.FaceIndex, len(fa.faces))
	visited := make(map[mesh.FaceIndex]bool, len(fa.faces))

	for _, f := range fa.faces {
		dist[f] = math.MaxInt64
	}
	dist[source] = 0

	pq := make(facePQ, 0, len(fa.faces))
	heap.Init(&pq)
	heap.Push(&pq, &faceItem{face: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*faceItem)
		u, d := item.face, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, v := range fa.Neighbors(u) {
			via, _ := fa.EdgeBetween(u, v)
			w := weight(u, v, via)
			if w < 0 {
				return nil, nil, ErrNegativeWeight
			}

			newDist := d + w
			if newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(&pq, &faceItem{face: v, dist: newDist})
			}
		}
	}

	return dist, prev, nil
}

// faceItem is one entry of the lazy-decrease-key priority queue: stale
// entries (a face already finalized) are simply skipped when popped
// rather than removed from the heap up front.
type faceItem struct {
	face mesh.FaceIndex
	dist int64
}

type facePQ []*faceItem

func (pq facePQ) Len() int            { return len(pq) }
func (pq facePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq facePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *facePQ) Push(x interface{}) { *pq = append(*pq, x.(*faceItem)) }
func (pq *facePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
