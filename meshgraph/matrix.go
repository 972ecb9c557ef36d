package meshgraph

import "github.com/photex-labs/hedgekernel/mesh"

// DenseMatrix is a row-major dense matrix, the minimal backing this
// package needs for adjacency and incidence export. It deliberately stops
// there: no eigendecomposition, LU/QR factorization, metric closure, or
// descriptive statistics live here, since nothing in this package's scope
// consumes them — the mesh kernel exposes topology, not a general linear
// algebra surface, and adding one on spec would be unexercised surface
// with no caller.
type DenseMatrix struct {
	Rows, Cols int
	Data       []float64
}

// At returns the value at (row, col).
func (m *DenseMatrix) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

// set assigns the value at (row, col).
func (m *DenseMatrix) set(row, col int, v float64) {
	m.Data[row*m.Cols+col] = v
}

// AdjacencyMatrix builds the dense |faces| x |faces| adjacency matrix of
// fa's dual graph: 1 where two faces share a non-boundary edge, 0
// otherwise. The row/column order matches fa.Faces().
func (fa *FaceAdjacency) AdjacencyMatrix() *DenseMatrix {
	n := len(fa.faces)
	idx := make(map[mesh.FaceIndex]int, n)
	for i, f := range fa.faces {
		idx[f] = i
	}

	m := &DenseMatrix{Rows: n, Cols: n, Data: make([]float64, n*n)}
	for _, f := range fa.faces {
		i := idx[f]
		for n := range fa.adj[f] {
			m.set(i, idx[n], 1)
		}
	}

	return m
}

// IncidenceMatrix builds the dense |faces| x |shared edges| incidence
// matrix of fa's dual graph: each column is one pair of adjacent faces,
// with a 1 in the row of each of the two. Every pair contributes exactly
// one column, taken from the lower-offset face's side, so it is not
// double-counted from the neighbor's side.
func (fa *FaceAdjacency) IncidenceMatrix() *DenseMatrix {
	n := len(fa.faces)
	idx := make(map[mesh.FaceIndex]int, n)
	for i, f := range fa.faces {
		idx[f] = i
	}

	type column struct {
		a, b int
	}
	var cols []column
	for _, f := range fa.faces {
		for nb := range fa.adj[f] {
			if !f.Less(nb) {
				continue
			}
			cols = append(cols, column{a: idx[f], b: idx[nb]})
		}
	}

	m := &DenseMatrix{Rows: n, Cols: len(cols), Data: make([]float64, n*len(cols))}
	for c, col := range cols {
		m.set(col.a, c, 1)
		m.set(col.b, c, 1)
	}

	return m
}
