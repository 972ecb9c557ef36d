package meshgraph_test

import (
	"testing"

	"github.com/photex-labs/hedgekernel/builder"
	"github.com/photex-labs/hedgekernel/mesh"
	"github.com/photex-labs/hedgekernel/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanningTreeConnectedGridHasNMinusOneEdges(t *testing.T) {
	k := mesh.NewKernel()
	_, faces, err := builder.NewGrid(k, 3, 4)
	require.NoError(t, err)

	fa, err := meshgraph.BuildFaceAdjacency(k)
	require.NoError(t, err)

	forest := meshgraph.SpanningTree(fa, meshgraph.UnitWeight)
	assert.Len(t, forest, len(faces)-1)

	for _, e := range forest {
		assert.False(t, k.Edge(e).IsBoundary())
	}
}

func TestSpanningTreeOfDisjointGridsIsAForest(t *testing.T) {
	k := mesh.NewKernel()
	_, facesA, err := builder.NewGrid(k, 2, 2)
	require.NoError(t, err)
	_, facesB, err := builder.NewGrid(k, 1, 3, builder.WithOrigin(mesh.Position{50, 50, 0}))
	require.NoError(t, err)

	fa, err := meshgraph.BuildFaceAdjacency(k)
	require.NoError(t, err)

	forest := meshgraph.SpanningTree(fa, meshgraph.UnitWeight)
	wantEdges := (len(facesA) - 1) + (len(facesB) - 1)
	assert.Len(t, forest, wantEdges)
}
