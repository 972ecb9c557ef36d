package meshgraph_test

import (
	"testing"

	"github.com/photex-labs/hedgekernel/builder"
	"github.com/photex-labs/hedgekernel/mesh"
	"github.com/photex-labs/hedgekernel/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachableCoversEntireConnectedGrid(t *testing.T) {
	k := mesh.NewKernel()
	_, faces, err := builder.NewGrid(k, 2, 2)
	require.NoError(t, err)

	fa, err := meshgraph.BuildFaceAdjacency(k)
	require.NoError(t, err)

	reached := meshgraph.Reachable(fa, faces[0])
	assert.Len(t, reached, len(faces))
	for _, f := range faces {
		assert.True(t, reached[f])
	}
}

func TestReachableFromUnknownFaceIsEmpty(t *testing.T) {
	k := mesh.NewKernel()
	_, _, err := builder.NewGrid(k, 1, 1)
	require.NoError(t, err)

	fa, err := meshgraph.BuildFaceAdjacency(k)
	require.NoError(t, err)

	var unknown mesh.FaceIndex
	reached := meshgraph.Reachable(fa, unknown)
	assert.Empty(t, reached)
}

func TestReachableDoesNotCrossComponents(t *testing.T) {
	k := mesh.NewKernel()
	_, facesA, err := builder.NewGrid(k, 1, 1)
	require.NoError(t, err)
	_, facesB, err := builder.NewGrid(k, 1, 1, builder.WithOrigin(mesh.Position{50, 50, 0}))
	require.NoError(t, err)

	fa, err := meshgraph.BuildFaceAdjacency(k)
	require.NoError(t, err)

	reached := meshgraph.Reachable(fa, facesA[0])
	assert.True(t, reached[facesA[0]])
	assert.False(t, reached[facesB[0]])
}
