package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHandlesAreInvalid(t *testing.T) {
	var p PointIndex
	var v VertexIndex
	var e EdgeIndex
	var f FaceIndex

	assert.False(t, p.IsValid())
	assert.False(t, v.IsValid())
	assert.False(t, e.IsValid())
	assert.False(t, f.IsValid())
}

func TestFreshKernelHasZeroCounts(t *testing.T) {
	k := NewKernel()

	assert.Equal(t, 0, k.PointCount())
	assert.Equal(t, 0, k.VertexCount())
	assert.Equal(t, 0, k.EdgeCount())
	assert.Equal(t, 0, k.FaceCount())
	assert.Equal(t, 0, k.ActiveElementCount())
	assert.Equal(t, 0, k.InactiveElementCount())
}

func TestAddGetRemovePoint(t *testing.T) {
	k := NewKernel()

	h := k.AddPoint(PointData{Position: Position{1, 2, 3}})
	data, ok := k.GetPoint(h)
	require.True(t, ok)
	assert.Equal(t, Position{1, 2, 3}, data.Position)
	assert.Equal(t, 1, k.PointCount())

	k.RemovePoint(h)
	_, ok = k.GetPoint(h)
	assert.False(t, ok)
	assert.Equal(t, 0, k.PointCount())

	// Idempotent.
	k.RemovePoint(h)
}

func TestAddGetRemoveEdge(t *testing.T) {
	k := NewKernel()

	h := k.AddEdge(HalfEdgeData{})
	_, ok := k.GetEdge(h)
	require.True(t, ok)
	assert.Equal(t, 1, k.EdgeCount())

	k.RemoveEdge(h)
	_, ok = k.GetEdge(h)
	assert.False(t, ok)
}

func TestNextTagIsMonotonicAndNeverZero(t *testing.T) {
	k := NewKernel()

	a := k.NextTag()
	b := k.NextTag()

	assert.NotZero(t, a)
	assert.NotZero(t, b)
	assert.NotEqual(t, a, b)
	assert.Greater(t, b, a)
}

func TestSetAndGetEdgeTag(t *testing.T) {
	k := NewKernel()
	h := k.AddEdge(HalfEdgeData{})

	k.SetEdgeTag(h, 42)
	assert.Equal(t, uint32(42), k.EdgeTag(h))
}

func TestInactiveElementCountReflectsRemovals(t *testing.T) {
	k := NewKernel()
	h1 := k.AddFace(FaceData{})
	k.AddFace(FaceData{})

	assert.Equal(t, 0, k.InactiveElementCount())

	k.RemoveFace(h1)
	assert.Equal(t, 1, k.InactiveElementCount())
}
