package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foo struct {
	val int
}

func TestHandleDefaultIsInvalid(t *testing.T) {
	var h Handle[foo]
	assert.False(t, h.IsValid())
}

func TestZeroValueArenaHasNonNegativeLenAndIsEmpty(t *testing.T) {
	var a Arena[foo]

	assert.Equal(t, 0, a.Len())
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 1, a.Capacity()) // sentinel only
}

func TestPushAndGet(t *testing.T) {
	var a Arena[foo]

	h1 := a.Push(foo{val: 1})
	h2 := a.Push(foo{val: 2})

	assert.Equal(t, Offset(1), h1.Offset)
	assert.Equal(t, Offset(2), h2.Offset)
	assert.Equal(t, Generation(1), h1.Generation)
	assert.Equal(t, Generation(1), h2.Generation)

	v1, ok := a.Get(h1)
	require.True(t, ok)
	assert.Equal(t, 1, v1.val)

	v2, ok := a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, 2, v2.val)

	assert.Equal(t, 2, a.Len())
}

func TestGetRejectsInvalidHandle(t *testing.T) {
	var a Arena[foo]
	a.Push(foo{val: 1})

	_, ok := a.Get(Handle[foo]{})
	assert.False(t, ok)
}

func TestRemoveHidesElementAndBumpsGeneration(t *testing.T) {
	var a Arena[foo]
	h := a.Push(foo{val: 1})

	a.Remove(h)

	_, ok := a.Get(h)
	assert.False(t, ok)
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.HasInactiveCells())
	assert.Equal(t, Generation(2), a.generations[h.Offset])
}

func TestRemoveIsIdempotent(t *testing.T) {
	var a Arena[foo]
	h := a.Push(foo{val: 1})

	a.Remove(h)
	a.Remove(h) // must not panic or double-free

	_, ok := a.Get(h)
	assert.False(t, ok)
}

func TestPushReusesFreedSlotAtBumpedGeneration(t *testing.T) {
	var a Arena[foo]
	h1 := a.Push(foo{val: 1})
	a.Remove(h1)

	h2 := a.Push(foo{val: 2})

	assert.Equal(t, h1.Offset, h2.Offset)
	assert.Equal(t, Generation(2), h2.Generation)

	// The stale handle must not resolve to the new occupant.
	_, ok := a.Get(h1)
	assert.False(t, ok)

	v2, ok := a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, 2, v2.val)
}

func TestGenerationWrapsToOneNotZero(t *testing.T) {
	var a Arena[foo]
	h := a.Push(foo{val: 1})

	// Force the generation counter to the brink of overflow.
	a.generations[h.Offset] = ^Generation(0) // max uint32
	h.Generation = ^Generation(0)            // keep h current so Remove acts on it

	a.Remove(h)
	h2 := a.Push(foo{val: 2})

	assert.Equal(t, Generation(1), h2.Generation)
}

func TestAllVisitsOnlyActiveInAscendingOrder(t *testing.T) {
	var a Arena[foo]
	h1 := a.Push(foo{val: 1})
	h2 := a.Push(foo{val: 2})
	h3 := a.Push(foo{val: 3})
	a.Remove(h2)

	var seen []int
	a.All(func(h Handle[foo], v *foo) bool {
		seen = append(seen, v.val)
		return true
	})

	assert.Equal(t, []int{1, 3}, seen)
	assert.NotEqual(t, h2.Offset, 0) // sanity: h2 was a real handle
	_ = h1
	_ = h3
}

func TestAllStopsEarly(t *testing.T) {
	var a Arena[foo]
	a.Push(foo{val: 1})
	a.Push(foo{val: 2})
	a.Push(foo{val: 3})

	count := 0
	a.All(func(h Handle[foo], v *foo) bool {
		count++
		return count < 2
	})

	assert.Equal(t, 2, count)
}

func TestRectifyPlanBasics(t *testing.T) {
	// Mirrors the source's rectify_plan_basics scenario: 5 pushes, remove
	// the 2nd and 5th, expect a single pair moving the 4th into the 2nd.
	var a Arena[foo]
	h := make([]Handle[foo], 5)
	for i := range h {
		h[i] = a.Push(foo{val: i})
	}

	a.Remove(h[1])
	a.Remove(h[4])

	plan := a.BuildRectifyPlan()
	require.Len(t, plan, 1)
	assert.Equal(t, h[1].Offset, plan[0].FreeOffset)
	assert.Equal(t, h[3].Offset, plan[0].ActiveOffset)
}

func TestRectifyPlanEmptyAfterClear(t *testing.T) {
	var a Arena[foo]
	a.Push(foo{val: 1})
	a.Clear()

	plan := a.BuildRectifyPlan()
	assert.Empty(t, plan)
}

func TestRectifyPlanPairsFreeBeforeActive(t *testing.T) {
	var a Arena[foo]
	h1 := a.Push(foo{val: 1})
	h2 := a.Push(foo{val: 2})
	a.Push(foo{val: 3})

	a.Remove(h2)
	_ = h1

	// Only one free slot and it already precedes every active slot but
	// one; rebuild to confirm the single resulting pair is well-formed.
	plan := a.BuildRectifyPlan()
	for _, p := range plan {
		assert.Less(t, p.FreeOffset, p.ActiveOffset)
	}
}

func TestApplyRectifyPlanPacksAndTruncates(t *testing.T) {
	var a Arena[foo]
	h := make([]Handle[foo], 5)
	for i := range h {
		h[i] = a.Push(foo{val: i})
	}
	a.Remove(h[1])
	a.Remove(h[4])

	plan := a.BuildRectifyPlan()
	a.ApplyRectifyPlan(plan)

	assert.False(t, a.HasInactiveCells())
	assert.Equal(t, 3, a.Len())

	var seen []int
	a.All(func(h Handle[foo], v *foo) bool {
		seen = append(seen, v.val)
		return true
	})
	assert.ElementsMatch(t, []int{0, 2, 3}, seen)
}

func TestNextSwapPairStopsWhenPacked(t *testing.T) {
	var a Arena[foo]
	a.Push(foo{val: 1})
	a.Push(foo{val: 2})

	_, _, ok := a.NextSwapPair()
	assert.False(t, ok)
}

func TestNextSwapPairFindsFreeAndActiveEnds(t *testing.T) {
	var a Arena[foo]
	h1 := a.Push(foo{val: 1})
	a.Push(foo{val: 2})
	a.Push(foo{val: 3})

	a.Remove(h1)

	inactive, active, ok := a.NextSwapPair()
	require.True(t, ok)
	assert.Equal(t, h1.Offset, inactive)
	assert.Equal(t, Offset(3), active)
}

func TestSortActiveFirstPreservesRelativeOrder(t *testing.T) {
	var a Arena[foo]
	h1 := a.Push(foo{val: 1})
	a.Push(foo{val: 2})
	h3 := a.Push(foo{val: 3})
	a.Push(foo{val: 4})

	a.Remove(h1)
	a.Remove(h3)

	a.SortActiveFirst()

	var seen []int
	a.All(func(h Handle[foo], v *foo) bool {
		seen = append(seen, v.val)
		return true
	})
	assert.Equal(t, []int{2, 4}, seen)
}
