package arena

// Arena is a generational slot store for values of type T. Slot 0 is a
// permanent sentinel and is never returned by Push. Removed slots are
// recycled by later Push calls, reusing the offset but bumping its
// generation so handles taken before the removal stop resolving.
//
// The zero value of Arena is ready to use.
type Arena[T any] struct {
	slots       []T
	generations []Generation
	active      []bool
	free        []Offset // LIFO stack of reusable offsets
}

// ensureSentinel lazily initializes slot 0 on first use, so the zero value
// of Arena needs no constructor.
func (a *Arena[T]) ensureSentinel() {
	if len(a.slots) == 0 {
		var zero T
		a.slots = append(a.slots, zero)
		a.generations = append(a.generations, 0)
		a.active = append(a.active, false)
	}
}

// Push stores value and returns a handle to it. If a removed slot is
// available it is reused (its generation was already bumped on removal);
// otherwise the arena grows by one slot with generation 1.
func (a *Arena[T]) Push(value T) Handle[T] {
	a.ensureSentinel()

	if n := len(a.free); n > 0 {
		off := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[off] = value
		a.active[off] = true

		return Handle[T]{Offset: off, Generation: a.generations[off]}
	}

	off := Offset(len(a.slots))
	a.slots = append(a.slots, value)
	a.generations = append(a.generations, 1)
	a.active = append(a.active, true)

	return Handle[T]{Offset: off, Generation: 1}
}

// Get resolves h to its value. It fails if h is invalid, the slot is not
// currently active, or the slot's generation no longer matches h's —
// i.e. the slot was removed and possibly reused since h was taken.
func (a *Arena[T]) Get(h Handle[T]) (*T, bool) {
	if !h.IsValid() || int(h.Offset) >= len(a.slots) {
		return nil, false
	}
	if !a.active[h.Offset] {
		return nil, false
	}
	if a.generations[h.Offset] != h.Generation {
		return nil, false
	}

	return &a.slots[h.Offset], true
}

// GetByOffset resolves an offset to its value without checking generation:
// it reaches a slot by its current physical position regardless of which
// generation currently occupies it, and fails only for the sentinel, an
// out-of-range offset, or an inactive slot. Kernel.Defragment does not use
// it; the mesh phases resolve slots through Get and HandleAt.
func (a *Arena[T]) GetByOffset(off Offset) (*T, bool) {
	if off == invalidOffset || int(off) >= len(a.slots) || !a.active[off] {
		return nil, false
	}

	return &a.slots[off], true
}

// HandleAt builds the current, correctly-generationed handle for an active
// offset. It panics if the offset is not active; callers are expected to
// have already checked via GetByOffset or All.
func (a *Arena[T]) HandleAt(off Offset) Handle[T] {
	if !a.active[off] {
		panic("arena: HandleAt on inactive offset")
	}

	return Handle[T]{Offset: off, Generation: a.generations[off]}
}

// Remove deactivates the slot h addresses and marks it free for reuse. It
// is idempotent: removing an already-invalid, already-inactive, or
// stale handle is a no-op rather than an error. Generation wraps to 1 on
// overflow, never to 0, so the sentinel meaning of generation 0 is never
// reintroduced into a real slot.
func (a *Arena[T]) Remove(h Handle[T]) {
	if _, ok := a.Get(h); !ok {
		return
	}

	off := h.Offset
	a.active[off] = false
	var zero T
	a.slots[off] = zero

	next := a.generations[off] + 1
	if next == 0 {
		next = 1
	}
	a.generations[off] = next
	a.free = append(a.free, off)
}

// Len returns the number of currently active elements.
func (a *Arena[T]) Len() int {
	a.ensureSentinel()

	return len(a.slots) - len(a.free) - 1 // exclude the sentinel
}

// IsEmpty reports whether the arena holds no active elements.
func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}

// HasInactiveCells reports whether any slot is currently free, i.e.
// whether a defragmentation pass would have anything to do.
func (a *Arena[T]) HasInactiveCells() bool {
	return len(a.free) > 0
}

// Capacity returns the number of slots allocated, including the sentinel
// and any currently-free slots.
func (a *Arena[T]) Capacity() int {
	a.ensureSentinel()

	return len(a.slots)
}

// Clear empties the arena back to its initial state.
func (a *Arena[T]) Clear() {
	a.slots = nil
	a.generations = nil
	a.active = nil
	a.free = nil
}

// All visits every active element in ascending offset order, yielding its
// current handle (with its real generation, not a wildcard) and a pointer
// to its value. Iteration stops early if visit returns false.
func (a *Arena[T]) All(visit func(Handle[T], *T) bool) {
	for off := Offset(1); int(off) < len(a.slots); off++ {
		if !a.active[off] {
			continue
		}
		if !visit(a.HandleAt(off), &a.slots[off]) {
			return
		}
	}
}

// RectifyPair is one (freeOffset, activeOffset) step of a rectify plan: the
// element currently at activeOffset should move to freeOffset.
type RectifyPair struct {
	FreeOffset   Offset
	ActiveOffset Offset
}

// BuildRectifyPlan computes the sequence of swaps that would pack every
// active slot into the lowest contiguous range of offsets, without
// performing any of them. Free offsets are walked ascending, active
// offsets descending, in lockstep; pairing stops as soon as a free offset
// would no longer precede the active offset it might receive, since at
// that point the arena is already as packed as it can get.
func (a *Arena[T]) BuildRectifyPlan() []RectifyPair {
	if len(a.slots) == 0 {
		return nil
	}

	var freeAsc []Offset
	for _, off := range a.free {
		freeAsc = append(freeAsc, off)
	}
	sortOffsets(freeAsc)

	var activeDesc []Offset
	for off := Offset(len(a.slots) - 1); off >= 1; off-- {
		if a.active[off] {
			activeDesc = append(activeDesc, off)
		}
		if off == 0 {
			break
		}
	}

	var plan []RectifyPair
	for i := 0; i < len(freeAsc) && i < len(activeDesc); i++ {
		f, act := freeAsc[i], activeDesc[i]
		if !(f < act) {
			break
		}
		plan = append(plan, RectifyPair{FreeOffset: f, ActiveOffset: act})
	}

	return plan
}

// ApplyRectifyPlan performs the swaps a rectify plan describes, moving each
// active element down into the corresponding free slot, then truncates the
// arena to its now-contiguous active range. It does not rewrite any
// external cross-references into this arena; callers whose elements are
// referenced from other arenas must use Kernel.Defragment instead, which
// performs the equivalent rewrite per element kind.
func (a *Arena[T]) ApplyRectifyPlan(plan []RectifyPair) {
	for _, pair := range plan {
		a.slots[pair.FreeOffset] = a.slots[pair.ActiveOffset]
		a.generations[pair.FreeOffset] = a.generations[pair.ActiveOffset]
		a.active[pair.FreeOffset] = true
		a.active[pair.ActiveOffset] = false
		var zero T
		a.slots[pair.ActiveOffset] = zero
	}
	a.truncateInactive()
}

// truncateInactive drops every trailing inactive slot and clears the free
// list, assuming the caller has already packed all active slots to the
// front of the buffer.
func (a *Arena[T]) truncateInactive() {
	last := len(a.slots) - 1
	for last > 0 && !a.active[last] {
		last--
	}
	a.slots = a.slots[:last+1]
	a.generations = a.generations[:last+1]
	a.active = a.active[:last+1]
	a.free = a.free[:0]
}

// NextSwapPair locates the next step of an incremental in-place
// defragmentation for arenas that cannot simply be sorted (because their
// elements are referenced by offset from other arenas and every swap must
// be followed by a targeted cross-reference rewrite). It returns the
// lowest inactive offset and the highest active offset; if the highest
// active offset is already lower than the lowest inactive one, the arena
// is already packed and ok is false.
func (a *Arena[T]) NextSwapPair() (inactive, active Offset, ok bool) {
	lowInactive := Offset(0)
	found := false
	for off := Offset(1); int(off) < len(a.slots); off++ {
		if !a.active[off] {
			lowInactive = off
			found = true
			break
		}
	}
	if !found {
		return 0, 0, false
	}

	highActive := Offset(0)
	found = false
	for off := Offset(len(a.slots) - 1); off >= 1; off-- {
		if a.active[off] {
			highActive = off
			found = true
			break
		}
	}
	if !found || highActive < lowInactive {
		return 0, 0, false
	}

	return lowInactive, highActive, true
}

// SwapOffsets exchanges the entire contents of two slots — value,
// generation, and active flag together — so that an element's generation
// travels with it to its new offset.
func (a *Arena[T]) SwapOffsets(x, y Offset) {
	a.slots[x], a.slots[y] = a.slots[y], a.slots[x]
	a.generations[x], a.generations[y] = a.generations[y], a.generations[x]
	a.active[x], a.active[y] = a.active[y], a.active[x]
}

// TruncateInactive drops every trailing inactive slot and clears the free
// list. Callers that have just driven NextSwapPair/SwapOffsets to
// completion use this to finish a defragmentation pass.
func (a *Arena[T]) TruncateInactive() {
	a.truncateInactive()
}

// SortActiveFirst stably partitions active slots before inactive ones,
// preserving the relative order within each group. It leaves the free list
// untouched, so callers follow it with TruncateInactive. It is the
// "sortable in place" strategy used by element kinds with no
// self-referential cross-references to rewrite afterward.
func (a *Arena[T]) SortActiveFirst() {
	if len(a.slots) <= 1 {
		return
	}

	type slot struct {
		value T
		gen   Generation
	}
	rest := make([]slot, 0, len(a.slots)-1)
	for off := Offset(1); int(off) < len(a.slots); off++ {
		rest = append(rest, slot{value: a.slots[off], gen: a.generations[off]})
	}

	activeSlots := make([]slot, 0, len(rest))
	inactiveSlots := make([]slot, 0, len(rest))
	for i, off := 0, Offset(1); int(off) < len(a.slots); i, off = i+1, off+1 {
		if a.active[off] {
			activeSlots = append(activeSlots, rest[i])
		} else {
			inactiveSlots = append(inactiveSlots, rest[i])
		}
	}

	i := 1
	for _, s := range activeSlots {
		a.slots[i] = s.value
		a.generations[i] = s.gen
		a.active[i] = true
		i++
	}
	for _, s := range inactiveSlots {
		var zero T
		a.slots[i] = zero
		a.generations[i] = s.gen
		a.active[i] = false
		i++
	}
}

// sortOffsets sorts a slice of offsets ascending; small enough in practice
// (bounded by the number of free slots) that an insertion sort avoids
// pulling in sort.Slice for a handful of elements.
func sortOffsets(s []Offset) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
