// Package hedgekernel is a generation-checked half-edge mesh kernel.
//
// A mesh lives in four parallel arenas — points, vertices, half-edges and
// faces — each a generational slot table: removing an element invalidates
// every handle pointing at it without moving any other element's offset, so
// a handle taken before a removal either still resolves correctly
// afterward or fails cleanly, never silently aliases whatever element
// later reuses the freed slot.
//
// Repeated add/remove cycles leave arenas full of holes: inactive slots
// interleaved with the active elements either side of them still depend
// on. Defragment packs all four arenas back to front, rewriting every
// cross-reference a relocated element's neighbors hold.
//
// Subpackages:
//
//	arena/     — the generational slot arena and its compaction primitives
//	mesh/      — point/vertex/edge/face storage, traversal and defragmentation
//	builder/   — half-edge construction primitives and a regular-grid constructor
//	meshgraph/ — the face dual graph and graph algorithms over it
package hedgekernel
