package nav

import "github.com/udisondev/gridnav/internal/model"

// noParent marks the search root.
const noParent int32 = -1

// node is one transient A* search node. Nodes live only inside a single
// search call and are immutable once allocated.
type node struct {
	pos    model.Position
	parent int32 // arena index of the predecessor, noParent for the root
	gCost  float64
	hCost  float64
	fCost  float64
	seq    int32 // insertion order, final tie-break for determinism
}

// nodeArena is an index-based node pool cleared wholesale per search.
// Avoids per-node heap allocation churn; back-pointers are arena indices
// rather than pointers, so growth never invalidates the parent chain.
type nodeArena struct {
	nodes []node
}

func (a *nodeArena) reset() {
	a.nodes = a.nodes[:0]
}

func (a *nodeArena) alloc(pos model.Position, parent int32, gCost, hCost float64) int32 {
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, node{
		pos:    pos,
		parent: parent,
		gCost:  gCost,
		hCost:  hCost,
		fCost:  gCost + hCost,
		seq:    idx,
	})
	return idx
}

func (a *nodeArena) at(idx int32) *node {
	return &a.nodes[idx]
}

// openHeap implements container/heap over arena indices (min-heap by
// fCost, ties broken by lower hCost — prefers nodes nearer the straight
// line to the goal — then by insertion order for reproducible results).
type openHeap struct {
	arena *nodeArena
	items []int32
}

func (h *openHeap) Len() int { return len(h.items) }

func (h *openHeap) Less(i, j int) bool {
	a := h.arena.at(h.items[i])
	b := h.arena.at(h.items[j])
	if a.fCost != b.fCost {
		return a.fCost < b.fCost
	}
	if a.hCost != b.hCost {
		return a.hCost < b.hCost
	}
	return a.seq < b.seq
}

func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *openHeap) Push(x any) {
	h.items = append(h.items, x.(int32))
}

func (h *openHeap) Pop() any {
	old := h.items
	n := len(old)
	idx := old[n-1]
	h.items = old[:n-1]
	return idx
}
