package heapidx

import "errors"

// ErrOverflow indicates Insert was called with the heap already at
// capacity. Spec §3 invariant 6 treats this as a fatal search error; under
// MaxRooms=64 it cannot occur in a correctly driven search and signals a
// bug upstream if it ever does.
var ErrOverflow = errors.New("heapidx: heap is at capacity")

// Heap is an indexed binary min-heap over tile indices, keyed by a
// caller-assigned priority. The zero value is not ready to use; construct
// with New.
type Heap struct {
	priorities []uint32 // priorities[tileIndex] = current priority
	slots      []int    // 1-indexed: slots[1..size] = tile indices
	size       int
}

// New returns a Heap over tile indices in [0, numTiles), with room for up
// to capacity simultaneously-open entries.
func New(numTiles, capacity int) *Heap {
	return &Heap{
		priorities: make([]uint32, numTiles),
		slots:      make([]int, capacity+1), // slots[0] unused
	}
}

// Len returns the number of entries currently in the heap.
func (h *Heap) Len() int {
	return h.size
}

// Empty reports whether the heap has no entries.
func (h *Heap) Empty() bool {
	return h.size == 0
}

// Priority returns the last priority assigned to tile index i via Insert or
// Update. The result is meaningless if i was never inserted.
func (h *Heap) Priority(i int) uint32 {
	return h.priorities[i]
}

// Insert adds tile index i to the heap with the given priority. i must not
// already be present; use Update for that. Returns ErrOverflow if the heap
// is already at capacity.
func (h *Heap) Insert(i int, priority uint32) error {
	if h.size == len(h.slots)-1 {
		return ErrOverflow
	}
	h.priorities[i] = priority
	h.size++
	h.slots[h.size] = i
	h.bubbleUp(h.size)

	return nil
}

// Update overwrites the priority of tile index i, which must already be
// present in the heap, and bubbles it up. This restores the heap invariant
// for a decrease; a raised priority is not sifted down. Locating i's slot
// is a linear scan over the current heap contents (see doc.go).
func (h *Heap) Update(i int, priority uint32) {
	for k := h.size; k >= 1; k-- {
		if h.slots[k] == i {
			h.priorities[i] = priority
			h.bubbleUp(k)

			return
		}
	}
}

// PopMin removes and returns the tile index with the smallest priority,
// along with that priority.
func (h *Heap) PopMin() (index int, priority uint32) {
	index = h.slots[1]
	priority = h.priorities[index]

	h.slots[1] = h.slots[h.size]
	h.size--

	v := 1
	for {
		u := v
		left, right := u<<1, u<<1+1
		if right <= h.size {
			if h.priorities[h.slots[u]] >= h.priorities[h.slots[left]] {
				v = left
			}
			if h.priorities[h.slots[v]] >= h.priorities[h.slots[right]] {
				v = right
			}
		} else if left <= h.size {
			if h.priorities[h.slots[u]] >= h.priorities[h.slots[left]] {
				v = left
			}
		}
		if u == v {
			break
		}
		h.slots[u], h.slots[v] = h.slots[v], h.slots[u]
	}

	return index, priority
}

// Clear empties the heap. Previously recorded priorities are left in place
// and are overwritten the next time their tile index is inserted.
func (h *Heap) Clear() {
	h.size = 0
}

func (h *Heap) bubbleUp(k int) {
	for k != 1 {
		parent := k >> 1
		if h.priorities[h.slots[k]] <= h.priorities[h.slots[parent]] {
			h.slots[k], h.slots[parent] = h.slots[parent], h.slots[k]
			k = parent
		} else {
			return
		}
	}
}
