package openclosed

import "math"

// List is a flat open/closed membership set over tile indices [0, Capacity).
// The zero value is not ready to use; construct with New.
type List struct {
	marks    []uint32
	marker   uint32
	capacity int
}

// New returns a List over capacity tile indices, all initially neither
// open nor closed.
func New(capacity int) *List {
	return &List{
		marks:    make([]uint32, capacity),
		marker:   1,
		capacity: capacity,
	}
}

// IsOpen reports whether index is currently open.
func (l *List) IsOpen(index int) bool {
	return l.marks[index] == l.marker
}

// IsClosed reports whether index is currently closed.
func (l *List) IsClosed(index int) bool {
	return l.marks[index] == l.marker+1
}

// Open marks index as open.
func (l *List) Open(index int) {
	l.marks[index] = l.marker
}

// Close marks index as closed. Closed tiles are never reopened within the
// same generation (spec §3 invariant 2).
func (l *List) Close(index int) {
	l.marks[index] = l.marker + 1
}

// Clear starts a new generation: every index is again neither open nor
// closed. Amortized O(1); only zeroes the backing array once every
// (2^32-2)/2 calls, on marker overflow.
func (l *List) Clear() {
	if l.marker >= math.MaxUint32-2 {
		for i := range l.marks {
			l.marks[i] = 0
		}
		l.marker = 1

		return
	}
	l.marker += 2
}
