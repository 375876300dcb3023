package heapidx_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/heapidx"
)

// BenchmarkHeapInsertPopMin measures the cost of filling a heap to capacity
// and draining it via PopMin, the access pattern a single Search call drives
// up to MaxOps times.
func BenchmarkHeapInsertPopMin(b *testing.B) {
	const numTiles = 64 * 2500
	r := rand.New(rand.NewSource(7))
	priorities := make([]uint32, numTiles)
	for i := range priorities {
		priorities[i] = uint32(r.Intn(1 << 20))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h := heapidx.New(numTiles, 4096)
		for i := 0; i < 4096; i++ {
			_ = h.Insert(i, priorities[i])
		}
		for !h.Empty() {
			h.PopMin()
		}
	}
}

// BenchmarkHeapUpdate measures the linear-scan Update path used whenever JPS
// finds a cheaper route to a tile already sitting in the open list.
func BenchmarkHeapUpdate(b *testing.B) {
	const capacity = 4096
	h := heapidx.New(capacity, capacity)
	for i := 0; i < capacity; i++ {
		_ = h.Insert(i, uint32(capacity-i))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h.Update(capacity/2, uint32(n%capacity))
	}
}
