package openclosed_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/openclosed"
)

// BenchmarkOpenCloseClearCycle measures one search's worth of Open/Close
// churn over a room-sized tile range followed by the Clear a fresh Search
// call issues before reusing the same List.
func BenchmarkOpenCloseClearCycle(b *testing.B) {
	const numTiles = 2500
	l := openclosed.New(numTiles)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < numTiles; i++ {
			l.Open(i)
		}
		for i := 0; i < numTiles; i++ {
			l.Close(i)
		}
		l.Clear()
	}
}
