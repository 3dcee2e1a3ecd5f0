package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// BenchmarkUnionFind performs n random unions followed by n random finds
// on one million elements.
// Complexity: O(n·α(n)).
func BenchmarkUnionFind(b *testing.B) {
	const n = 1_000_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf, _ := unionfind.New(n)
		for _, p := range pairs {
			uf.Union(p[0], p[1])
		}
		for _, p := range pairs {
			_ = uf.Find(p[0])
		}
	}
}
