package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillpath/gridgraph"
	"github.com/katalvlaran/hillpath/heightmap"
)

// BenchmarkBuild measures Build on a random 200×200 height map.
// Complexity: O(W×H)
func BenchmarkBuild(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	grid, err := heightmap.Parse(randomGrid(rng, 200, 200, 25))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Build(grid)
	}
}

// BenchmarkReverse measures flipping the edges of a 200×200 graph.
func BenchmarkReverse(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	grid, err := heightmap.Parse(randomGrid(rng, 200, 200, 25))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	g := gridgraph.Build(grid)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reverse()
	}
}
