package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qseg/gridgraph"
)

// BenchmarkNewGridGraph measures construction on a random 256×256 image.
// Complexity: O(H×W)
func BenchmarkNewGridGraph(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	img := make([][]float64, n)
	for r := range img {
		img[r] = make([]float64, n)
		for c := range img[r] {
			img[r][c] = rng.Float64()
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.NewGridGraph(img)
	}
}

// BenchmarkAdjacency measures dense adjacency export on a 32×32 image.
// Complexity: O((H×W)²)
func BenchmarkAdjacency(b *testing.B) {
	const n = 32
	rng := rand.New(rand.NewSource(42))
	img := make([][]float64, n)
	for r := range img {
		img[r] = make([]float64, n)
		for c := range img[r] {
			img[r][c] = rng.Float64()
		}
	}
	gg, err := gridgraph.NewGridGraph(img)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Adjacency()
	}
}
