package qubo_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/qubo"
)

// BenchmarkBuilders measures both strategies on a random 24×24 image.
// Complexity: O((H×W)²)
func BenchmarkBuilders(b *testing.B) {
	const n = 24
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
	w := gg.Adjacency()

	for _, bl := range []qubo.Builder{qubo.MaxCut{}, qubo.Degree{}} {
		b.Run(bl.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = bl.Build(w)
			}
		})
	}
}
