package qubo

import "github.com/katalvlaran/qseg/gridgraph"

// FromGraph builds the model of a grid graph with strategy b. Variable i is
// the pixel with row-major index i.
func FromGraph(gg *gridgraph.GridGraph, b Builder) (*Model, error) {
	return b.Build(gg.Adjacency())
}
