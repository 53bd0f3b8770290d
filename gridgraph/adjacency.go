package gridgraph

import "gonum.org/v1/gonum/mat"

// Adjacency returns the symmetric n×n weight matrix of the graph, n = H×W,
// indexed by row-major node index. The diagonal is zero; pixels that are not
// neighbours have zero entries.
// Complexity: O(n²) memory, O(n² + E) time.
func (gg *GridGraph) Adjacency() *mat.SymDense {
	n := gg.NodeCount()
	a := mat.NewSymDense(n, nil)
	for _, e := range gg.edges {
		a.SetSym(gg.Index(e.From), gg.Index(e.To), e.Weight)
	}

	return a
}
