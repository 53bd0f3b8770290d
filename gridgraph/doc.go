// Package gridgraph treats a 2D grayscale image as a weighted grid graph,
// the first stage of Minimum-Cut image segmentation.
//
// What:
//
//   - GaussianSimilarity scores two pixel intensities in (0,1].
//   - NewGridGraph connects every pixel to its upper and left neighbour
//     (4-connectivity, each edge recorded once) in row-major scan order.
//   - Raw weights 1-similarity are normalized to [-1,1] and negated, so
//     dissimilar neighbours end up with strongly negative weights.
//   - Adjacency exports the symmetric weight matrix consumed by qubo.
//   - CutEdges lists the edges separating two labels of a segmentation.
//
// Why:
//
//   - Cutting the most negative edges of the graph separates regions of
//     differing intensity; the cut itself is found by an annealer.
//
// Complexity:
//
//   - NewGridGraph: O(H×W) time and memory.
//   - Adjacency:    O((H×W)²) memory (dense symmetric matrix).
//   - CutEdges:     O(E).
//
// Options:
//
//   - WithSigma: spread of the Gaussian similarity (default 0.5).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrLabelShape: wrap qseg.ErrShape.
//   - ErrSigma: wraps qseg.ErrDomain.
package gridgraph
