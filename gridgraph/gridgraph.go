// Package gridgraph provides utilities to treat a 2D grid of pixel
// intensities as a weighted graph. Pixel (row,col) is connected to
// (row-1,col) and (row,col-1) whenever those exist, so each lattice edge is
// produced exactly once by a single forward scan.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/qseg/internal/numeric"
)

// Pixel identifies a grid cell by row and column.
type Pixel struct {
	Row, Col int
}

// Edge is an undirected weighted connection between two neighbouring
// pixels. From is the pixel being scanned, To its upper or left neighbour.
type Edge struct {
	From, To Pixel
	Weight   float64
}

// GridGraph is an immutable weighted grid graph built from an image.
// Height and Width define dimensions; Intensities[row][col] holds a copy of
// the input. Edges are stored in scan-construction order.
type GridGraph struct {
	Height, Width int
	Intensities   [][]float64
	Sigma         float64
	edges         []Edge
	raw           []float64
}

// NewGridGraph builds the grid graph of a non-empty, rectangular image.
// It deep-copies the input, computes raw weights 1-similarity for every
// up/left neighbour pair in row-major order and normalizes them.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrSigma.
// Complexity: O(H×W) time and memory.
func NewGridGraph(values [][]float64, opts ...Option) (*GridGraph, error) {
	o := gatherOptions(opts...)
	if err := validateSigma(o.Sigma); err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]float64, w)
		copy(cells[r], values[r])
	}

	gg := &GridGraph{
		Height:      h,
		Width:       w,
		Intensities: cells,
		Sigma:       o.Sigma,
	}
	gg.buildEdges()

	return gg, nil
}

// buildEdges scans pixels in row-major order, linking each to the pixel
// above it and then to the pixel on its left.
func (gg *GridGraph) buildEdges() {
	n := gg.EdgeCount()
	gg.edges = make([]Edge, 0, n)
	gg.raw = make([]float64, 0, n)
	for i := 0; i < gg.Height*gg.Width; i++ {
		p := gg.Coordinate(i)
		v := gg.Intensities[p.Row][p.Col]
		if p.Row > 0 {
			up := Pixel{Row: p.Row - 1, Col: p.Col}
			gg.addEdge(p, up, 1-gaussian(v, gg.Intensities[up.Row][up.Col], gg.Sigma))
		}
		if p.Col > 0 {
			left := Pixel{Row: p.Row, Col: p.Col - 1}
			gg.addEdge(p, left, 1-gaussian(v, gg.Intensities[left.Row][left.Col], gg.Sigma))
		}
	}
	for i, w := range normalize(gg.raw) {
		gg.edges[i].Weight = w
	}
}

func (gg *GridGraph) addEdge(from, to Pixel, raw float64) {
	gg.edges = append(gg.edges, Edge{From: from, To: to})
	gg.raw = append(gg.raw, raw)
}

// normalize maps raw distances onto the final signed weights.
//
//   - spread weights: rescale to [normLow,normHigh], round, negate;
//   - all zero (uniform image): uniformWeight everywhere;
//   - all equal but non-zero: round and negate.
func normalize(raw []float64) []float64 {
	out := make([]float64, len(raw))
	if len(raw) == 0 {
		return out
	}
	minW, maxW := math.Inf(1), math.Inf(-1)
	for _, e := range raw {
		minW = math.Min(minW, e)
		maxW = math.Max(maxW, e)
	}

	switch {
	case maxW != minW:
		for i, e := range raw {
			scaled := (normHigh-normLow)*((e-minW)/(maxW-minW)) + normLow
			out[i] = -numeric.Round(scaled, weightPrecision)
		}
	case maxW == 0 && minW == 0:
		for i := range out {
			out[i] = uniformWeight
		}
	default:
		for i, e := range raw {
			out[i] = -numeric.Round(e, weightPrecision)
		}
	}
	for i := range out {
		if out[i] == 0 {
			out[i] = 0 // drop negative zero produced by negation
		}
	}

	return out
}

// Edges returns a copy of the normalized edges in scan-construction order.
// Complexity: O(E).
func (gg *GridGraph) Edges() []Edge {
	out := make([]Edge, len(gg.edges))
	copy(out, gg.edges)

	return out
}

// RawWeights returns a copy of the un-normalized 1-similarity weights,
// aligned with Edges.
func (gg *GridGraph) RawWeights() []float64 {
	out := make([]float64, len(gg.raw))
	copy(out, gg.raw)

	return out
}

// EdgeCount returns the lattice edge count H×(W-1) + W×(H-1).
// Complexity: O(1).
func (gg *GridGraph) EdgeCount() int {
	return gg.Height*(gg.Width-1) + gg.Width*(gg.Height-1)
}

// NodeCount returns H×W.
func (gg *GridGraph) NodeCount() int {
	return gg.Height * gg.Width
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Pixel) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Index maps a pixel to its row-major node index row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) Index(p Pixel) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row-major node index back to a pixel.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Pixel {
	return Pixel{Row: idx / gg.Width, Col: idx % gg.Width}
}
