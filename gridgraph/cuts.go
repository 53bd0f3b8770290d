package gridgraph

// CutEdges returns the edges whose endpoints carry different labels, in
// scan-construction order. labels must have the graph's shape; typically it
// is a decoded segmentation mask.
// Returns ErrLabelShape on a shape mismatch.
// Complexity: O(E).
func (gg *GridGraph) CutEdges(labels [][]int) ([]Edge, error) {
	if len(labels) != gg.Height {
		return nil, ErrLabelShape
	}
	for _, row := range labels {
		if len(row) != gg.Width {
			return nil, ErrLabelShape
		}
	}
	var cut []Edge
	for _, e := range gg.edges {
		if labels[e.From.Row][e.From.Col] != labels[e.To.Row][e.To.Col] {
			cut = append(cut, e)
		}
	}

	return cut, nil
}

// CutWeight sums the weights of the edges cut by labels.
func (gg *GridGraph) CutWeight(labels [][]int) (float64, error) {
	cut, err := gg.CutEdges(labels)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range cut {
		total += e.Weight
	}

	return total, nil
}
