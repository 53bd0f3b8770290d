package mask

// offsets4 lists the orthogonal neighbours N, E, S, W as (dRow, dCol).
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Region is a 4-connected set of cells sharing one label.
type Region struct {
	Label int
	Cells []int // row-major indices, in discovery order
}

// Regions finds all 4-connected regions of equal label. Regions are
// reported in the row-major order of their first cell.
// Returns ErrRagged if rows differ in length.
//
// Time:   O(H·W).
// Memory: O(H·W) for visited flags and output.
func Regions(m [][]int) ([]Region, error) {
	if _, err := Flatten(m); err != nil {
		return nil, err
	}
	h := len(m)
	if h == 0 {
		return nil, nil
	}
	w := len(m[0])
	seen := make([]bool, h*w)
	var regions []Region

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			i0 := r*w + c
			if seen[i0] {
				continue
			}
			label := m[r][c]
			// BFS over same-label neighbours
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ur, uc := u/w, u%w
				for _, d := range offsets4 {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= h || vc < 0 || vc >= w || m[vr][vc] != label {
						continue
					}
					vi := vr*w + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, Region{Label: label, Cells: queue})
		}
	}

	return regions, nil
}
