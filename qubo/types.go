package qubo

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Vartype is the variable domain of a model.
type Vartype int

const (
	// Binary variables take values in {0,1}.
	Binary Vartype = iota
	// Spin variables take values in {-1,+1}.
	Spin
)

func (v Vartype) String() string {
	switch v {
	case Binary:
		return "BINARY"
	case Spin:
		return "SPIN"
	default:
		return fmt.Sprintf("Vartype(%d)", int(v))
	}
}

// ParseVartype is the inverse of Vartype.String.
func ParseVartype(s string) (Vartype, error) {
	switch s {
	case "BINARY":
		return Binary, nil
	case "SPIN":
		return Spin, nil
	default:
		return 0, fmt.Errorf("qubo: unknown vartype %q", s)
	}
}

// Pair is an unordered variable pair stored with I < J.
type Pair struct {
	I, J int
}

// NewPair orders i and j so that I < J.
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Model is a binary quadratic model: linear biases per variable index,
// couplings per Pair, a constant offset and the variable domain.
type Model struct {
	Linear    map[int]float64
	Quadratic map[Pair]float64
	Offset    float64
	Vartype   Vartype
}

// NewModel wraps the coefficient mappings into a validated Model.
func NewModel(linear map[int]float64, quadratic map[Pair]float64, offset float64, vt Vartype) (*Model, error) {
	if linear == nil {
		linear = map[int]float64{}
	}
	if quadratic == nil {
		quadratic = map[Pair]float64{}
	}
	m := &Model{Linear: linear, Quadratic: quadratic, Offset: offset, Vartype: vt}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// NumVariables returns 1 + the largest variable index referenced, i.e. the
// length an assignment must have to cover the model.
func (m *Model) NumVariables() int {
	n := 0
	for i := range m.Linear {
		n = max(n, i+1)
	}
	for p := range m.Quadratic {
		n = max(n, p.J+1)
	}

	return n
}

// Variables returns the linear variable indices in ascending order.
func (m *Model) Variables() []int {
	vs := lo.Keys(m.Linear)
	sort.Ints(vs)

	return vs
}

// Pairs returns the quadratic keys ordered by (I, J).
func (m *Model) Pairs() []Pair {
	ps := lo.Keys(m.Quadratic)
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].I != ps[b].I {
			return ps[a].I < ps[b].I
		}
		return ps[a].J < ps[b].J
	})

	return ps
}

// Energy evaluates the model for assignment x, indexed by variable.
// Returns ErrSampleLength if x is shorter than NumVariables.
// Complexity: O(|linear| + |quadratic|).
func (m *Model) Energy(x []int) (float64, error) {
	if len(x) < m.NumVariables() {
		return 0, fmt.Errorf("Energy: len %d < %d: %w", len(x), m.NumVariables(), ErrSampleLength)
	}
	e := m.Offset
	for i, b := range m.Linear {
		e += b * float64(x[i])
	}
	for p, c := range m.Quadratic {
		e += c * float64(x[p.I]) * float64(x[p.J])
	}

	return e, nil
}
