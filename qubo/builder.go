package qubo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qseg/internal/numeric"
)

// Formulation names accepted by NewBuilder.
const (
	FormulationMaxCut = "maxcut"
	FormulationDegree = "degree"

	// DefaultFormulation is used when no formulation is configured.
	DefaultFormulation = FormulationMaxCut
)

// linearPrecision is the rounding applied to Max-Cut linear coefficients.
const linearPrecision = 2

// Builder converts a symmetric weight matrix W (zero diagonal) into a BINARY
// model with zero offset.
type Builder interface {
	Build(w mat.Symmetric) (*Model, error)
	Name() string
}

// NewBuilder returns the strategy registered under name.
func NewBuilder(name string) (Builder, error) {
	switch name {
	case FormulationMaxCut, "":
		return MaxCut{}, nil
	case FormulationDegree:
		return Degree{}, nil
	default:
		return nil, fmt.Errorf("NewBuilder(%q): %w", name, ErrUnknownFormulation)
	}
}

// MaxCut derives coefficients from the Max-Cut quadratic program of w = -W.
type MaxCut struct{}

// Name implements Builder.
func (MaxCut) Name() string { return FormulationMaxCut }

// Build implements Builder.
// The program maximizes Σ_{i<j} w_ij (x_i + x_j - 2·x_i·x_j); minimizing the
// negated objective yields linear[i] = -round(Σ_j w_ij, 2) and
// quadratic[(i,j)] = 2·w_ij.
// Complexity: O(n²).
func (MaxCut) Build(w mat.Symmetric) (*Model, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	neg := mat.NewSymDense(w.SymmetricDim(), nil)
	neg.ScaleSym(-1, w)
	qp := maxCutProgram(neg)

	n := len(qp.linear)
	linear := make(map[int]float64, n)
	for i, v := range qp.linear {
		linear[i] = numeric.Round(-v, linearPrecision)
	}
	quadratic := make(map[Pair]float64)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := qp.quadratic.At(i, j); v != 0 {
				quadratic[Pair{I: i, J: j}] = -v
			}
		}
	}

	return NewModel(linear, quadratic, 0, Binary)
}

// quadraticProgram is a maximization objective over binary variables with
// an upper-triangular quadratic part.
type quadraticProgram struct {
	linear    []float64
	quadratic *mat.TriDense
}

// maxCutProgram builds the Max-Cut objective Σ_{i<j} w_ij·(x_i(1-x_j) + x_j(1-x_i)).
func maxCutProgram(w mat.Symmetric) quadraticProgram {
	n := w.SymmetricDim()
	qp := quadraticProgram{
		linear:    make([]float64, n),
		quadratic: mat.NewTriDense(n, mat.Upper, nil),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wij := w.At(i, j)
			if wij == 0 {
				continue
			}
			qp.linear[i] += wij
			qp.linear[j] += wij
			qp.quadratic.SetTri(i, j, qp.quadratic.At(i, j)-2*wij)
		}
	}

	return qp
}

// Degree uses the weighted degree of every node as its bias and the negated
// weight as the coupling of every edge.
type Degree struct{}

// Name implements Builder.
func (Degree) Name() string { return FormulationDegree }

// Build implements Builder.
// Complexity: O(n²).
func (Degree) Build(w mat.Symmetric) (*Model, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	n := w.SymmetricDim()
	linear := make(map[int]float64, n)
	quadratic := make(map[Pair]float64)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := range row {
			row[j] = w.At(i, j)
		}
		linear[i] = floats.Sum(row)
		for j := i + 1; j < n; j++ {
			if row[j] != 0 {
				quadratic[Pair{I: i, J: j}] = -row[j]
			}
		}
	}

	return NewModel(linear, quadratic, 0, Binary)
}

// validateWeights rejects non-finite entries and a non-zero diagonal.
func validateWeights(w mat.Symmetric) error {
	n := w.SymmetricDim()
	for i := 0; i < n; i++ {
		if w.At(i, i) != 0 {
			return fmt.Errorf("W[%d,%d]: %w", i, i, ErrDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if !numeric.IsFinite(w.At(i, j)) {
				return fmt.Errorf("W[%d,%d]: %w", i, j, ErrNonFinite)
			}
		}
	}

	return nil
}
