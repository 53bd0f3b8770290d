package qubo

import (
	"fmt"

	"github.com/katalvlaran/qseg"
)

var (
	// ErrNonFinite indicates a NaN or ±Inf weight or coefficient.
	ErrNonFinite = fmt.Errorf("qubo: NaN or Inf encountered: %w", qseg.ErrDomain)
	// ErrDiagonal indicates a non-zero diagonal in the weight matrix.
	ErrDiagonal = fmt.Errorf("qubo: weight matrix diagonal must be zero: %w", qseg.ErrDomain)
	// ErrUnknownFormulation indicates an unsupported builder name.
	ErrUnknownFormulation = fmt.Errorf("qubo: unknown formulation: %w", qseg.ErrDomain)
	// ErrPairOrder indicates a quadratic key with I >= J or a negative index.
	ErrPairOrder = fmt.Errorf("qubo: quadratic pair must satisfy 0 <= i < j: %w", qseg.ErrShape)
	// ErrSampleLength indicates an assignment too short for the model's variables.
	ErrSampleLength = fmt.Errorf("qubo: assignment does not cover all variables: %w", qseg.ErrShape)
)
