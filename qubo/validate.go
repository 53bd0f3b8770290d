package qubo

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/qseg/internal/numeric"
)

// Validate reports every malformed entry of the model at once: non-finite
// coefficients (ErrNonFinite) and badly ordered pairs (ErrPairOrder).
// Complexity: O(|linear| + |quadratic|).
func (m *Model) Validate() error {
	var err error
	if !numeric.IsFinite(m.Offset) {
		err = multierr.Append(err, fmt.Errorf("offset: %w", ErrNonFinite))
	}
	for _, i := range m.Variables() {
		if i < 0 {
			err = multierr.Append(err, fmt.Errorf("linear[%d]: %w", i, ErrPairOrder))
		}
		if !numeric.IsFinite(m.Linear[i]) {
			err = multierr.Append(err, fmt.Errorf("linear[%d]: %w", i, ErrNonFinite))
		}
	}
	for _, p := range m.Pairs() {
		if p.I < 0 || p.I >= p.J {
			err = multierr.Append(err, fmt.Errorf("quadratic[%d,%d]: %w", p.I, p.J, ErrPairOrder))
		}
		if !numeric.IsFinite(m.Quadratic[p]) {
			err = multierr.Append(err, fmt.Errorf("quadratic[%d,%d]: %w", p.I, p.J, ErrNonFinite))
		}
	}

	return err
}
