// Package numeric holds the small rounding and finiteness helpers shared by
// the graph and QUBO builders.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Round rounds x to the given number of decimal places, resolving halves to
// the nearest even digit.
func Round(x float64, places int) float64 {
	r := scalar.RoundEven(x, places)
	if r == 0 {
		return 0 // drop negative zero
	}

	return r
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
