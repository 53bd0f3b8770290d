package gridgraph

import (
	"math"

	"github.com/katalvlaran/qseg/internal/numeric"
)

// GaussianSimilarity returns exp(-(a-b)² / (2σ²)), a value in (0,1] that is
// 1 iff a == b and decays monotonically with |a-b|. It is symmetric in a
// and b. Returns ErrSigma if sigma is not a finite positive number.
// Complexity: O(1).
func GaussianSimilarity(a, b, sigma float64) (float64, error) {
	if err := validateSigma(sigma); err != nil {
		return 0, err
	}

	return gaussian(a, b, sigma), nil
}

// gaussian assumes sigma was validated.
func gaussian(a, b, sigma float64) float64 {
	d := a - b
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

func validateSigma(sigma float64) error {
	if !numeric.IsFinite(sigma) || sigma <= 0 {
		return ErrSigma
	}

	return nil
}
