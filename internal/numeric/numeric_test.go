package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qseg/internal/numeric"
)

func TestRound(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		places int
		want   float64
	}{
		{"FourPlaces", 0.8646647167633873, 4, 0.8647},
		{"TwoPlaces", -1.23456, 2, -1.23},
		{"HalfToEven", 0.125, 2, 0.12},
		{"NegativeZero", -0.00001, 2, 0},
		{"Integer", 3, 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := numeric.Round(tc.x, tc.places)
			require.InDelta(t, tc.want, got, 1e-12)
			require.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
		})
	}
}

func TestIsFinite(t *testing.T) {
	require.True(t, numeric.IsFinite(0))
	require.True(t, numeric.IsFinite(-1e300))
	require.False(t, numeric.IsFinite(math.NaN()))
	require.False(t, numeric.IsFinite(math.Inf(1)))
	require.False(t, numeric.IsFinite(math.Inf(-1)))
}
