package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsig/series"
)

// dot is a plain inner product helper.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// TestLegendreLinear_Orthonormal checks the basis contract for a
// typical trend window: every vector has unit sum of squares and the
// pairs are mutually orthogonal.
func TestLegendreLinear_Orthonormal(t *testing.T) {
	c1, c2, c3, err := series.LegendreLinear(10)
	require.NoError(t, err)
	require.Len(t, c1, 10)
	require.Len(t, c2, 10)
	require.Len(t, c3, 10)

	assert.InDelta(t, 1.0, dot(c1, c1), 1e-12, "unit c1")
	assert.InDelta(t, 1.0, dot(c2, c2), 1e-12, "unit c2")
	assert.InDelta(t, 1.0, dot(c3, c3), 1e-12, "unit c3")

	assert.InDelta(t, 0.0, dot(c1, c2), 1e-12, "c1 vs c2")
	assert.InDelta(t, 0.0, dot(c1, c3), 1e-12, "c1 vs c3 after deflation")
	assert.InDelta(t, 0.0, dot(c2, c3), 1e-12, "c2 vs c3")
}

// TestLegendreLinear_RampShape pins the linear term: strictly
// increasing, antisymmetric about the window centre.
func TestLegendreLinear_RampShape(t *testing.T) {
	c1, _, _, err := series.LegendreLinear(9)
	require.NoError(t, err)

	for i := 1; i < len(c1); i++ {
		assert.Greater(t, c1[i], c1[i-1], "ramp must increase at %d", i)
	}
	for i := range c1 {
		assert.InDelta(t, -c1[len(c1)-1-i], c1[i], 1e-12, "antisymmetry at %d", i)
	}
	assert.InDelta(t, 0.0, c1[4], 1e-12, "odd window centres on zero")
}

// TestLegendreLinear_SmallWindow pins the n=3 basis against
// hand-computed values.
func TestLegendreLinear_SmallWindow(t *testing.T) {
	c1, c2, _, err := series.LegendreLinear(3)
	require.NoError(t, err)

	want1 := []float64{-0.70710678, 0, 0.70710678}
	want2 := []float64{0.40824829, -0.81649658, 0.40824829}
	for i := range want1 {
		assert.InDelta(t, want1[i], c1[i], 1e-8, "c1[%d]", i)
		assert.InDelta(t, want2[i], c2[i], 1e-8, "c2[%d]", i)
	}
}

// TestLegendreLinear_RejectsTinyBasis checks the size sentinel.
func TestLegendreLinear_RejectsTinyBasis(t *testing.T) {
	for _, n := range []int{1, 0, -5} {
		_, _, _, err := series.LegendreLinear(n)
		assert.ErrorIs(t, err, series.ErrBasisSize, "n=%d", n)
	}
}
