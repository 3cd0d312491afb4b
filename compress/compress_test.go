package compress_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsig/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScaling_NeutralOnZeroSpread verifies the near-zero-IQR guard: any
// finite raw value maps to the neutral score when the window is flat.
func TestScaling_NeutralOnZeroSpread(t *testing.T) {
	for _, raw := range []float64{-1e9, -1, 0, 0.5, 42, 1e9} {
		require.Equal(t, 0.0, compress.Scaling(raw, 0.0, compress.DefaultScalingC), "raw=%v, iqr=0", raw)
		require.Equal(t, 0.0, compress.Scaling(raw, 1e-11, compress.DefaultScalingC), "raw=%v, iqr under MinIQR", raw)
	}
}

// TestScaling_NaNPropagation verifies non-finite raw or iqr poisons the
// score.
func TestScaling_NaNPropagation(t *testing.T) {
	assert.True(t, math.IsNaN(compress.Scaling(math.NaN(), 1, 1)), "NaN raw")
	assert.True(t, math.IsNaN(compress.Scaling(1, math.NaN(), 1)), "NaN iqr")
	assert.True(t, math.IsNaN(compress.Scaling(math.Inf(1), 1, 1)), "Inf raw")
	assert.True(t, math.IsNaN(compress.Scaling(1, math.Inf(1), 1)), "Inf iqr")
}

// TestScaling_SignPreserving verifies the score carries the sign of raw
// and stays near zero for a zero input.
func TestScaling_SignPreserving(t *testing.T) {
	assert.Positive(t, compress.Scaling(1, 1, 1), "positive raw, positive score")
	assert.Negative(t, compress.Scaling(-1, 1, 1), "negative raw, negative score")
	assert.InDelta(t, 0.0, compress.Scaling(0, 1, 1), 1e-4, "zero raw is neutral")
}

// TestScaling_Antisymmetric verifies Scaling(-raw) = -Scaling(raw), which
// follows from the CDF's reflection identity.
func TestScaling_Antisymmetric(t *testing.T) {
	for _, raw := range []float64{0.1, 0.7, 2, 5} {
		plus := compress.Scaling(raw, 1.3, 0.5)
		minus := compress.Scaling(-raw, 1.3, 0.5)
		assert.InDelta(t, -plus, minus, 1e-9, "antisymmetry at raw=%v", raw)
	}
}

// TestScaling_BoundedAndMonotone verifies scores stay inside (-50, 50)
// and increase with raw.
func TestScaling_BoundedAndMonotone(t *testing.T) {
	prev := math.Inf(-1)
	for _, raw := range []float64{-1e6, -10, -1, 0, 1, 10, 1e6} {
		s := compress.Scaling(raw, 2.0, compress.DefaultScalingC)
		require.LessOrEqual(t, s, 50.0, "upper bound at raw=%v", raw)
		require.GreaterOrEqual(t, s, -50.0, "lower bound at raw=%v", raw)
		require.GreaterOrEqual(t, s, prev, "monotone at raw=%v", raw)
		prev = s
	}
}

// TestToRange_CentersOnMedian verifies the median itself maps to neutral
// and values straddling it land on opposite sides.
func TestToRange_CentersOnMedian(t *testing.T) {
	const med, iqr = 4.0, 2.0

	assert.InDelta(t, 0.0, compress.ToRange(med, med, iqr, compress.DefaultRangeC), 1e-4, "median is neutral")
	assert.Positive(t, compress.ToRange(med+1, med, iqr, compress.DefaultRangeC), "above median")
	assert.Negative(t, compress.ToRange(med-1, med, iqr, compress.DefaultRangeC), "below median")
}

// TestToRange_Guards verifies the shared NaN and zero-spread guards.
func TestToRange_Guards(t *testing.T) {
	assert.True(t, math.IsNaN(compress.ToRange(math.NaN(), 0, 1, 1)), "NaN raw")
	assert.True(t, math.IsNaN(compress.ToRange(1, 0, math.NaN(), 1)), "NaN iqr")
	assert.Equal(t, 0.0, compress.ToRange(123.45, 4, 0, 1), "flat window is neutral")
}

// TestCompress_ConstantIsATunable verifies different compression constants
// produce materially different scores on the same input — c is per-
// indicator configuration, not a fixed constant.
func TestCompress_ConstantIsATunable(t *testing.T) {
	tight := compress.Scaling(2, 1, compress.DefaultScalingC)
	loose := compress.Scaling(2, 1, compress.DefaultRangeC)
	assert.Greater(t, tight, loose, "larger c saturates faster on the same raw")
	assert.Greater(t, tight-loose, 10.0, "the difference is material, not rounding")
}
