package compress

import (
	"math"

	"github.com/katalvlaran/lvlsig/specfun"
)

const (
	// DefaultScalingC is the customary compression constant for Scaling;
	// per-indicator tuning overrides it freely.
	DefaultScalingC = 1.0

	// DefaultRangeC is the customary compression constant for ToRange.
	// Centered values spread wider, hence the gentler default.
	DefaultRangeC = 0.25

	// MinIQR is the spread below which compression returns the neutral
	// score instead of dividing by a vanishing IQR.
	MinIQR = 1e-10
)

// Output affine map: Φ ∈ (0,1) → score ∈ (-50, 50).
const (
	scoreSpan  = 100.0
	scoreShift = 50.0
)

// Scaling compresses a raw indicator value by the spread of its history
// window without centering: 100·Φ(c·raw/iqr) − 50. The sign of raw is the
// sign of the score, which is what sign-meaningful indicators need.
//
// Returns NaN when raw or iqr is non-finite, and 0.0 (neutral) when
// iqr < MinIQR. A NaN median/mean upstream simply propagates through Φ.
func Scaling(raw, iqr, c float64) float64 {
	if !finite(raw) || !finite(iqr) {
		return math.NaN()
	}
	if iqr < MinIQR {
		return 0.0
	}

	return scoreSpan*specfun.NormalCDF(c*raw/iqr) - scoreShift
}

// ToRange compresses a raw indicator value against its own history,
// centering on the window median before scaling:
// 100·Φ(c·(raw−median)/iqr) − 50. Use it when the indicator's absolute
// level is meaningless and only its position within recent history counts.
//
// Same guards as Scaling: NaN for non-finite raw/iqr, 0.0 below MinIQR.
func ToRange(raw, median, iqr, c float64) float64 {
	if !finite(raw) || !finite(iqr) {
		return math.NaN()
	}
	if iqr < MinIQR {
		return 0.0
	}

	return scoreSpan*specfun.NormalCDF(c*(raw-median)/iqr) - scoreShift
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
