package robust

import (
	"math"
	"sort"
)

// MinIQRSamples is the smallest number of finite values for which the
// interquartile range is considered defined; below it both IQR variants
// return NaN (quartiles of 3 points are noise, not spread).
const MinIQRSamples = 4

// Quartile probabilities used by the interpolated convention.
const (
	q1Prob = 0.25
	q3Prob = 0.75
)

// Median returns the middle of the finite entries of values: the central
// element for an odd count, the mean of the two central elements for an
// even count. Returns NaN when no finite value remains.
//
// The input is never mutated; filtering and sorting happen on a local copy.
//
// Complexity: O(n log n) time, O(n) memory.
func Median(values []float64) float64 {
	s := finiteSorted(values)
	n := len(s)
	if n == 0 {
		return math.NaN()
	}

	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// IQR returns the interquartile range under the package default, the
// positional convention. See IQRPositional for the exact rule and the
// package doc for why the convention is isolated behind named functions.
func IQR(values []float64) float64 {
	return IQRPositional(values)
}

// IQRPositional returns Q3-Q1 of the finite entries using simple
// positional quartiles: Q1 sits at index n/4 and Q3 at index 3n/4
// (integer division), each averaged with its left neighbor exactly when
// the index lands on a boundary (n%4 == 0 for Q1, (3n)%4 == 0 for Q3).
//
// This is deliberately NOT the R-7 linear-interpolation quartile; the two
// conventions disagree on most windows and the positional one is the
// engine's historical default. Returns NaN when fewer than MinIQRSamples
// finite values remain.
//
// Complexity: O(n log n) time, O(n) memory. Input is never mutated.
func IQRPositional(values []float64) float64 {
	s := finiteSorted(values)
	n := len(s)
	if n < MinIQRSamples {
		return math.NaN()
	}

	// Q1: boundary hit averages the two straddling elements.
	q1 := s[n/4]
	if n%4 == 0 {
		q1 = (s[n/4-1] + s[n/4]) / 2
	}

	// Q3: same rule at the upper hinge.
	q3 := s[3*n/4]
	if (3*n)%4 == 0 {
		q3 = (s[3*n/4-1] + s[3*n/4]) / 2
	}

	return q3 - q1
}

// IQRInterpolated returns Q3-Q1 using the R-7 convention (linear
// interpolation at h = (n-1)p), the variant most statistics packages
// report. Same NaN rules as IQRPositional.
//
// Complexity: O(n log n) time, O(n) memory. Input is never mutated.
func IQRInterpolated(values []float64) float64 {
	s := finiteSorted(values)
	if len(s) < MinIQRSamples {
		return math.NaN()
	}

	return quantileR7(s, q3Prob) - quantileR7(s, q1Prob)
}

// quantileR7 evaluates the R-7 sample quantile of an ascending slice.
func quantileR7(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// finiteSorted copies the finite entries of values into a fresh slice and
// sorts it ascending. Shared filtering step for all statistics here.
func finiteSorted(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	sort.Float64s(out)

	return out
}
