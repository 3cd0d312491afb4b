package series

import "math"

// LegendreLinear builds the three discrete Legendre-style basis
// vectors used as a fixed regression basis for trend fitting: a
// linear ramp, a demeaned quadratic and a cubic deflated against the
// linear term. Each vector is normalized to unit sum of squares, and
// c3 is orthogonal to c1 by construction.
//
// Algorithm Outline:
//
//	Stage 1: c1[i] = 2i/(n-1) - 1, then scale to unit norm. The ramp
//	         is symmetric about zero, so no centering is needed.
//	Stage 2: c2 = c1 squared elementwise, centered to zero mean,
//	         scaled to unit norm.
//	Stage 3: c3 = c1 cubed elementwise, centered, then deflated by
//	         subtracting its projection onto c1, scaled to unit norm.
//
// Complexity: O(n) time, three result allocations.
//
// For n = 2 the quadratic and cubic terms are degenerate and come back
// as NaN vectors; practical trend windows use n >= 4.
//
// Errors:
//   - ErrBasisSize if n < 2.
func LegendreLinear(n int) (c1, c2, c3 []float64, err error) {
	if n < 2 {
		return nil, nil, nil, ErrBasisSize
	}

	c1 = make([]float64, n)
	c2 = make([]float64, n)
	c3 = make([]float64, n)

	// Stage 1: linear ramp over [-1, 1].
	for i := 0; i < n; i++ {
		c1[i] = 2*float64(i)/float64(n-1) - 1
	}
	normalize(c1)

	// Stage 2: quadratic, centered then normalized.
	for i := range c2 {
		c2[i] = c1[i] * c1[i]
	}
	center(c2)
	normalize(c2)

	// Stage 3: cubic, centered, deflated against the linear term,
	// normalized.
	for i := range c3 {
		c3[i] = c1[i] * c1[i] * c1[i]
	}
	center(c3)
	var proj float64
	for i := range c3 {
		proj += c1[i] * c3[i]
	}
	for i := range c3 {
		c3[i] -= proj * c1[i]
	}
	normalize(c3)

	return c1, c2, c3, nil
}

// center subtracts the mean in place.
func center(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x
	}
	mean := sum / float64(len(v))
	for i := range v {
		v[i] -= mean
	}
}

// normalize scales v in place to unit sum of squares.
func normalize(v []float64) {
	var ss float64
	for _, x := range v {
		ss += x * x
	}
	norm := math.Sqrt(ss)
	for i := range v {
		v[i] /= norm
	}
}
