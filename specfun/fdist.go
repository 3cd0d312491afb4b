package specfun

// FCDF returns the cumulative distribution function of the F-distribution
// with (ndf1, ndf2) degrees of freedom, evaluated at f.
//
// Identity used:
//
//	F_CDF(ndf1, ndf2, f) = 1 - I_x(ndf2/2, ndf1/2),  x = ndf2/(ndf2 + ndf1·f)
//
// The result is clamped to [0,1] to absorb floating-point overshoot from
// the incomplete-beta approximation; f ≤ 0 maps to 0 through the identity
// itself. Degrees of freedom must be positive for a meaningful result.
//
// Complexity: one IncompleteBeta evaluation.
func FCDF(ndf1, ndf2 int, f float64) float64 {
	x := float64(ndf2) / (float64(ndf2) + float64(ndf1)*f)
	cdf := 1.0 - IncompleteBeta(float64(ndf2)/2.0, float64(ndf1)/2.0, x)

	// Clamp: beta truncation error may leak a hair past either end.
	if cdf < 0 {
		return 0
	}
	if cdf > 1 {
		return 1
	}

	return cdf
}
