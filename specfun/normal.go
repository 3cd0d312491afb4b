package specfun

import "math"

// Shared iteration policy for the series/continued-fraction branches in this
// package (IncompleteGamma, IncompleteBeta).
const (
	convTol = 1e-8 // relative tolerance terminating iterative expansions
	maxIter = 1000 // hard cap on iterations; reached only for extreme arguments
)

// invSqrt2Pi is 1/√(2π), the normalization of the standard normal density.
const invSqrt2Pi = 0.3989422804014327

// Zelen & Severo polynomial coefficients (Abramowitz & Stegun 26.2.17).
var (
	cdfP  = 0.2316419    // t = 1/(1 + cdfP·z)
	cdfB1 = 0.319381530  // coefficient of t
	cdfB2 = -0.356563782 // coefficient of t²
	cdfB3 = 1.781477937  // coefficient of t³
	cdfB4 = -1.821255978 // coefficient of t⁴
	cdfB5 = 1.330274429  // coefficient of t⁵
)

// Rational approximation coefficients for the inverse (A&S 26.2.23).
var (
	invC0 = 2.515517 // numerator, constant term
	invC1 = 0.802853 // numerator, coefficient of t
	invC2 = 0.010328 // numerator, coefficient of t²
	invD1 = 1.432788 // denominator, coefficient of t
	invD2 = 0.189269 // denominator, coefficient of t²
	invD3 = 0.001308 // denominator, coefficient of t³
)

// NormalCDF returns Φ(z), the standard normal cumulative distribution
// function, via the Zelen & Severo polynomial approximation.
//
// Accuracy: absolute error < 7.5e-8 for all finite z. Symmetry
// Φ(-z) = 1 - Φ(z) holds exactly by construction (the polynomial is
// evaluated on |z| and reflected). ±Inf saturates to 0 or 1.
//
// Complexity: O(1), no allocations.
func NormalCDF(z float64) float64 {
	// Stage 1: evaluate on the non-negative half-line.
	az := math.Abs(z)

	// Stage 2: Horner evaluation of the degree-5 polynomial in t = 1/(1+p·|z|).
	t := 1.0 / (1.0 + cdfP*az)
	poly := t * (cdfB1 + t*(cdfB2+t*(cdfB3+t*(cdfB4+t*cdfB5))))

	// Stage 3: upper-tail mass Q(|z|) = φ(|z|)·poly.
	tail := invSqrt2Pi * math.Exp(-0.5*az*az) * poly

	// Stage 4: reflect for negative arguments.
	if z < 0 {
		return tail
	}

	return 1.0 - tail
}

// InverseNormalCDF returns Φ⁻¹(p) via the Abramowitz & Stegun 26.2.23
// rational approximation.
//
// Valid for 0 < p < 1; p ≤ 0 or p ≥ 1 hits the log domain and yields
// NaN/Inf under IEEE rules — callers clamp first. This is a fast
// approximation (absolute error < 4.5e-4), not a machine-precision
// inversion: InverseNormalCDF(NormalCDF(x)) ≈ x only to ~1e-3.
//
// Complexity: O(1), no allocations.
func InverseNormalCDF(p float64) float64 {
	// Lower half: Φ⁻¹(p) = -x where Q(x) = p.
	if p < 0.5 {
		return -invTail(p)
	}

	// Upper half by symmetry.
	return invTail(1.0 - p)
}

// invTail returns x ≥ 0 such that the upper-tail mass Q(x) ≈ p, for
// 0 < p ≤ 0.5 (A&S 26.2.23).
func invTail(p float64) float64 {
	t := math.Sqrt(-2.0 * math.Log(p))

	return t - (invC0+t*(invC1+t*invC2))/(1.0+t*(invD1+t*(invD2+t*invD3)))
}
