package specfun

import "math"

// Stirling-series constants for LogGamma.
const (
	stirlingMin = 7.0                // recurrence shifts x above this before the series
	halfLog2Pi  = 0.9189385332046727 // 0.5·ln(2π)
	lentzTiny   = 1e-30              // floor protecting the Lentz recurrence from zero division
)

// Stirling asymptotic coefficients: ln Γ(x) ≈ (x-½)ln x - x + ½ln 2π
// + 1/(12x) - 1/(360x³) + 1/(1260x⁵) - 1/(1680x⁷).
var (
	stirC0 = 1.0 / 12.0    // 1/(12x)
	stirC1 = -1.0 / 360.0  // -1/(360x³)
	stirC2 = 1.0 / 1260.0  // 1/(1260x⁵)
	stirC3 = -1.0 / 1680.0 // -1/(1680x⁷)
)

// LogGamma returns ln Γ(x) for x > 0.
//
// Algorithm Outline:
//  1. Shift small arguments upward through Γ(x+1) = x·Γ(x): multiply the
//     pivots into an accumulator until x ≥ 7, where Stirling is accurate.
//  2. Evaluate the four-term Stirling series at the shifted point.
//  3. Subtract the log of the accumulated product.
//
// Returns 0 for x ≤ 0 — a degenerate sentinel, not an error signal; callers
// guard their own arguments (the gamma function has poles there, and the
// sliding-window callers in this module never produce non-positive inputs
// on purpose).
//
// Accuracy: better than 1e-10 for x > 0. Complexity: O(1).
func LogGamma(x float64) float64 {
	if x <= 0 {
		return 0
	}

	// Stage 1: recurrence shift; at most 7 multiplications.
	prod := 1.0
	for x < stirlingMin {
		prod *= x
		x += 1.0
	}

	// Stage 2: Stirling series in g = 1/x².
	g := 1.0 / (x * x)
	series := (((stirC3*g+stirC2)*g+stirC1)*g + stirC0) / x

	// Stage 3: undo the shift.
	return (x-0.5)*math.Log(x) - x + halfLog2Pi + series - math.Log(prod)
}

// IncompleteGamma returns the regularized lower incomplete gamma function
// P(a, x) = γ(a,x)/Γ(a) for a > 0.
//
// Algorithm Outline:
//   - x < a+1: power series around zero (fast convergence in this region).
//   - x ≥ a+1: evaluate the complementary Q(a,x) by continued fraction
//     (modified Lentz) and return 1 - Q; the fraction converges fast there.
//
// Both branches iterate to relative tolerance 1e-8 with a 1000-step cap.
// Returns 0 for x ≤ 0 (sentinel, consistent with P(a,0) = 0).
//
// Complexity: O(iterations), no allocations.
func IncompleteGamma(a, x float64) float64 {
	if x <= 0 {
		return 0
	}

	if x < a+1.0 {
		return gammaSeries(a, x)
	}

	return 1.0 - gammaContinuedFraction(a, x)
}

// gammaSeries evaluates P(a,x) by its power series; valid for x < a+1.
func gammaSeries(a, x float64) float64 {
	ap := a
	term := 1.0 / a
	sum := term

	for i := 0; i < maxIter; i++ {
		ap += 1.0
		term *= x / ap
		sum += term
		if math.Abs(term) < math.Abs(sum)*convTol {
			break
		}
	}

	// Prefactor e^{-x} x^a / Γ(a) folded in log space to avoid overflow.
	return sum * math.Exp(-x+a*math.Log(x)-LogGamma(a))
}

// gammaContinuedFraction evaluates the complement Q(a,x) by the modified
// Lentz continued fraction; valid for x ≥ a+1.
func gammaContinuedFraction(a, x float64) float64 {
	// Lentz state: h accumulates the fraction value.
	b := x + 1.0 - a
	c := 1.0 / lentzTiny
	d := 1.0 / b
	h := d

	var an, del float64
	for i := 1; i <= maxIter; i++ {
		an = -float64(i) * (float64(i) - a)
		b += 2.0

		d = an*d + b
		if math.Abs(d) < lentzTiny {
			d = lentzTiny
		}

		c = b + an/c
		if math.Abs(c) < lentzTiny {
			c = lentzTiny
		}

		d = 1.0 / d
		del = d * c
		h *= del

		if math.Abs(del-1.0) < convTol {
			break
		}
	}

	return math.Exp(-x+a*math.Log(x)-LogGamma(a)) * h
}
