package specfun

import "math"

// betaReflectPoint is where evaluation switches to the reflected tail:
// for x beyond it, I_x(p,q) = 1 - I_{1-x}(q,p) converges much faster.
const betaReflectPoint = 0.5

// IncompleteBeta returns the regularized incomplete beta function I_x(p,q).
//
// Algorithm Outline:
//  1. Sentinel edges: 0 for x ≤ 0, 1 for x ≥ 1, 0 when p ≤ 0 or q ≤ 0
//     (degenerate parameters absorb locally, never error).
//  2. Reflection for x > 0.5: I_x(p,q) = 1 - I_{1-x}(q,p), keeping the
//     series argument small for numerical stability.
//  3. Hypergeometric series (continued-fraction-free):
//     I_x(p,q) = x^p (1-x)^q / (p·B(p,q)) · Σ cₙ xⁿ,
//     c₀ = 1, cₙ = cₙ₋₁·(p+q+n-1)/(p+n),
//     with the prefactor assembled in log space through LogGamma.
//
// The series terminates at relative tolerance 1e-8 (cap 1000 terms); after
// reflection the ratio of consecutive terms tends to x ≤ 0.5, so convergence
// is geometric.
//
// Complexity: O(iterations), no allocations.
func IncompleteBeta(p, q, x float64) float64 {
	// Stage 1: sentinel edges.
	if p <= 0 || q <= 0 {
		return 0
	}
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Stage 2: reflect the upper tail.
	if x > betaReflectPoint {
		return 1.0 - IncompleteBeta(q, p, 1.0-x)
	}

	// Stage 3: prefactor x^p (1-x)^q / (p·B(p,q)) in log space.
	front := math.Exp(p*math.Log(x)+q*math.Log(1.0-x)+
		LogGamma(p+q)-LogGamma(p)-LogGamma(q)) / p

	// Hypergeometric series Σ cₙ xⁿ with cₙ/cₙ₋₁ = (p+q+n-1)/(p+n)·x.
	term := 1.0
	sum := 1.0
	for n := 1; n <= maxIter; n++ {
		term *= (p + q + float64(n-1)) / (p + float64(n)) * x
		sum += term
		if term < sum*convTol {
			break
		}
	}

	return front * sum
}
