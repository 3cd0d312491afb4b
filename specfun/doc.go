// Package specfun provides the special-function approximations the
// indicator engine is built on: the standard normal CDF and its inverse,
// log-gamma, the regularized incomplete gamma and beta functions, and the
// F-distribution CDF assembled from them.
//
// 🚀 What is specfun?
//
//	Closed-form numeric approximations with fixed, documented accuracy:
//	  • NormalCDF / InverseNormalCDF — Φ and Φ⁻¹ (Abramowitz–Stegun rationals)
//	  • LogGamma — Stirling series with small-argument recurrence
//	  • IncompleteGamma — regularized lower P(a,x), series + continued fraction
//	  • IncompleteBeta — regularized I_x(p,q), hypergeometric series + reflection
//	  • FCDF — F-distribution CDF via the incomplete beta
//
// ✨ Key properties:
//   - NormalCDF symmetric by construction: Φ(-z) = 1 - Φ(z)
//   - InverseNormalCDF round-trips NormalCDF to ~1e-3 (fast approximation)
//   - Iterative branches converge to 1e-8 relative tolerance, capped at 1000 steps
//   - Degenerate arguments return sentinels (0 or 1), never errors — these are
//     hot-path scalar functions called once per bar per indicator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsig/specfun"
//
//	p := specfun.NormalCDF(1.96)          // ≈ 0.975
//	z := specfun.InverseNormalCDF(0.975)  // ≈ 1.96
//	c := specfun.FCDF(2, 10, 4.1)         // F-test tail mass
//
// Accuracy:
//
//   - NormalCDF: absolute error < 7.5e-8 (Zelen & Severo polynomial)
//   - InverseNormalCDF: absolute error < 4.5e-4 (A&S 26.2.23 rational)
//   - Incomplete gamma/beta: relative truncation error ≤ 1e-8
//
// All functions are pure, allocation-free and safe for concurrent use.
package specfun
