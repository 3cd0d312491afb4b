// Package robust provides the outlier-resistant window statistics the
// compression layer feeds on: a NaN-aware median and the interquartile
// range in two isolated quartile conventions.
//
// 🚀 What is robust?
//
//	Per-window statistics over trailing raw indicator values:
//	  • Median — middle of the finite entries (average of two middles when even)
//	  • IQRPositional — Q3-Q1 with simple positional quartiles (the default)
//	  • IQRInterpolated — Q3-Q1 with R-7 linear interpolation (the alternative)
//	  • IQR — alias for the default convention
//
// ✨ Key properties:
//   - Non-finite entries (NaN, ±Inf) are filtered before any computation —
//     sliding financial windows produce them routinely
//   - Inputs are never mutated; sorting happens on a local copy
//   - Degenerate windows return NaN sentinels, never errors:
//     Median of nothing finite is NaN, IQR of fewer than 4 finite values is NaN
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsig/robust"
//
//	med := robust.Median(window)
//	iqr := robust.IQR(window) // positional convention
//
// The two IQR conventions are deliberately separate named functions: the
// positional one reproduces the engine's historical outputs, the R-7 one
// exists so call sites can switch without touching this package. Pick one
// per call site; they disagree on most windows.
//
// Complexity: O(n log n) per call (copy + sort), O(n) extra memory.
package robust
