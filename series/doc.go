// Package series holds the bar-level primitives the indicator layer
// feeds from: OHLCV storage, true-range and variance measures, the
// orthonormal Legendre regression basis, reverse-time windowing and a
// fixed-capacity history ring.
//
// 🚀 What is series?
//
// Indicators never consume raw bars directly; they consume derived
// scalar series and windows with strict index contracts. This package
// centralises those contracts: every function that walks a trailing
// window validates its bounds explicitly and returns a sentinel error
// instead of reading out of range.
//
// ✨ Key features:
//   - Bars: columnar OHLCV container with a single Validate contract.
//   - ATR: average true range over a trailing window, in raw price or
//     log-ratio form; a non-positive length degenerates to the
//     single-bar true range.
//   - Variance: population variance of log-prices or log-returns over
//     a trailing window.
//   - LegendreLinear: the orthonormal linear/quadratic/cubic basis
//     used by trend-strength regressions.
//   - ReverseWindow and LogSeries: adapters for the wavelet packages'
//     newest-first window convention.
//   - History: a fixed-capacity ring of recent raw indicator values,
//     oldest evicted first.
//
// ⚙️ Usage:
//
//	v, err := series.ATR(true, bars, i, 14)
//	c1, _, c3, err := series.LegendreLinear(10)
//
// All functions are pure and allocation-free except where documented;
// only History carries state, and one History must not be shared
// between goroutines.
package series
