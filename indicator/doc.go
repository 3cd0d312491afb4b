// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

// Package indicator assembles the numeric packages into a configurable
// batch engine: YAML-declared indicator definitions go in, bounded
// per-bar indicator series come out.
//
// 🚀 What is indicator?
//
// Every indicator follows the same pipeline. A kind-specific evaluator
// turns the bar at position i into one raw scalar (a Morlet read-out,
// a Daubechies parent statistic, an ATR, a variance, a trend score).
// A trailing ring of previous raw values yields a median and IQR, and
// the compression layer maps the raw value through the normal CDF
// into a bounded score in (-50, 50). Bars that cannot be computed yet
// (warmup), fail, or produce a non-finite raw (logged and skipped)
// come out as NaN.
//
// ✨ Key features:
//   - Eleven indicator kinds over one windowing convention: morlet,
//     the seven daub_* parent statistics, atr, variance and trend.
//   - Per-indicator compression choice: "none" (raw pass-through),
//     "scaling" (sign-preserving) or "range" (centred on the rolling
//     median), with a tunable constant c and window length.
//   - Declarative YAML configuration with .env/environment overrides
//     for the log level.
//   - Structured zerolog logging at the engine boundary only; the
//     numeric packages below never log.
//
// ⚙️ Usage:
//
//	cfg, err := indicator.LoadConfig("indicators.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng, err := indicator.New(cfg, indicator.WithLogger(indicator.NewLogger(cfg.Log)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := eng.Compute(bars) // map[name][]float64, NaN until warm
//
// Performance:
//   - Compute is O(bars × indicators × window); evaluator state is
//     reused across bars, so the per-bar cost is allocation-free for
//     every kind except the per-call Morlet buffers.
//   - One Engine must not run Compute concurrently with itself; build
//     one Engine per goroutine instead, they share nothing.
//
// See also: lvlsig/wavelet, lvlsig/series, lvlsig/robust and
// lvlsig/compress for the stages this package orchestrates.
package indicator
