// Package lvlsig turns raw OHLCV price series into bounded, stationary
// indicator signals — special functions, robust statistics, FFT and
// wavelet transforms, and the compression layer that ties them together.
//
// 🚀 What is lvlsig?
//
//	A numeric indicator engine for financial time series that brings together:
//		• Special functions: normal CDF & inverse, log-gamma, incomplete gamma/beta, F CDF
//		• Robust statistics: NaN-aware median and interquartile range
//		• Compression: CDF-based squashing of raw values into [-50, 50]
//		• FFT: iterative radix-2 Cooley–Tukey with precomputed twiddle tables
//		• Wavelets: frequency-domain Morlet filter, in-place Daubechies-4 pyramid
//		• Series primitives: ATR, rolling variance, Legendre trend basis
//		• Indicator layer: YAML-configured definitions computed bar by bar
//
// ✨ Why choose lvlsig?
//
//   - Deterministic numerics – fixed approximations, documented tolerances
//   - Hot-path discipline – transforms precompute once, never allocate per call
//   - Explicit contracts – factories return errors, degenerate inputs return sentinels
//   - Pure Go – no cgo, no hidden globals
//
// Packages, leaf-first:
//
//	specfun/   — distribution CDFs and gamma/beta building blocks
//	robust/    — median & IQR over sliding windows of raw values
//	compress/  — Φ-based normalization into a bounded score range
//	fft/       — radix-2 power-of-two FFT plans
//	wavelet/   — Morlet filter (on fft) and Daubechies-4 DWT + statistics
//	series/    — OHLCV bars, ATR, variance, Legendre basis, history buffers
//	indicator/ — definitions, config, engine: raw value → robust window → score
//	builder/   — deterministic synthetic series (GBM OHLC, sine, chirp, pulse)
//
// Data flow:
//
//	bars ──► series primitives / wavelet transforms ──► raw value per bar
//	     ──► median & IQR over trailing history ──► compress ──► [-50, 50]
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples; examples/ holds end-to-end scenarios.
//
//	go get github.com/katalvlaran/lvlsig
package lvlsig
