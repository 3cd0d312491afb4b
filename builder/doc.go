// Package builder provides deterministic synthetic series for tests,
// benchmarks and demos: clean waveforms with known spectral content and
// OHLCV bars from a geometric-Brownian walk. It centralizes the
// functional-options configuration so every generator resolves the same
// knobs the same way, keeping fixtures DRY, reproducible and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, waveform and OHLC-walk knobs.
//   - Waveform generators (series of float64 samples):
//     – BuildSine:         A·sin(2π·f0·i), the transform fixture workhorse.
//     – BuildPulse:        rectangular (duty) or triangular pulse train.
//     – BuildChirp:        linear frequency sweep f0 → f1.
//   - Bar generator:
//     – BuildOHLC:         series.Bars via discrete GBM with intraday
//     steps for the wicks and a range-coupled synthetic volume column.
//   - Shared options:
//     – WithSeed / WithRand:           determinism policy.
//     – WithAmplitude / WithFrequency / WithEndFrequency: waveform shape.
//     – WithDuty / WithTriangular:     pulse shape.
//     – WithTrend / WithNoise:         drift and Gaussian noise overlays.
//     – WithStartPrice / WithDrift / WithVolatility / WithIntradaySteps:
//     OHLC walk parameters.
//
// Guarantees:
//
//   - Determinism: the same (n, seed, options) always produces the same
//     series; WithRand shares one stream across composed calls.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; builders themselves never panic and return nil (or
//     zero Bars) on invalid build parameters.
//   - OHLC invariants by construction: low ≤ min(open, close) ≤
//     max(open, close) ≤ high, volume > 0.
//   - Documented complexity per generator (all are O(n) with small
//     constants).
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
