// SPDX-License-Identifier: MIT
// Package: lvlsig/builder
//
// impl_sine.go - deterministic sinusoid generator.
//
// Purpose:
//   - Produce a 1-D sine wave with a known, tunable period for transform
//     fixtures (Morlet phase checks, FFT spectra) and demos.
//   - Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   - BuildSine(n, seed, opts...) returns a slice of length n (or nil on
//     invalid input). Never panics; no global state.
//   - Strict determinism per (n, seed, options).
//   - O(n) time, O(n) memory.
//
// Determinism policy (aligned with the other builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// AI-Hints:
//   - WithFrequency(1.0/period) pins the cycle length in samples; the
//     default is defSineFreq (period 10), matching the conventional
//     Morlet demo period.
//   - Stack WithTrend/WithNoise to turn the clean tone into a noisy
//     trending series for robust-statistics fixtures.

package builder

import (
	"math"
)

// defSineFreq is the default sine frequency in cycles/sample (>0).
// Period = 10 samples, the customary cycle length in the wavelet demos.
const defSineFreq = 0.1

// seqSineParams groups the resolved knobs for the sine generator.
type seqSineParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // frequency > 0 (cycles/sample)
	sigma float64 // Gaussian noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

// extractSineParams maps builderConfig → seqSineParams, substituting the
// documented default frequency when the option was absent.
func extractSineParams(cfg builderConfig) seqSineParams {
	p := seqSineParams{
		amp:   cfg.amplitude,
		f0:    cfg.frequency,
		sigma: cfg.noiseSigma,
		trend: cfg.trendK,
	}
	if p.f0 == unitZero {
		// 0 is the "unset" marker; option constructors reject f0 <= 0.
		p.f0 = defSineFreq
	}

	return p
}

// BuildSine returns a length-n sinusoid with optional trend and noise:
//
//	yᵢ = A·sin(2π·f0·i) + trend·i + sigma·N(0,1)
//
// Validation:
//   - n < 1 ⇒ nil (invalid request; contract mirrors the other builders).
//   - Invalid parameters (A≤0, f0≤0, sigma<0) ⇒ nil; never panic.
//
// Complexity: O(n) time, O(n) memory.
func BuildSine(n int, seed int64, opts ...BuilderOption) []float64 {
	// Early size check avoids any allocation or RNG setup on invalid input.
	if n < 1 {
		return nil
	}

	// Resolve deterministic builder configuration once (O(len(opts))).
	cfg := newBuilderConfig(opts...)

	// Resolve sine parameters and validate defensively.
	p := extractSineParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.sigma < 0 {
		return nil
	}

	// RNG selection: shared cfg.rng wins; else a local seeded stream.
	rng := rngFrom(cfg, seed)

	// Allocate the output buffer exactly once.
	out := make([]float64, n)

	// Angular step per sample; precomputed outside the loop.
	omega := tau * p.f0

	var val float64
	for i := 0; i < n; i++ {
		// Base tone.
		val = p.amp * math.Sin(omega*float64(i))

		// Linear trend (predictable slope).
		val += p.trend * float64(i)

		// Additive Gaussian noise only when enabled.
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}

		out[i] = val
	}

	return out
}
