// SPDX-License-Identifier: MIT
// Package: lvlsig/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic; they return empty results.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible noisy fixtures (noise, OHLC paths).
//   • WithFrequency(0 is impossible): each builder substitutes its own
//     base frequency when the option is absent (deterministic fallback).
//   • OHLC knobs (WithStartPrice/WithDrift/WithVolatility/WithIntradaySteps)
//     are resolved in extractOHLCParams; waveform knobs in extract*Params.

package builder

import (
	"math/rand" // RNG source for noisy builders
)

// BuilderOption customizes the behavior of a builder by mutating a
// builderConfig instance before synthesis begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noisy builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible noise/price draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the waveform amplitude A (>0) for Sine/Pulse/Chirp.
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		// Deterministic scalar controlling signal scale.
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample) for
// Sine/Pulse/Chirp. Panics if f0 <= 0. When absent, each builder keeps
// its own documented default.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		// Fundamental frequency parameter for signal synthesis.
		c.frequency = f0
	}
}

// WithEndFrequency sets the chirp sweep target f1 (>0, cycles/sample).
// Panics if f1 <= 0. Ignored by non-sweeping builders.
// Complexity: O(1) time, O(1) space.
func WithEndFrequency(f1 float64) BuilderOption {
	if f1 <= 0 {
		panic("builder: WithEndFrequency(f1<=0)")
	}
	return func(c *builderConfig) {
		// Terminal frequency of the linear sweep.
		c.endFrequency = f1
	}
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
// Panics outside that range; 0 means "always off", 1 "always on".
// Complexity: O(1) time, O(1) space.
func WithDuty(duty float64) BuilderOption {
	if duty < 0 || duty > 1 {
		panic("builder: WithDuty(duty∉[0,1])")
	}
	return func(c *builderConfig) {
		// Fraction of each period spent at amplitude A.
		c.duty = duty
	}
}

// WithTriangular switches the pulse shape between rectangular (false)
// and triangular (true). Any bool is valid.
// Complexity: O(1) time, O(1) space.
func WithTriangular(on bool) BuilderOption {
	return func(c *builderConfig) {
		// Shape selector consumed by extractPulseParams.
		c.triangular = on
	}
}

// WithTrend sets the linear trend coefficient k for waveforms.
// Any real value is accepted (including 0).
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		// Adds k*i to samples; exact usage is defined per builder.
		c.trendK = k
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for waveforms.
// Panics if sigma < 0. Noise draws are seeded by c.rng.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		// Standard deviation for additive noise; 0 means noiseless.
		c.noiseSigma = sigma
	}
}

// WithStartPrice sets the initial OHLC price S0 (>0).
// Panics if S0 <= 0: a geometric walk from a non-positive price is meaningless.
// Complexity: O(1) time, O(1) space.
func WithStartPrice(S0 float64) BuilderOption {
	if S0 <= 0 {
		panic("builder: WithStartPrice(S0<=0)")
	}
	return func(c *builderConfig) {
		// First open of the simulated path.
		c.startPrice = S0
	}
}

// WithDrift sets the daily log-drift μ of the OHLC walk.
// Any real value is accepted (negative means a declining market).
// Complexity: O(1) time, O(1) space.
func WithDrift(mu float64) BuilderOption {
	return func(c *builderConfig) {
		// Expected daily log-return before the variance correction.
		c.drift = mu
	}
}

// WithVolatility sets the daily volatility σ (>=0) of the OHLC walk.
// Panics if sigma < 0; 0 yields a deterministic exponential path.
// Complexity: O(1) time, O(1) space.
func WithVolatility(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithVolatility(sigma<0)")
	}
	return func(c *builderConfig) {
		// Daily standard deviation of log-returns.
		c.volatility = sigma
	}
}

// WithIntradaySteps sets the number of intraday steps (>=1) used to form
// OHLC wicks. Panics if steps < 1. More steps give thinner wicks.
// Complexity: O(1) time, O(1) space.
func WithIntradaySteps(steps int) BuilderOption {
	if steps < 1 {
		panic("builder: WithIntradaySteps(steps<1)")
	}
	return func(c *builderConfig) {
		// Intraday resolution of the simulated price path.
		c.intradaySteps = steps
	}
}
