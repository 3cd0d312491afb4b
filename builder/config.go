// SPDX-License-Identifier: MIT
// Package: lvlsig/builder
//
// impl_config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng           = nil              (pure/deterministic unless seeded)
//   • amplitude     = 1.0
//   • frequency     = 0.0              (0 ⇒ per-builder base frequency)
//   • endFrequency  = 0.0              (0 ⇒ chirp default sweep target)
//   • duty          = 0.5
//   • triangular    = false
//   • trendK        = 0.0
//   • noiseSigma    = 0.0
//   • startPrice    = 100.0
//   • drift         = 0.0005
//   • volatility    = 0.02
//   • intradaySteps = 8
//
// AI-Hints:
//   • Set WithSeed for reproducible noisy fixtures (noise draws, OHLC paths).
//   • frequency/endFrequency keep 0 as an "unset" marker: option constructors
//     reject non-positive values, so 0 can never be user-supplied.
//   • OHLC defaults describe a mildly bullish liquid instrument; override
//     via WithStartPrice/WithDrift/WithVolatility/WithIntradaySteps.

package builder

import (
	"math/rand" // RNG for noisy builders
)

// builderConfig aggregates all knobs used by builders.
// It is passed by VALUE to extract*Params (immutable to callers).
type builderConfig struct {
	// RNG for noise/price draws; nil means "seed-local fallback".
	rng *rand.Rand

	// Waveform controls (Sine/Pulse/Chirp).
	amplitude    float64 // >0
	frequency    float64 // >0 when set; 0 ⇒ per-builder default
	endFrequency float64 // >0 when set; 0 ⇒ chirp default
	duty         float64 // rectangular duty in [0,1]
	triangular   bool    // pulse shape selector
	trendK       float64 // any real
	noiseSigma   float64 // >=0

	// OHLC walk controls.
	startPrice    float64 // >0
	drift         float64 // any real (daily log-drift)
	volatility    float64 // >=0 (daily)
	intradaySteps int     // >=1
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. The frequency fields deliberately stay at the 0
// "unset" marker so each builder can substitute its own documented default.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults (constants live next to the
	// builders that own them: sequence_primitives.go, impl_pulse.go, impl_ohlc.go).
	cfg := builderConfig{
		rng:           nil,              // no RNG unless explicitly set
		amplitude:     defAmp,           // 1.0
		frequency:     unitZero,         // 0 ⇒ per-builder base frequency
		endFrequency:  unitZero,         // 0 ⇒ chirp default sweep target
		duty:          defDuty,          // 0.5
		triangular:    defTriangular,    // rectangular
		trendK:        defTrendSlope,    // 0.0
		noiseSigma:    defSigma,         // 0.0
		startPrice:    defOHLCStart,     // 100.0
		drift:         defOHLCDailyMu,   // 0.0005
		volatility:    defOHLCDailyVol,  // 0.02
		intradaySteps: defIntradaySteps, // 8
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
