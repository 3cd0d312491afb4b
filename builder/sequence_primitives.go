// SPDX-License-Identifier: MIT
// Package: lvlsig/builder
//
// sequence_primitives.go - shared defaults and helpers for the series builders.
//
// Purpose:
//   - Hold cross-builder defaults (amplitude/noise/trend).
//   - Provide deterministic RNG selection with cfg.rng priority.
//   - Provide small named numeric constants to avoid magic literals.
//
// Contract:
//   - Pure helpers (no global state). Safe to use from impl_sine.go /
//     impl_pulse.go / impl_chirp.go / impl_ohlc.go.

package builder

import (
	"math/rand"
)

// -----------------------------
// Shared defaults (cross-file).
// -----------------------------
const (
	defAmp        = 1.0 // Default amplitude for Sine/Pulse/Chirp A (>0).
	defSigma      = 0.0 // Default Gaussian noise sigma (≥0); 0 disables noise.
	defTrendSlope = 0.0 // Default linear trend increment per sample.
)

// -----------------------------
// Tiny numeric named constants.
// -----------------------------
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
