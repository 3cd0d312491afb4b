// SPDX-License-Identifier: MIT
// Package: lvlsig/builder
//
// impl_ohlc.go - deterministic OHLCV bars via discrete-time GBM with intraday steps.
//
// Purpose:
//   - Emit reproducible series.Bars for 'days' trading days using a GBM-like path.
//   - Use a small fixed number of intraday steps to form realistic wicks (high/low).
//   - Synthesize a positive volume column coupled to the day's realized range.
//   - Strict determinism: prefer cfg.rng if present; otherwise fall back to 'seed'.
//
// Contract:
//   - BuildOHLC(days, seed, opts...) → series.Bars with all five columns filled.
//   - On invalid input (days<1 or bad params) ⇒ return the zero Bars; never panic.
//   - O(days * steps) time; O(days) memory; steps is a tiny constant.
//
// Determinism policy (aligned with other builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// Invariants (by construction after each day):
//   - low ≤ min(open, close) ≤ max(open, close) ≤ high.
//   - volume > 0.
//
// AI-Hints:
//   - To make candles even closer to real markets: (a) increase steps via
//     WithIntradaySteps to get thinner wicks; (b) add mild vol clustering via
//     an internal multiplier; (c) post-round prices to a tick (e.g., 0.01)
//     outside this function.
//   - WithStartPrice/WithDrift/WithVolatility shape the walk; the volume
//     model keys off the relative daily range, so wilder days trade more.

package builder

import (
	"math"

	"github.com/katalvlaran/lvlsig/series"
)

// -----------------------------
// Defaults specific to OHLC.
// -----------------------------
const (
	defOHLCStart     = 100.0  // Default initial price S0 (>0)
	defOHLCDailyMu   = 0.0005 // Default daily drift μ
	defOHLCDailyVol  = 0.02   // Default daily volatility σ (≥0)
	defIntradaySteps = 8      // Default intraday steps per day (small constant)
)

// Volume model constants: base size, range sensitivity, lognormal shock.
const (
	defVolumeBase  = 1.0e6 // mean daily volume for a quiet day
	defVolumeSpan  = 25.0  // extra turnover per unit of relative range
	defVolumeSigma = 0.10  // sigma of the multiplicative lognormal shock
)

// -----------------------------
// Parameter bundle & resolver.
// -----------------------------

// seqOHLCParams groups resolved knobs for the OHLC generator.
type seqOHLCParams struct {
	S0    float64 // initial price > 0
	mu    float64 // daily drift
	vol   float64 // daily volatility ≥ 0
	steps int     // intraday steps per day ≥ 1
}

// extractOHLCParams maps builderConfig → seqOHLCParams; every knob has a
// WithX option and a documented default.
func extractOHLCParams(cfg builderConfig) seqOHLCParams {
	return seqOHLCParams{
		S0:    cfg.startPrice,
		mu:    cfg.drift,
		vol:   cfg.volatility,
		steps: cfg.intradaySteps,
	}
}

// -----------------------------
// Public API.
// -----------------------------

// BuildOHLC returns deterministic OHLCV bars for 'days' trading days.
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1)
//
// The open is the price at the day start, close the price after the last
// intraday step, high/low the extrema over the path including both
// endpoints. Volume couples to the day's relative range with a lognormal
// shock, so every entry is strictly positive:
//
//	V_d = base * (1 + span*(high-low)/open) * exp(sigmaV * Z)
//
// Validation: days < 1 or invalid parameters (S0≤0, σ<0, steps<1) return
// the zero Bars; callers detect it with bars.Len() == 0.
func BuildOHLC(days int, seed int64, opts ...BuilderOption) series.Bars {
	// Validate the requested number of days; if invalid, return zero Bars.
	if days < 1 {
		return series.Bars{}
	}

	// Resolve builder options once.
	cfg := newBuilderConfig(opts...)

	// Resolve OHLC parameters from the config.
	p := extractOHLCParams(cfg)

	// Defensive parameter checks (explicit and fast).
	if p.S0 <= 0 || p.vol < 0 || p.steps < 1 {
		return series.Bars{}
	}

	// RNG selection: prefer shared cfg.rng for global determinism; else local fallback.
	rng := rngFrom(cfg, seed)

	// Pre-allocate all five columns exactly once: O(days) memory.
	bars := series.Bars{
		Open:   make([]float64, days),
		High:   make([]float64, days),
		Low:    make([]float64, days),
		Close:  make([]float64, days),
		Volume: make([]float64, days),
	}

	// Initialize the starting price (strictly positive).
	S := p.S0

	// Precompute intraday constants (avoid recomputing inside loops).
	// Δt per intraday step; using daily μ, σ split across 'steps'.
	dt := 1.0 / float64(p.steps)        // time step
	driftTerm := p.mu - 0.5*p.vol*p.vol // (μ - 0.5 σ²), reused
	noiseScale := p.vol * math.Sqrt(dt) // σ √Δt, reused

	// Declare loop-temporaries once (avoid reallocation in tight loops).
	var (
		d               int     // day index
		s               int     // intraday step index
		dayHigh, dayLow float64 // running extrema for the day
		Z               float64 // standard normal draw
		incr            float64 // log-return increment for the step
		openD, closeD   float64 // aliases for readability
		relRange        float64 // (high-low)/open, the volume driver
	)

	// Simulate day by day (outer loop) and steps within a day (inner loop).
	for d = 0; d < days; d++ {
		// Record open at the very start of the day (before any intraday step).
		openD = S
		bars.Open[d] = openD

		// Initialize daily extrema with the opening price so open is always considered.
		dayHigh = openD
		dayLow = openD

		// Run the fixed number of intraday steps to produce a realistic wick.
		for s = 0; s < p.steps; s++ {
			// Draw a standard normal (deterministic per rng stream).
			Z = rng.NormFloat64()

			// Compute the log-increment for this step: (μ - 0.5σ²)Δt + σ√Δt * Z.
			incr = driftTerm*dt + noiseScale*Z

			// Update the price multiplicatively (GBM).
			S = S * math.Exp(incr)

			// Update daily extrema after the step (the wick body).
			if S > dayHigh {
				dayHigh = S
			}
			if S < dayLow {
				dayLow = S
			}
		}

		// The close is the last price after the final intraday step.
		closeD = S
		bars.Close[d] = closeD

		// Finalize high/low to include endpoints explicitly (open & close).
		// (Defensive, although open was used to init and close already visited.)
		if openD > dayHigh {
			dayHigh = openD
		}
		if closeD > dayHigh {
			dayHigh = closeD
		}
		if openD < dayLow {
			dayLow = openD
		}
		if closeD < dayLow {
			dayLow = closeD
		}

		// Commit extrema for the day.
		bars.High[d] = dayHigh
		bars.Low[d] = dayLow

		// Volume: base turnover scaled up by the relative range, with a
		// lognormal shock. Every factor is strictly positive.
		relRange = (dayHigh - dayLow) / openD
		bars.Volume[d] = defVolumeBase * (1.0 + defVolumeSpan*relRange) *
			math.Exp(defVolumeSigma*rng.NormFloat64())
	}

	// Return the five deterministic columns.
	return bars
}
