// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

package indicator

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsig/compress"
	"github.com/katalvlaran/lvlsig/robust"
	"github.com/katalvlaran/lvlsig/series"
)

// Engine evaluates a fixed set of indicator definitions over bar
// series. Construction validates every definition, so a non-nil
// Engine computes without per-bar surprises. Evaluator buffers are
// reused across bars, which makes one Engine unsafe for concurrent
// Compute calls.
type Engine struct {
	log   zerolog.Logger
	items []item
}

// item pairs a normalized definition with its evaluator.
type item struct {
	def  Def
	eval evaluator
	c    float64
}

// Option tweaks an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a structured logger for per-bar skip warnings
// and computation summaries. Without it the engine stays silent.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New validates cfg and builds one evaluator per definition.
//
// Validation covers the engine-level contract (unique names, known
// kinds and modes, usable compression windows); parameter errors from
// the numeric packages (wavelet sizes, basis sizes) pass through
// wrapped with the indicator's name, so errors.Is still matches their
// sentinels.
//
// Errors: ErrNoIndicators, ErrName, ErrKind, ErrMode, ErrLength,
// ErrWindow, or a wrapped construction error from a numeric package.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if len(cfg.Indicators) == 0 {
		return nil, ErrNoIndicators
	}

	e := &Engine{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}

	seen := make(map[string]struct{}, len(cfg.Indicators))
	for _, def := range cfg.Indicators {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrName)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrName, def.Name)
		}
		seen[def.Name] = struct{}{}

		def, c, err := normalize(def)
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %w", def.Name, err)
		}
		eval, err := buildEvaluator(def)
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %w", def.Name, err)
		}
		e.items = append(e.items, item{def: def, eval: eval, c: c})
	}
	return e, nil
}

// normalize applies the documented zero-value defaults and checks the
// compression contract.
func normalize(def Def) (Def, float64, error) {
	if def.Compress == "" {
		def.Compress = ModeNone
	}
	switch def.Compress {
	case ModeNone:
		return def, 0, nil
	case ModeScaling, ModeRange:
	default:
		return def, 0, fmt.Errorf("%w: %q", ErrMode, def.Compress)
	}

	if def.Window == 0 {
		def.Window = DefaultWindow
	}
	if def.Window < robust.MinIQRSamples {
		return def, 0, fmt.Errorf("%w: %d < %d", ErrWindow, def.Window, robust.MinIQRSamples)
	}

	c := def.C
	if c == 0 {
		if def.Compress == ModeScaling {
			c = compress.DefaultScalingC
		} else {
			c = compress.DefaultRangeC
		}
	}
	return def, c, nil
}

// Compute evaluates every indicator over bars and returns one output
// series per indicator name, aligned with the input bars.
//
// A bar comes out NaN when the indicator is still warming up (not
// enough bars for its window, or not enough raw history for the
// rolling median/IQR), when its raw value is undefined (non-positive
// prices in a log domain), or when evaluation fails; undefined and
// failed bars are logged and skipped, they never abort the batch.
//
// Errors: ErrNoBars for an empty series, or series.ErrLengthMismatch
// for ragged OHLCV columns.
func (e *Engine) Compute(bars series.Bars) (map[string][]float64, error) {
	if err := bars.Validate(); err != nil {
		return nil, err
	}
	n := bars.Len()
	if n == 0 {
		return nil, ErrNoBars
	}

	logp := series.LogSeries(bars.Close)
	out := make(map[string][]float64, len(e.items))
	for _, it := range e.items {
		out[it.def.Name] = e.computeOne(it, bars, logp)
	}
	return out, nil
}

// computeOne runs one indicator across all bars: raw evaluation,
// rolling robust statistics over the trailing raws excluding the
// current bar, then compression.
func (e *Engine) computeOne(it item, bars series.Bars, logp []float64) []float64 {
	n := bars.Len()
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.NaN()
	}

	var hist *series.History
	if it.def.Compress != ModeNone {
		// Window >= MinIQRSamples was enforced by New, so the only
		// NewHistory failure mode is unreachable here.
		hist, _ = series.NewHistory(it.def.Window)
	}

	skipped := 0
	for i := it.eval.minIndex(); i < n; i++ {
		raw, err := it.eval.raw(bars, logp, i)
		if err == nil && (math.IsNaN(raw) || math.IsInf(raw, 0)) {
			// Log-domain poison surfaces as a non-finite raw, not as
			// an evaluator error. Route it through the same skip path
			// so every undefined bar is NaN and leaves a log trace.
			err = fmt.Errorf("%w: %v", errRawUndefined, raw)
		}
		if err != nil {
			skipped++
			e.log.Warn().
				Err(err).
				Str("indicator", it.def.Name).
				Int("bar", i).
				Msg("skipping bar")
			if hist != nil {
				// Keep the trailing window time-aligned; NaN entries
				// are filtered by the robust statistics.
				hist.Push(math.NaN())
			}
			continue
		}

		if hist == nil {
			vals[i] = raw
			continue
		}
		if hist.Full() {
			trailing := hist.Values()
			iqr := robust.IQRPositional(trailing)
			if it.def.Compress == ModeScaling {
				vals[i] = compress.Scaling(raw, iqr, it.c)
			} else {
				vals[i] = compress.ToRange(raw, robust.Median(trailing), iqr, it.c)
			}
		}
		hist.Push(raw)
	}

	e.log.Debug().
		Str("indicator", it.def.Name).
		Int("bars", n).
		Int("skipped", skipped).
		Msg("indicator computed")
	return vals
}
