// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

package indicator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsig/series"
	"github.com/katalvlaran/lvlsig/specfun"
	"github.com/katalvlaran/lvlsig/wavelet"
)

// evaluator turns one bar position into one raw indicator value.
// minIndex reports the first bar with enough history; earlier bars
// stay NaN warmup. Implementations may reuse internal buffers across
// calls and are therefore not safe for concurrent use.
type evaluator interface {
	minIndex() int
	raw(b series.Bars, logp []float64, i int) (float64, error)
}

// buildEvaluator maps one definition onto its evaluator, surfacing
// every parameter problem at construction time.
func buildEvaluator(def Def) (evaluator, error) {
	switch def.Kind {
	case KindMorlet:
		return newMorletEval(def)
	case KindDaubMean, KindDaubMin, KindDaubMax, KindDaubStd,
		KindDaubEnergy, KindDaubNLEnergy, KindDaubCurve:
		return newDaubEval(def)
	case KindATR:
		return &atrEval{useLog: def.UseLog, length: def.Length}, nil
	case KindVariance:
		if def.Length < 1 {
			return nil, fmt.Errorf("%w: variance needs length >= 1", ErrLength)
		}
		return &varianceEval{useChange: def.UseChange, length: def.Length}, nil
	case KindTrend:
		return newTrendEval(def)
	default:
		return nil, fmt.Errorf("%w: %q", ErrKind, def.Kind)
	}
}

// morletEval reads one filtered sample per bar from a reversed window
// of log closes.
type morletEval struct {
	m   *wavelet.Morlet
	buf []float64
}

func newMorletEval(def Def) (*morletEval, error) {
	opts := wavelet.MorletOptions{
		Period: def.Period,
		Width:  def.Width,
		Lag:    def.Lag,
		Imag:   def.Imag,
	}
	if opts.Width == 0 {
		opts.Width = 2 * def.Period
	}
	if opts.Lag == 0 {
		opts.Lag = opts.Width
	}
	m, err := wavelet.NewMorlet(opts)
	if err != nil {
		return nil, err
	}
	return &morletEval{m: m, buf: make([]float64, m.SampleCount())}, nil
}

func (e *morletEval) minIndex() int { return len(e.buf) - 1 }

func (e *morletEval) raw(_ series.Bars, logp []float64, i int) (float64, error) {
	if err := series.ReverseWindow(e.buf, logp, i); err != nil {
		return 0, err
	}
	return e.m.Transform(e.buf)
}

// daubEval reduces the Daubechies parent band of a reversed log-close
// window to one scalar per bar.
type daubEval struct {
	stat  func([]float64, int) (float64, error)
	level int
	buf   []float64
}

func newDaubEval(def Def) (*daubEval, error) {
	if def.Length < 1 {
		return nil, fmt.Errorf("%w: %s needs a positive length", ErrLength, def.Kind)
	}
	d := wavelet.NewDaubechies()
	var stat func([]float64, int) (float64, error)
	switch def.Kind {
	case KindDaubMean:
		stat = d.Mean
	case KindDaubMin:
		stat = d.Min
	case KindDaubMax:
		stat = d.Max
	case KindDaubStd:
		stat = d.Std
	case KindDaubEnergy:
		stat = d.Energy
	case KindDaubNLEnergy:
		stat = d.NLEnergy
	case KindDaubCurve:
		stat = d.Curve
	}
	e := &daubEval{stat: stat, level: def.Level, buf: make([]float64, def.Length)}
	// One probe run surfaces level/length violations now instead of
	// on every bar.
	if _, err := e.stat(e.buf, e.level); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *daubEval) minIndex() int { return len(e.buf) - 1 }

func (e *daubEval) raw(_ series.Bars, logp []float64, i int) (float64, error) {
	if err := series.ReverseWindow(e.buf, logp, i); err != nil {
		return 0, err
	}
	return e.stat(e.buf, e.level)
}

// atrEval wraps series.ATR; a non-positive length keeps the
// documented single-bar degeneration.
type atrEval struct {
	useLog bool
	length int
}

func (e *atrEval) minIndex() int {
	if e.length <= 0 {
		return 1
	}
	return e.length
}

func (e *atrEval) raw(b series.Bars, _ []float64, i int) (float64, error) {
	return series.ATR(e.useLog, b, i, e.length)
}

// varianceEval wraps series.Variance over closes.
type varianceEval struct {
	useChange bool
	length    int
}

func (e *varianceEval) minIndex() int {
	if e.useChange {
		return e.length
	}
	return e.length - 1
}

func (e *varianceEval) raw(b series.Bars, _ []float64, i int) (float64, error) {
	return series.Variance(e.useChange, b.Close, i, e.length)
}

// trendFlatSS is the variance floor below which a log-close window
// counts as flat. Double-precision summation noise on a flat window
// sits near 1e-30; any real relative price move puts ss above 1e-16.
const trendFlatSS = 1e-24

// trendEval regresses the log-close window on the linear Legendre
// basis and maps the F statistic of the fit through the F CDF.
type trendEval struct {
	c1 []float64
	n  int
}

func newTrendEval(def Def) (*trendEval, error) {
	if def.Length < 3 {
		return nil, fmt.Errorf("%w: trend needs length >= 3", ErrLength)
	}
	c1, _, _, err := series.LegendreLinear(def.Length)
	if err != nil {
		return nil, err
	}
	return &trendEval{c1: c1, n: def.Length}, nil
}

func (e *trendEval) minIndex() int { return e.n - 1 }

func (e *trendEval) raw(_ series.Bars, logp []float64, i int) (float64, error) {
	w := logp[i-e.n+1 : i+1]

	// c1 is unit-norm and zero-mean, so the slope projection doubles
	// as the explained sum of squares.
	var dot, sum float64
	for j, v := range w {
		dot += e.c1[j] * v
		sum += v
	}
	if math.IsNaN(dot) {
		return math.NaN(), nil
	}
	mean := sum / float64(e.n)
	var ss float64
	for _, v := range w {
		d := v - mean
		ss += d * d
	}
	if ss < trendFlatSS {
		// Flat window: no variance to explain, neutral score.
		return 0, nil
	}

	r2 := dot * dot / ss
	ndf2 := e.n - 2
	score := 50.0
	if denom := 1 - r2; denom > 0 {
		score = 50 * specfun.FCDF(1, ndf2, r2*float64(ndf2)/denom)
	}
	if dot < 0 {
		return -score, nil
	}
	return score, nil
}
