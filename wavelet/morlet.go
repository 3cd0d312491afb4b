// SPDX-License-Identifier: MIT
// Package: lvlsig/wavelet

package wavelet

import (
	"math"

	"github.com/katalvlaran/lvlsig/fft"
)

// Morlet is a frequency-domain Gabor filter tuned to one cycle period.
// It is immutable after construction and safe for concurrent Transform
// calls, since every call works on its own buffers.
type Morlet struct {
	period int
	width  int
	lag    int
	imag   bool

	npts    int       // samples consumed per call, 2*width+1
	n       int       // FFT size, next power of two >= npts
	weights []float64 // analytic-signal Gaussian weights, one per bin
	plan    *fft.Plan
}

// NewMorlet validates opts and precomputes the frequency weights and
// the FFT plan for the derived transform size.
//
// Description:
//
//	The filter is a Gaussian bump of spread 1/Width centred on the
//	frequency 1/Period, applied to the analytic (positive-frequency)
//	spectrum of the input window. DC and the Nyquist bin have no
//	conjugate partner and keep a single weight; every interior bin is
//	doubled to fold its conjugate's energy in; bins above Nyquist are
//	zeroed so no energy leaks into wrap-around frequencies.
//
// Errors:
//   - ErrPeriod if opts.Period < 2.
//   - ErrWidth if opts.Width < opts.Period.
//   - ErrLag if opts.Lag is outside [0, opts.Width].
func NewMorlet(opts MorletOptions) (*Morlet, error) {
	if opts.Period < 2 {
		return nil, ErrPeriod
	}
	if opts.Width < opts.Period {
		return nil, ErrWidth
	}
	if opts.Lag < 0 || opts.Lag > opts.Width {
		return nil, ErrLag
	}

	m := &Morlet{
		period: opts.Period,
		width:  opts.Width,
		lag:    opts.Lag,
		imag:   opts.Imag,
		npts:   2*opts.Width + 1,
	}
	m.n = nextPow2(m.npts)

	plan, err := fft.New(m.n)
	if err != nil {
		return nil, err
	}
	m.plan = plan

	freq := 1.0 / float64(m.period)
	fwidth := 1.0 / float64(m.width)
	gauss := func(f float64) float64 {
		d := (f - freq) / fwidth
		return math.Exp(-0.5 * d * d)
	}

	m.weights = make([]float64, m.n)
	m.weights[0] = gauss(0)
	for k := 1; k < m.n/2; k++ {
		m.weights[k] = 2 * gauss(float64(k)/float64(m.n))
	}
	m.weights[m.n/2] = gauss(0.5)
	// Bins above Nyquist stay at zero weight.

	return m, nil
}

// SampleCount reports how many samples Transform consumes per call.
func (m *Morlet) SampleCount() int { return m.npts }

// Transform filters one window and returns the sample at the
// configured lag. x must be in reverse time order, x[0] being the
// newest sample, and hold at least SampleCount() values; extra
// samples beyond that are ignored. x is not modified.
//
// Algorithm Outline:
//
//	Stage 1: copy the first 2*width+1 samples and subtract their mean,
//	         so the DC bin carries no price-level bias.
//	Stage 2: zero-pad to the FFT size and transform forward.
//	Stage 3: apply the precomputed Gaussian weights. In-phase output
//	         scales each bin; quadrature output additionally rotates
//	         the spectrum by -90 degrees (multiplies by -i).
//	Stage 4: transform back and return the real sample at the lag
//	         position, divided by n to undo the unnormalized inverse.
//
// Complexity: O(n log n) time, O(n) transient space per call.
//
// Errors:
//   - ErrShortInput if len(x) < SampleCount().
func (m *Morlet) Transform(x []float64) (float64, error) {
	if len(x) < m.npts {
		return 0, ErrShortInput
	}

	// Stage 1: demeaned copy of the active window.
	re := make([]float64, m.n)
	im := make([]float64, m.n)
	var mean float64
	for j := 0; j < m.npts; j++ {
		re[j] = x[j]
		mean += x[j]
	}
	mean /= float64(m.npts)
	for j := 0; j < m.npts; j++ {
		re[j] -= mean
	}

	// Stage 2: forward transform; re[npts:] is already zero padding.
	if err := m.plan.Transform(re, im, fft.Forward); err != nil {
		return 0, err
	}

	// Stage 3: Gaussian band-pass over the analytic spectrum.
	if m.imag {
		for k, w := range m.weights {
			re[k], im[k] = im[k]*w, -re[k]*w
		}
	} else {
		for k, w := range m.weights {
			re[k] *= w
			im[k] *= w
		}
	}

	// Stage 4: inverse transform and lag read-out.
	if err := m.plan.Transform(re, im, fft.Inverse); err != nil {
		return 0, err
	}
	return re[m.lag] / float64(m.n), nil
}

// nextPow2 returns the smallest power of two >= v.
func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}
