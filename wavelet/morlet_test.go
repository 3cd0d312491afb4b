package wavelet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsig/wavelet"
)

// sineSeries returns n samples of sin(2*pi*t/period), t = 0..n-1.
func sineSeries(n int, period float64) []float64 {
	xs := make([]float64, n)
	for t := range xs {
		xs[t] = math.Sin(2 * math.Pi * float64(t) / period)
	}
	return xs
}

// reverseWindow extracts npts samples ending at t0 in reverse time
// order, the convention Morlet.Transform expects.
func reverseWindow(s []float64, t0, npts int) []float64 {
	w := make([]float64, npts)
	for j := range w {
		w[j] = s[t0-j]
	}
	return w
}

// TestNewMorlet_ValidatesOptions runs the construction parameter
// checks against their sentinels.
func TestNewMorlet_ValidatesOptions(t *testing.T) {
	cases := []struct {
		name string
		opts wavelet.MorletOptions
		want error
	}{
		{"period below nyquist", wavelet.MorletOptions{Period: 1, Width: 10, Lag: 5}, wavelet.ErrPeriod},
		{"width below period", wavelet.MorletOptions{Period: 10, Width: 9, Lag: 5}, wavelet.ErrWidth},
		{"negative lag", wavelet.MorletOptions{Period: 10, Width: 20, Lag: -1}, wavelet.ErrLag},
		{"lag beyond width", wavelet.MorletOptions{Period: 10, Width: 20, Lag: 21}, wavelet.ErrLag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := wavelet.NewMorlet(tc.opts)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

// TestDefaultMorletOptions pins the conventional derivation of width
// and lag from the period.
func TestDefaultMorletOptions(t *testing.T) {
	opts := wavelet.DefaultMorletOptions(10)
	assert.Equal(t, 10, opts.Period)
	assert.Equal(t, 20, opts.Width)
	assert.Equal(t, 20, opts.Lag)
	assert.False(t, opts.Imag)

	m, err := wavelet.NewMorlet(opts)
	require.NoError(t, err)
	assert.Equal(t, 41, m.SampleCount())
}

// TestMorletTransform_ShortInput expects ErrShortInput when the window
// holds fewer than SampleCount samples.
func TestMorletTransform_ShortInput(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.DefaultMorletOptions(10))
	require.NoError(t, err)

	_, err = m.Transform(make([]float64, m.SampleCount()-1))
	assert.ErrorIs(t, err, wavelet.ErrShortInput)
}

// TestMorletTransform_RejectsDC checks that a flat window filters to
// zero: demeaning removes the level and the pass band excludes DC.
func TestMorletTransform_RejectsDC(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.DefaultMorletOptions(10))
	require.NoError(t, err)

	flat := make([]float64, m.SampleCount())
	for i := range flat {
		flat[i] = 42.0
	}
	v, err := m.Transform(flat)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-9)
}

// TestMorletTransform_QuadraturePhase drives the imaginary component
// with a pure tone: it leads the tone by a quarter cycle, so it peaks
// positive at a rising zero-crossing of the price and negative at a
// falling one.
func TestMorletTransform_QuadraturePhase(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.MorletOptions{Period: 10, Width: 20, Lag: 20, Imag: true})
	require.NoError(t, err)

	s := sineSeries(1024, 10)

	// Lag 20 behind t0=520 lands on t=500, a rising zero-crossing.
	rising, err := m.Transform(reverseWindow(s, 520, m.SampleCount()))
	require.NoError(t, err)
	assert.Greater(t, rising, 0.5)

	// t=505 is a falling zero-crossing.
	falling, err := m.Transform(reverseWindow(s, 525, m.SampleCount()))
	require.NoError(t, err)
	assert.Less(t, falling, -0.5)
}

// TestMorletTransform_InPhaseTracksExtrema drives the real component
// with a tone whose extrema fall on integer samples: the filter output
// reproduces the tone's value at the lag position.
func TestMorletTransform_InPhaseTracksExtrema(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.MorletOptions{Period: 8, Width: 16, Lag: 16})
	require.NoError(t, err)

	s := sineSeries(1024, 8)

	// Lag 16 behind t0=514 lands on t=498 = 2 (mod 8), a crest.
	crest, err := m.Transform(reverseWindow(s, 514, m.SampleCount()))
	require.NoError(t, err)
	assert.Greater(t, crest, 0.5)

	// t=502 = 6 (mod 8) is a trough.
	trough, err := m.Transform(reverseWindow(s, 518, m.SampleCount()))
	require.NoError(t, err)
	assert.Less(t, trough, -0.5)
}

// TestMorletTransform_InputUntouched verifies the window survives a
// call bit for bit.
func TestMorletTransform_InputUntouched(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.DefaultMorletOptions(10))
	require.NoError(t, err)

	s := sineSeries(200, 10)
	window := reverseWindow(s, 150, m.SampleCount())
	orig := append([]float64(nil), window...)

	_, err = m.Transform(window)
	require.NoError(t, err)
	require.Equal(t, orig, window)
}

// TestMorletTransform_IgnoresExtraSamples checks only the first
// SampleCount samples influence the result.
func TestMorletTransform_IgnoresExtraSamples(t *testing.T) {
	m, err := wavelet.NewMorlet(wavelet.DefaultMorletOptions(10))
	require.NoError(t, err)

	s := sineSeries(400, 10)
	exact := reverseWindow(s, 300, m.SampleCount())
	padded := reverseWindow(s, 300, m.SampleCount()+40)

	a, err := m.Transform(exact)
	require.NoError(t, err)
	b, err := m.Transform(padded)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
