// SPDX-License-Identifier: MIT
// Package: lvlsig/wavelet

package wavelet

import "errors"

// MorletOptions bundles the construction parameters of a Morlet
// transformer. The zero value is invalid; start from
// DefaultMorletOptions and override fields as needed.
type MorletOptions struct {
	// Period is the cycle length, in samples, the filter is tuned to.
	// Must be at least 2 (the Nyquist limit).
	Period int

	// Width is the half-width of the analysis window, in samples; the
	// transform consumes 2*Width+1 samples per call. Must be at least
	// Period, conventionally twice the Period.
	Width int

	// Lag selects which sample of the filtered window is returned,
	// counted backwards from the newest sample. Must lie in
	// [0, Width]; Width centres the read-out on the window.
	Lag int

	// Imag selects the quadrature (imaginary) component of the
	// filtered signal instead of the in-phase (real) one. The
	// quadrature component leads the in-phase one by a quarter cycle,
	// which makes it positive at a rising zero-crossing.
	Imag bool
}

// DefaultMorletOptions returns the conventional configuration for a
// given period: a window two periods wide on each side, read out at
// its centre, in-phase output.
func DefaultMorletOptions(period int) MorletOptions {
	return MorletOptions{
		Period: period,
		Width:  2 * period,
		Lag:    2 * period,
		Imag:   false,
	}
}

var (
	// ErrPeriod is returned by NewMorlet when Period < 2.
	ErrPeriod = errors.New("wavelet: period must be at least 2")

	// ErrWidth is returned by NewMorlet when Width < Period.
	ErrWidth = errors.New("wavelet: width must be at least the period")

	// ErrLag is returned by NewMorlet when Lag lies outside [0, Width].
	ErrLag = errors.New("wavelet: lag must lie in [0, width]")

	// ErrShortInput is returned by Morlet.Transform when the input
	// holds fewer than the required 2*Width+1 samples.
	ErrShortInput = errors.New("wavelet: input shorter than required sample count")

	// ErrLevel is returned by Daubechies methods when level < 1.
	ErrLevel = errors.New("wavelet: level must be at least 1")

	// ErrShortSeries is returned by Daubechies methods when the series
	// is too short for the requested level (needs 2^(level+1) samples).
	ErrShortSeries = errors.New("wavelet: series too short for level")

	// ErrUnevenLength is returned by Daubechies methods when the series
	// length does not divide evenly through all requested halvings.
	ErrUnevenLength = errors.New("wavelet: series length must be divisible by 2^level")
)
