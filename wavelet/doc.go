// SPDX-License-Identifier: MIT
// Package: lvlsig/wavelet

// Package wavelet provides the two wavelet transforms behind lvlsig's
// cycle and smoothing indicators: a complex Morlet band-pass filter
// evaluated in the frequency domain, and the classical Daubechies-4
// pyramid with scalar reductions over its smooth band.
//
// 🚀 What is wavelet?
//
// A Morlet wavelet is a complex sinusoid under a Gaussian envelope; it
// measures the amplitude and phase of one oscillation period inside a
// noisy series. lvlsig applies it as a Gabor filter: forward FFT of a
// demeaned window, a Gaussian frequency weight centred on 1/period,
// inverse FFT, and a single sample read at the configured lag. The
// Daubechies-4 transform is the complementary time-domain tool: an
// orthogonal in-place pyramid that splits a series into smooth
// (parent) and detail bands, whose parent statistics (mean, energy,
// total variation, ...) summarise the denoised shape of the window.
//
// ✨ Key features:
//   - Morlet: parameterised by period, width, lag and an output
//     quadrature flag; construction validates every parameter, so a
//     non-nil *Morlet is always usable.
//   - Analytic-signal weighting: bins above Nyquist carry zero weight,
//     DC and Nyquist are applied singly, interior bins doubly, so no
//     energy leaks into wrap-around frequencies.
//   - Daubechies-4: in-place forward/inverse cascade with exact
//     algebraic round-trip, plus seven independent parent-band
//     reductions (Mean, Min, Max, Std, Energy, NLEnergy, Curve).
//   - Explicit precondition errors instead of silent corruption for
//     short or misaligned series and out-of-range levels.
//
// ⚙️ Usage:
//
//	m, err := wavelet.NewMorlet(wavelet.DefaultMorletOptions(10))
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, err := m.Transform(window) // window[0] is the newest sample
//
//	d := wavelet.NewDaubechies()
//	energy, err := d.Energy(window, 3)
//
// Performance:
//   - Morlet.Transform: O(n·log n) per call on the derived FFT size;
//     work buffers are allocated per call, so one *Morlet may be
//     shared by concurrent goroutines.
//   - Daubechies Forward/Inverse: O(n) per level, zero allocations
//     after the scratch buffer has grown to the largest series seen.
//     The scratch buffer makes *Daubechies unsafe for concurrent use.
//
// See also: lvlsig/fft for the underlying transform engine and
// lvlsig/indicator for the windowing conventions feeding this package.
package wavelet
