// SPDX-License-Identifier: MIT
// Package: lvlsig/fft
//
// Package fft implements the iterative radix-2 Cooley–Tukey fast Fourier
// transform over caller-owned buffers, for power-of-two sizes only.
//
// 🚀 What is fft?
//
//	The transform primitive under the Morlet wavelet filter:
//	  • New(n) precomputes n/2 cosine and n/2 sine twiddle entries once
//	  • Plan.Transform(re, im, dir) runs in place on the caller's buffers
//	  • Forward (+1) uses the negative-exponent convention; Inverse (-1)
//	    conjugates the twiddles
//
// ✨ Key contracts:
//   - Construction validates n (positive power of two) and returns an error
//     otherwise — a returned *Plan is always usable, there is no validity
//     flag to check at call sites
//   - Transform is strictly in place: bit-reversal permutation, then
//     log₂(n) butterfly stages reading the precomputed tables; zero
//     allocations per call
//   - The inverse is UNNORMALIZED: an amplitude-correct round trip divides
//     by n at the call site (forward → inverse → x·n)
//   - A Plan is immutable after construction and safe for concurrent use
//     as long as every call owns its re/im buffers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsig/fft"
//
//	plan, err := fft.New(1024)
//	if err != nil { ... }
//	_ = plan.Transform(re, im, fft.Forward)
//	_ = plan.Transform(re, im, fft.Inverse)
//	for i := range re { re[i] /= 1024; im[i] /= 1024 } // caller normalizes
//
// Performance:
//
//   - Time:   O(n log n) per Transform
//   - Memory: O(n) tables per Plan, zero per call
package fft
