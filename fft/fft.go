// SPDX-License-Identifier: MIT
// Package: lvlsig/fft
//
// fft.go — plan construction and the in-place radix-2 transform.

package fft

import (
	"fmt"
	"math"
)

// Plan owns the precomputed twiddle tables for one transform size.
// Immutable after New; the tables are read-only across Transform calls,
// so a single Plan may serve many goroutines provided each call supplies
// its own buffers.
type Plan struct {
	n   int       // transform size (positive power of two)
	cos []float64 // cos(2πk/n) for k in [0, n/2)
	sin []float64 // sin(2πk/n) for k in [0, n/2)
}

// New returns a Plan for size n, precomputing the n/2 twiddle-factor
// cosine and sine tables. Errors with ErrSize unless n is a positive
// power of two; on error nothing is allocated.
//
// Complexity: O(n) time and memory, once per size.
func New(n int) (*Plan, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrSize)
	}

	half := n / 2
	p := &Plan{
		n:   n,
		cos: make([]float64, half),
		sin: make([]float64, half),
	}

	step := 2 * math.Pi / float64(n)
	for k := 0; k < half; k++ {
		p.cos[k] = math.Cos(step * float64(k))
		p.sin[k] = math.Sin(step * float64(k))
	}

	return p, nil
}

// Size returns the transform size the plan was built for.
func (p *Plan) Size() int { return p.n }

// Transform runs the in-place radix-2 Cooley–Tukey FFT over the first
// Size() elements of re and im.
//
// Algorithm Outline:
//  1. Bit-reversal permutation of both buffers (Gold–Rader index walk).
//  2. log₂(n) butterfly stages; stage s combines blocks of length 2^s
//     using twiddles read from the precomputed tables at stride n/2^s.
//     Forward applies e^{-2πik/n}; Inverse conjugates (+ sign).
//
// The inverse is unnormalized: Forward followed by Inverse yields the
// input scaled by n. Elements beyond Size() are never touched.
//
// Errors:
//   - ErrShortBuffer — len(re) or len(im) below Size().
//   - ErrDirection   — dir is neither Forward nor Inverse.
//
// Complexity: O(n log n) time, zero allocations.
func (p *Plan) Transform(re, im []float64, dir Direction) error {
	if dir != Forward && dir != Inverse {
		return fmt.Errorf("Transform(dir=%d): %w", int(dir), ErrDirection)
	}
	if len(re) < p.n || len(im) < p.n {
		return fmt.Errorf("Transform(len re=%d, len im=%d, need %d): %w",
			len(re), len(im), p.n, ErrShortBuffer)
	}

	n := p.n

	// Stage 1: bit-reversal permutation.
	for i, j := 0, 0; i < n-1; i++ {
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
		k := n >> 1
		for k <= j {
			j -= k
			k >>= 1
		}
		j += k
	}

	// Twiddle sign: forward -sin, inverse +sin.
	sign := -float64(dir)

	// Stage 2: butterfly passes over doubling block sizes.
	var wRe, wIm, tRe, tIm float64
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size // table step between consecutive twiddles
		for start := 0; start < n; start += size {
			k := 0 // twiddle table index for this block
			for off := 0; off < half; off++ {
				i := start + off
				j := i + half

				wRe = p.cos[k]
				wIm = sign * p.sin[k]

				tRe = wRe*re[j] - wIm*im[j]
				tIm = wRe*im[j] + wIm*re[j]

				re[j] = re[i] - tRe
				im[j] = im[i] - tIm
				re[i] += tRe
				im[i] += tIm

				k += stride
			}
		}
	}

	return nil
}
