// SPDX-License-Identifier: MIT
// Package: lvlsig/fft
//
// types.go — direction enum and sentinel errors.
//
// Error policy (aligned with the module):
//   • Only package-level sentinels; branch with errors.Is.
//   • Factories wrap sentinels with argument context via %w.
//   • Transform never panics; contract violations return sentinels.

package fft

import "errors"

// Direction selects the transform sense. The numeric values are part of
// the contract: +1 forward (negative-exponent kernel), -1 inverse
// (conjugated twiddles, unnormalized).
type Direction int

const (
	// Forward runs the analysis transform (time → frequency).
	Forward Direction = 1

	// Inverse runs the synthesis transform (frequency → time) WITHOUT the
	// 1/n normalization; callers divide by n when amplitude matters.
	Inverse Direction = -1
)

// ErrSize indicates the requested plan size is not a positive power of two.
// Usage: if errors.Is(err, fft.ErrSize) { /* pick the next power of two */ }.
var ErrSize = errors.New("fft: size must be a positive power of two")

// ErrShortBuffer indicates a Transform buffer is shorter than the plan size.
// Both re and im must hold at least Size() elements.
var ErrShortBuffer = errors.New("fft: buffer shorter than plan size")

// ErrDirection indicates a Direction other than Forward or Inverse.
var ErrDirection = errors.New("fft: unknown transform direction")
