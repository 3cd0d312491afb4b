package fft_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsig/fft"
)

// benchmarkTransform runs forward transforms of size n over a fixed
// random signal, copying the input back each iteration so every pass
// transforms the same data.
func benchmarkTransform(b *testing.B, n int) {
	plan, err := fft.New(n)
	if err != nil {
		b.Fatalf("New(%d): %v", n, err)
	}

	rng := rand.New(rand.NewSource(1))
	srcRe := make([]float64, n)
	for i := range srcRe {
		srcRe[i] = rng.NormFloat64()
	}
	re := make([]float64, n)
	im := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(re, srcRe)
		for j := range im {
			im[j] = 0
		}
		if err = plan.Transform(re, im, fft.Forward); err != nil {
			b.Fatalf("Transform: %v", err)
		}
	}
}

// BenchmarkTransform_64 measures the Morlet-typical small size.
func BenchmarkTransform_64(b *testing.B) { benchmarkTransform(b, 64) }

// BenchmarkTransform_256 measures a mid-range size.
func BenchmarkTransform_256(b *testing.B) { benchmarkTransform(b, 256) }

// BenchmarkTransform_4096 measures a large spectral-scan size.
func BenchmarkTransform_4096(b *testing.B) { benchmarkTransform(b, 4096) }
