// File: builder_impl_test.go
// Package builder_test contains functional tests for all series generators
// in the builder package, verifying waveform shape, determinism per seed,
// invalid-input contracts, and OHLC bar invariants.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsig/builder"
)

// sampleTol bounds the floating-point slack allowed on analytically known
// samples (sin at multiples of π accumulates ~1e-16 per call).
const sampleTol = 1e-12

// equalSlices reports whether two float slices are bit-identical.
func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// signChanges counts strict sign flips in xs, skipping exact zeros so a
// crossing through 0.0 is counted once, not twice.
func signChanges(xs []float64) int {
	count := 0
	prev := 0.0
	for _, x := range xs {
		if x == 0 {
			continue
		}
		if prev != 0 && math.Signbit(x) != math.Signbit(prev) {
			count++
		}
		prev = x
	}
	return count
}

// TestBuilders_Waveforms runs table-driven shape checks for each waveform
// generator against analytically known samples.
func TestBuilders_Waveforms(t *testing.T) {
	t.Parallel() // allow this test to run in parallel with others

	tests := []struct {
		name  string
		build func() []float64
		wantN int                               // expected series length
		check func(t *testing.T, ys []float64) // waveform-specific checks
	}{
		{
			name:  "Sine(quarter-period-grid)",
			build: func() []float64 { return builder.BuildSine(8, 0, builder.WithFrequency(0.25)) },
			wantN: 8,
			check: func(t *testing.T, ys []float64) {
				// f0=0.25 ⇒ ω=π/2, so samples cycle 0,1,0,−1 exactly.
				want := []float64{0, 1, 0, -1, 0, 1, 0, -1}
				for i, w := range want {
					if math.Abs(ys[i]-w) > sampleTol {
						t.Errorf("Sine: sample %d: got %v, want %v", i, ys[i], w)
					}
				}
			},
		},
		{
			name: "Sine(amplitude-and-trend)",
			build: func() []float64 {
				return builder.BuildSine(8, 0,
					builder.WithFrequency(0.25), builder.WithAmplitude(2), builder.WithTrend(0.5))
			},
			wantN: 8,
			check: func(t *testing.T, ys []float64) {
				// yᵢ = 2·sin(π/2·i) + 0.5·i; spot-check the peak and a zero.
				if math.Abs(ys[1]-2.5) > sampleTol {
					t.Errorf("Sine: y[1]: got %v, want 2.5", ys[1])
				}
				if math.Abs(ys[4]-2.0) > sampleTol {
					t.Errorf("Sine: y[4]: got %v, want 2.0 (pure trend)", ys[4])
				}
			},
		},
		{
			name:  "Pulse(rectangular-default)",
			build: func() []float64 { return builder.BuildPulse(16, 0) },
			wantN: 16,
			check: func(t *testing.T, ys []float64) {
				// f0=0.125, duty=0.5 ⇒ on for i mod 8 < 4, off otherwise; the
				// fractions 0,0.125,…,0.875 are exact binary values, so the
				// comparison frac<duty has no rounding slack.
				for i, y := range ys {
					want := 0.0
					if i%8 < 4 {
						want = 1.0
					}
					if y != want {
						t.Errorf("Pulse: sample %d: got %v, want %v", i, y, want)
					}
				}
			},
		},
		{
			name: "Pulse(duty-extremes)",
			build: func() []float64 {
				return builder.BuildPulse(8, 0, builder.WithDuty(1))
			},
			wantN: 8,
			check: func(t *testing.T, ys []float64) {
				// duty=1 ⇒ frac<1 always ⇒ constant A.
				for i, y := range ys {
					if y != 1.0 {
						t.Errorf("Pulse(duty=1): sample %d: got %v, want 1", i, y)
					}
				}
				// duty=0 ⇒ frac<0 never ⇒ all zeros.
				for i, y := range builder.BuildPulse(8, 0, builder.WithDuty(0)) {
					if y != 0.0 {
						t.Errorf("Pulse(duty=0): sample %d: got %v, want 0", i, y)
					}
				}
			},
		},
		{
			name: "Pulse(triangular)",
			build: func() []float64 {
				return builder.BuildPulse(9, 0, builder.WithTriangular(true), builder.WithAmplitude(3))
			},
			wantN: 9,
			check: func(t *testing.T, ys []float64) {
				// Triangle over period 8: 0 at the period edges, A at frac=0.5.
				if ys[0] != 0 || ys[8] != 0 {
					t.Errorf("Triangular: edges: got (%v,%v), want (0,0)", ys[0], ys[8])
				}
				if math.Abs(ys[4]-3.0) > sampleTol {
					t.Errorf("Triangular: apex: got %v, want 3", ys[4])
				}
				// Rising flank must be strictly monotone up to the apex.
				for i := 1; i <= 4; i++ {
					if ys[i] <= ys[i-1] {
						t.Errorf("Triangular: flank not rising at %d: %v ≤ %v", i, ys[i], ys[i-1])
					}
				}
			},
		},
		{
			name:  "Chirp(sweep-accelerates)",
			build: func() []float64 { return builder.BuildChirp(256, 0) },
			wantN: 256,
			check: func(t *testing.T, ys []float64) {
				// Default sweep 0.02→0.25: the second half must oscillate
				// visibly faster than the first (≈50 vs ≈20 sign flips).
				lo := signChanges(ys[:128])
				hi := signChanges(ys[128:])
				if hi <= lo {
					t.Errorf("Chirp: sweep did not accelerate: %d flips then %d", lo, hi)
				}
				// Amplitude envelope stays within |A|.
				for i, y := range ys {
					if math.Abs(y) > 1.0+sampleTol {
						t.Errorf("Chirp: sample %d exceeds amplitude: %v", i, y)
					}
				}
			},
		},
	}

	// Execute each subtest in parallel.
	for _, tc := range tests {
		tc := tc // capture loop variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ys := tc.build()

			// Verify length contract.
			if len(ys) != tc.wantN {
				t.Fatalf("length: got %d, want %d", len(ys), tc.wantN)
			}

			// Waveform-specific checks.
			tc.check(t, ys)

			// Idempotence: a second build with identical arguments must
			// reproduce the series bit for bit (all cases are noiseless).
			if !equalSlices(ys, tc.build()) {
				t.Errorf("idempotence: series changed between identical builds")
			}
		})
	}
}

// TestBuilders_Determinism verifies the RNG policy shared by every
// generator: positional seeds reproduce, WithSeed overrides them, and
// WithRand advances one shared stream across composed calls.
func TestBuilders_Determinism(t *testing.T) {
	t.Parallel()

	noise := builder.WithNoise(0.3)

	// 1. Same positional seed ⇒ identical noisy series.
	a := builder.BuildSine(64, 42, noise)
	b := builder.BuildSine(64, 42, noise)
	if !equalSlices(a, b) {
		t.Errorf("positional seed: identical calls diverged")
	}

	// 2. Different seeds ⇒ different noise draws.
	c := builder.BuildSine(64, 43, noise)
	if equalSlices(a, c) {
		t.Errorf("positional seed: distinct seeds produced identical noise")
	}

	// 3. WithSeed overrides the positional seed entirely.
	d := builder.BuildSine(64, 1, noise, builder.WithSeed(7))
	e := builder.BuildSine(64, 2, noise, builder.WithSeed(7))
	if !equalSlices(d, e) {
		t.Errorf("WithSeed: positional seed leaked into the stream")
	}

	// 4. WithRand shares one stream: the second call continues where the
	//    first stopped, so the two series must differ.
	r := rand.New(rand.NewSource(9))
	f := builder.BuildSine(64, 0, noise, builder.WithRand(r))
	g := builder.BuildSine(64, 0, noise, builder.WithRand(r))
	if equalSlices(f, g) {
		t.Errorf("WithRand: shared stream did not advance between calls")
	}

	// 5. Noiseless builders never touch the RNG, so the seed is inert.
	if !equalSlices(builder.BuildSine(32, 1), builder.BuildSine(32, 999)) {
		t.Errorf("noiseless build: seed changed a deterministic series")
	}
}

// TestBuilders_InvalidInput verifies the never-panic contract: bad sizes
// return nil (or zero Bars), with no partial output.
func TestBuilders_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		if got := builder.BuildSine(n, 0); got != nil {
			t.Errorf("BuildSine(%d): expected nil, got %d samples", n, len(got))
		}
		if got := builder.BuildPulse(n, 0); got != nil {
			t.Errorf("BuildPulse(%d): expected nil, got %d samples", n, len(got))
		}
		if got := builder.BuildChirp(n, 0); got != nil {
			t.Errorf("BuildChirp(%d): expected nil, got %d samples", n, len(got))
		}
		if got := builder.BuildOHLC(n, 0); got.Len() != 0 {
			t.Errorf("BuildOHLC(%d): expected zero Bars, got %d bars", n, got.Len())
		}
	}
}

// TestBuildOHLC_Invariants verifies the structural guarantees of the bar
// generator: column shape, price ordering, gap-free opens, positive
// volume, and bitwise determinism per seed.
func TestBuildOHLC_Invariants(t *testing.T) {
	t.Parallel()

	const days = 100
	bars := builder.BuildOHLC(days, 42)

	// 1. Column shape: five columns of equal length, valid as a whole.
	if bars.Len() != days {
		t.Fatalf("Len: got %d, want %d", bars.Len(), days)
	}
	if err := bars.Validate(); err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}

	for d := 0; d < days; d++ {
		o, h, l, c, v := bars.Open[d], bars.High[d], bars.Low[d], bars.Close[d], bars.Volume[d]

		// 2. Ordering: low ≤ min(open,close) ≤ max(open,close) ≤ high.
		if l > math.Min(o, c) || math.Max(o, c) > h {
			t.Errorf("day %d: ordering violated: O=%v H=%v L=%v C=%v", d, o, h, l, c)
		}

		// 3. Positivity: a geometric walk never touches zero.
		if o <= 0 || h <= 0 || l <= 0 || c <= 0 {
			t.Errorf("day %d: non-positive price: O=%v H=%v L=%v C=%v", d, o, h, l, c)
		}
		if v <= 0 {
			t.Errorf("day %d: non-positive volume: %v", d, v)
		}

		// 4. Continuity: each day opens exactly at the previous close.
		if d > 0 && o != bars.Close[d-1] {
			t.Errorf("day %d: gap: open %v ≠ previous close %v", d, o, bars.Close[d-1])
		}
	}

	// 5. First open is the configured start price.
	if bars.Open[0] != 100.0 {
		t.Errorf("first open: got %v, want default 100", bars.Open[0])
	}

	// 6. Determinism: an identical call reproduces every column bitwise.
	again := builder.BuildOHLC(days, 42)
	if !equalSlices(bars.Open, again.Open) || !equalSlices(bars.High, again.High) ||
		!equalSlices(bars.Low, again.Low) || !equalSlices(bars.Close, again.Close) ||
		!equalSlices(bars.Volume, again.Volume) {
		t.Errorf("determinism: identical calls produced different bars")
	}

	// 7. A different seed must change the path.
	other := builder.BuildOHLC(days, 43)
	if equalSlices(bars.Close, other.Close) {
		t.Errorf("determinism: distinct seeds produced identical paths")
	}
}

// TestBuildOHLC_ZeroVolatility pins the degenerate σ=0 walk: the price
// path collapses to a deterministic exponential, so every bar is a
// zero-range candle rising by exp(μ/steps) per intraday step.
func TestBuildOHLC_ZeroVolatility(t *testing.T) {
	t.Parallel()

	const (
		days = 10
		mu   = 0.001
	)
	bars := builder.BuildOHLC(days, 0,
		builder.WithVolatility(0), builder.WithDrift(mu), builder.WithStartPrice(50))

	ratio := math.Exp(mu) // close/open over one full day
	for d := 0; d < days; d++ {
		// With μ>0 and σ=0 the intraday path rises monotonically, so the
		// extrema coincide with the endpoints exactly.
		if bars.High[d] != bars.Close[d] {
			t.Errorf("day %d: high %v ≠ close %v", d, bars.High[d], bars.Close[d])
		}
		if bars.Low[d] != bars.Open[d] {
			t.Errorf("day %d: low %v ≠ open %v", d, bars.Low[d], bars.Open[d])
		}
		if got := bars.Close[d] / bars.Open[d]; math.Abs(got-ratio) > sampleTol {
			t.Errorf("day %d: daily growth: got %v, want %v", d, got, ratio)
		}
		// Volume keeps its lognormal shock even on zero-range days.
		if bars.Volume[d] <= 0 {
			t.Errorf("day %d: non-positive volume: %v", d, bars.Volume[d])
		}
	}
	if bars.Open[0] != 50.0 {
		t.Errorf("start price: got %v, want 50", bars.Open[0])
	}
}
