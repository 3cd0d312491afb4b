package fft_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsig/fft"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePlan_Transform
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A unit impulse has a perfectly flat spectrum: every frequency bin
//	carries amplitude one. The transform runs in place on the caller's
//	buffers.
func ExamplePlan_Transform() {
	plan, err := fft.New(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	re := []float64{1, 0, 0, 0}
	im := []float64{0, 0, 0, 0}
	_ = plan.Transform(re, im, fft.Forward)

	fmt.Printf("spectrum = %.1f\n", re)
	// Output:
	// spectrum = [1.0 1.0 1.0 1.0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePlan_Transform_roundTrip
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Forward then inverse scales the signal by n — the inverse is
//	unnormalized and the caller divides. Here x = [4 8 4 0] survives the
//	round trip once each element is divided by n=4.
func ExamplePlan_Transform_roundTrip() {
	plan, _ := fft.New(4)

	re := []float64{4, 8, 4, 0}
	im := []float64{0, 0, 0, 0}

	_ = plan.Transform(re, im, fft.Forward)
	_ = plan.Transform(re, im, fft.Inverse)

	n := float64(plan.Size())
	for i := range re {
		re[i] /= n
	}

	fmt.Printf("recovered = %.1f\n", re)
	// Output:
	// recovered = [4.0 8.0 4.0 0.0]
}
