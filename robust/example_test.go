package robust_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsig/robust"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMedian
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A trailing window of raw indicator values with one poisoned (NaN)
//	entry — the filter drops it, the median is taken over what remains.
func ExampleMedian() {
	window := []float64{4.1, math.NaN(), 3.9, 4.4, 4.0}
	fmt.Printf("median = %.2f\n", robust.Median(window))
	// Output:
	// median = 4.05
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIQRPositional
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same eight-value window under both quartile conventions. The
//	positional default averages straddling elements at exact boundaries;
//	R-7 interpolates between them — the spread differs and call sites
//	must pick one deliberately.
func ExampleIQRPositional() {
	window := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	fmt.Printf("positional   = %.2f\n", robust.IQRPositional(window))
	fmt.Printf("interpolated = %.2f\n", robust.IQRInterpolated(window))
	// Output:
	// positional   = 4.00
	// interpolated = 3.50
}
