package specfun_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsig/specfun"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNormalCDF
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Probability mass below a few familiar z-scores — the building block of
//	every compressed indicator in this module.
//
// Accuracy: the polynomial approximation is good to ~1e-7, far below the
// printed precision.
func ExampleNormalCDF() {
	fmt.Printf("Phi(0)  = %.4f\n", specfun.NormalCDF(0))
	fmt.Printf("Phi(1)  = %.4f\n", specfun.NormalCDF(1))
	fmt.Printf("Phi(-1) = %.4f\n", specfun.NormalCDF(-1))
	// Output:
	// Phi(0)  = 0.5000
	// Phi(1)  = 0.8413
	// Phi(-1) = 0.1587
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverseNormalCDF
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Recover the two-sided 95% critical value from its tail mass.
func ExampleInverseNormalCDF() {
	fmt.Printf("z(0.975) = %.2f\n", specfun.InverseNormalCDF(0.975))
	// Output:
	// z(0.975) = 1.96
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFCDF
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	F(2,2) has the closed-form CDF f/(1+f); at f=3 three quarters of the
//	mass lies below.
func ExampleFCDF() {
	fmt.Printf("FCDF(2,2,3) = %.4f\n", specfun.FCDF(2, 2, 3))
	// Output:
	// FCDF(2,2,3) = 0.7500
}
