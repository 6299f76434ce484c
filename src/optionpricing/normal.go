package optionpricing

import "math"

// normCDF is the standard normal cumulative distribution function,
// Phi(x) = (1 + erf(x/sqrt(2))) / 2.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
