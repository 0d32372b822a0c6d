// Package gauss provides the standard normal primitives behind the rating
// formulas: density, cumulative distribution, and quantile.
package gauss

import "gonum.org/v1/gonum/stat/distuv"

var unit = distuv.UnitNormal

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return unit.Prob(x)
}

// CDF returns P(Z <= x) for a standard normal Z. The implementation is
// erfc-based, which keeps precision in the far tails where a direct erf
// evaluation loses digits.
func CDF(x float64) float64 {
	return unit.CDF(x)
}

// Quantile returns the x with CDF(x) = p. Defined for p in (0, 1) only;
// callers validate draw probabilities before reaching this.
func Quantile(p float64) float64 {
	return unit.Quantile(p)
}
