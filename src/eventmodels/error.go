package eventmodels

import "fmt"

var InvalidInputErr = fmt.Errorf("inputs must be positive")
var OutOfBoundsErr = fmt.Errorf("market price is outside no-arbitrage bounds")
var NonConvergenceErr = fmt.Errorf("implied volatility solver failed to converge")

// NonConvergenceError reports the solver state at the iteration cap so the
// caller can show diagnostics instead of an inaccurate estimate. It matches
// NonConvergenceErr under errors.Is.
type NonConvergenceError struct {
	LastSigma  float64
	Residual   float64
	Iterations int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("implied volatility solver failed to converge after %d iterations: last sigma=%.6f, residual=%.6g", e.Iterations, e.LastSigma, e.Residual)
}

func (e *NonConvergenceError) Is(target error) bool {
	return target == NonConvergenceErr
}
