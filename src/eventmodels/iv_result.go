package eventmodels

// IVResult is a converged implied volatility estimate. Residual is the signed
// price error price(Sigma) - marketPrice at the final iteration.
type IVResult struct {
	Sigma      float64
	Iterations int
	Residual   float64
}
