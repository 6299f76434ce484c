package optionpricing

import (
	"fmt"
	"math"

	"option-terminal/src/eventmodels"
)

// PriceBounds returns the no-arbitrage lower and upper bounds on the
// contract's market price: the intrinsic value of the discounted forward
// below, the discounted underlying (calls) or strike (puts) above.
func PriceBounds(contract eventmodels.OptionContract) (lower float64, upper float64) {
	discS := contract.Underlying * math.Exp(-contract.DividendYield*contract.TimeToExpiry)
	discK := contract.Strike * math.Exp(-contract.RiskFreeRate*contract.TimeToExpiry)

	if contract.OptionType == eventmodels.OptionTypePut {
		return math.Max(0, discK-discS), discK
	}

	return math.Max(0, discS-discK), discS
}

// ImpliedVolatility recovers the volatility that reproduces marketPrice under
// Black-Scholes. Newton-Raphson on analytic vega, seeded with the
// Brenner-Subrahmanyam estimate; whenever vega collapses or a Newton step
// would leave the bracket, the step degrades to bisection. The bracket
// [cfg.SigmaMin, cfg.SigmaMax] tightens on every evaluation since price is
// strictly increasing in sigma.
func ImpliedVolatility(contract eventmodels.OptionContract, marketPrice float64, cfg eventmodels.SolverConfig) (eventmodels.IVResult, error) {
	if err := contract.Validate(); err != nil {
		return eventmodels.IVResult{}, fmt.Errorf("ImpliedVolatility: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return eventmodels.IVResult{}, fmt.Errorf("ImpliedVolatility: %w", err)
	}

	lowerBound, upperBound := PriceBounds(contract)
	if marketPrice <= lowerBound || marketPrice >= upperBound {
		return eventmodels.IVResult{}, fmt.Errorf("ImpliedVolatility: market price %v is outside (%v, %v): %w", marketPrice, lowerBound, upperBound, eventmodels.OutOfBoundsErr)
	}

	lo := cfg.SigmaMin
	hi := cfg.SigmaMax
	sigma := initialGuess(contract, marketPrice, lo, hi)

	var residual float64
	for i := 0; i < cfg.MaxIterations; i++ {
		result, err := PriceAndGreeks(contract, sigma)
		if err != nil {
			return eventmodels.IVResult{}, fmt.Errorf("ImpliedVolatility: %w", err)
		}

		residual = result.Price - marketPrice
		if math.Abs(residual) < cfg.Tolerance {
			return eventmodels.IVResult{
				Sigma:      sigma,
				Iterations: i + 1,
				Residual:   residual,
			}, nil
		}

		if residual > 0 {
			hi = sigma
		} else {
			lo = sigma
		}

		next := sigma - residual/result.Vega
		if result.Vega < cfg.VegaFloor || math.IsNaN(next) || next <= lo || next >= hi {
			next = (lo + hi) / 2.0
		}

		sigma = next
	}

	return eventmodels.IVResult{}, &eventmodels.NonConvergenceError{
		LastSigma:  sigma,
		Residual:   residual,
		Iterations: cfg.MaxIterations,
	}
}

// initialGuess is the Brenner-Subrahmanyam moment-matched seed,
// sqrt(2*pi/T) * price / S, clamped to the bracket.
func initialGuess(contract eventmodels.OptionContract, marketPrice float64, lo, hi float64) float64 {
	guess := math.Sqrt(2.0*math.Pi/contract.TimeToExpiry) * marketPrice / contract.Underlying

	if guess < lo {
		return lo
	}

	if guess > hi {
		return hi
	}

	return guess
}
