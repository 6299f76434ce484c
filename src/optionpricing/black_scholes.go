package optionpricing

import (
	"fmt"
	"math"

	"option-terminal/src/eventmodels"
)

// PriceAndGreeks evaluates the Black-Scholes price and the analytic Greeks
// for one option leg at volatility sigma, with a continuous dividend yield.
// The result is a pure function of (contract, sigma).
func PriceAndGreeks(contract eventmodels.OptionContract, sigma float64) (eventmodels.PricingResult, error) {
	if err := contract.Validate(); err != nil {
		return eventmodels.PricingResult{}, fmt.Errorf("PriceAndGreeks: %w", err)
	}

	if sigma <= 0 {
		return eventmodels.PricingResult{}, fmt.Errorf("PriceAndGreeks: volatility must be positive, found %v: %w", sigma, eventmodels.InvalidInputErr)
	}

	S := contract.Underlying
	K := contract.Strike
	T := contract.TimeToExpiry
	r := contract.RiskFreeRate
	q := contract.DividendYield

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	discR := math.Exp(-r * T)
	discQ := math.Exp(-q * T)
	pdf := normPDF(d1)

	result := eventmodels.PricingResult{
		D1:    d1,
		D2:    d2,
		Gamma: discQ * pdf / (S * sigma * sqrtT),
		Vega:  S * discQ * pdf * sqrtT,
	}

	switch contract.OptionType {
	case eventmodels.OptionTypeCall:
		result.Price = S*discQ*normCDF(d1) - K*discR*normCDF(d2)
		result.Delta = discQ * normCDF(d1)
		result.Theta = -(S*discQ*pdf*sigma)/(2*sqrtT) - r*K*discR*normCDF(d2) + q*S*discQ*normCDF(d1)
		result.Rho = K * T * discR * normCDF(d2)
	case eventmodels.OptionTypePut:
		result.Price = K*discR*normCDF(-d2) - S*discQ*normCDF(-d1)
		result.Delta = discQ * (normCDF(d1) - 1.0)
		result.Theta = -(S*discQ*pdf*sigma)/(2*sqrtT) + r*K*discR*normCDF(-d2) - q*S*discQ*normCDF(-d1)
		result.Rho = -K * T * discR * normCDF(-d2)
	}

	// guard against the price dipping below zero from rounding in the deep
	// out-of-the-money tails
	result.Price = math.Max(result.Price, 0)

	return result, nil
}
