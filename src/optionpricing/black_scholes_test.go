package optionpricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"option-terminal/src/eventmodels"
)

func newTestContract(optionType eventmodels.OptionType) eventmodels.OptionContract {
	return eventmodels.OptionContract{
		Underlying:   100,
		Strike:       100,
		TimeToExpiry: 1,
		RiskFreeRate: 0.05,
		OptionType:   optionType,
	}
}

func TestPriceAndGreeks(t *testing.T) {
	t.Run("call price and delta match the known example", func(t *testing.T) {
		result, err := PriceAndGreeks(newTestContract(eventmodels.OptionTypeCall), 0.2)
		assert.NoError(t, err)

		assert.InDelta(t, 10.4506, result.Price, 1e-4)
		assert.InDelta(t, 0.6368, result.Delta, 1e-4)
		assert.InDelta(t, 0.35, result.D1, 1e-9)
		assert.InDelta(t, 0.15, result.D2, 1e-9)
	})

	t.Run("call greeks match the closed forms", func(t *testing.T) {
		result, err := PriceAndGreeks(newTestContract(eventmodels.OptionTypeCall), 0.2)
		assert.NoError(t, err)

		assert.InDelta(t, 0.018762, result.Gamma, 1e-5)
		assert.InDelta(t, 37.5240, result.Vega, 1e-3)
		assert.InDelta(t, -6.4140, result.Theta, 1e-3)
		assert.InDelta(t, 53.2325, result.Rho, 1e-3)
	})

	t.Run("put delta and rho have the opposite sign", func(t *testing.T) {
		result, err := PriceAndGreeks(newTestContract(eventmodels.OptionTypePut), 0.2)
		assert.NoError(t, err)

		assert.Less(t, result.Delta, 0.0)
		assert.Less(t, result.Rho, 0.0)
		assert.Greater(t, result.Gamma, 0.0)
		assert.Greater(t, result.Vega, 0.0)
	})

	t.Run("dividend yield lowers the call price", func(t *testing.T) {
		base := newTestContract(eventmodels.OptionTypeCall)
		withDividend := base
		withDividend.DividendYield = 0.03

		baseResult, err := PriceAndGreeks(base, 0.2)
		assert.NoError(t, err)

		dividendResult, err := PriceAndGreeks(withDividend, 0.2)
		assert.NoError(t, err)

		assert.Less(t, dividendResult.Price, baseResult.Price)
	})
}

func TestPutCallParity(t *testing.T) {
	strikes := []float64{80, 100, 120}
	expiries := []float64{0.25, 1, 2}
	vols := []float64{0.1, 0.2, 0.5, 1.0}
	yields := []float64{0, 0.02}

	for _, strike := range strikes {
		for _, expiry := range expiries {
			for _, vol := range vols {
				for _, yield := range yields {
					contract := eventmodels.OptionContract{
						Underlying:    100,
						Strike:        strike,
						TimeToExpiry:  expiry,
						RiskFreeRate:  0.05,
						DividendYield: yield,
						OptionType:    eventmodels.OptionTypeCall,
					}

					call, err := PriceAndGreeks(contract, vol)
					assert.NoError(t, err)

					put, err := PriceAndGreeks(contract.WithOptionType(eventmodels.OptionTypePut), vol)
					assert.NoError(t, err)

					forward := contract.Underlying*math.Exp(-yield*expiry) - strike*math.Exp(-0.05*expiry)
					assert.InDelta(t, forward, call.Price-put.Price, 1e-6)
				}
			}
		}
	}
}

func TestPriceMonotonicInVol(t *testing.T) {
	for _, optionType := range []eventmodels.OptionType{eventmodels.OptionTypeCall, eventmodels.OptionTypePut} {
		t.Run(string(optionType), func(t *testing.T) {
			contract := newTestContract(optionType)

			prev := -1.0
			for vol := 0.05; vol <= 3.0; vol += 0.05 {
				result, err := PriceAndGreeks(contract, vol)
				assert.NoError(t, err)
				assert.Greater(t, result.Price, prev)
				assert.Greater(t, result.Vega, 0.0)

				prev = result.Price
			}
		})
	}
}

func TestPriceAndGreeksInvalidInputs(t *testing.T) {
	base := newTestContract(eventmodels.OptionTypeCall)

	t.Run("non-positive underlying", func(t *testing.T) {
		contract := base
		contract.Underlying = 0

		_, err := PriceAndGreeks(contract, 0.2)
		assert.ErrorIs(t, err, eventmodels.InvalidInputErr)
	})

	t.Run("non-positive strike", func(t *testing.T) {
		contract := base
		contract.Strike = -5

		_, err := PriceAndGreeks(contract, 0.2)
		assert.ErrorIs(t, err, eventmodels.InvalidInputErr)
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		contract := base
		contract.TimeToExpiry = 0

		_, err := PriceAndGreeks(contract, 0.2)
		assert.ErrorIs(t, err, eventmodels.InvalidInputErr)
	})

	t.Run("non-positive vol", func(t *testing.T) {
		_, err := PriceAndGreeks(base, 0)
		assert.ErrorIs(t, err, eventmodels.InvalidInputErr)
	})

	t.Run("unknown option type", func(t *testing.T) {
		contract := base
		contract.OptionType = "straddle"

		_, err := PriceAndGreeks(contract, 0.2)
		assert.ErrorIs(t, err, eventmodels.InvalidInputErr)
	})
}
