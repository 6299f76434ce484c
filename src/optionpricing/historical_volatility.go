package optionpricing

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252.0

// AnnualizedVolatility estimates annualized volatility from a series of
// closing prices: the standard deviation of daily log returns scaled by
// sqrt(252).
func AnnualizedVolatility(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("AnnualizedVolatility: need at least 2 closes, found %d", len(closes))
	}

	logReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("AnnualizedVolatility: closes must be positive, found %v", math.Min(closes[i-1], closes[i]))
		}

		logReturns = append(logReturns, math.Log(closes[i]/closes[i-1]))
	}

	sd, err := stats.StandardDeviation(logReturns)
	if err != nil {
		return 0, fmt.Errorf("failed to caculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(tradingDaysPerYear), nil
}
