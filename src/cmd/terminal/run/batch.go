package run

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"option-terminal/src/eventmodels"
	"option-terminal/src/optionpricing"
	"option-terminal/src/renderer"
	"option-terminal/src/utils"
)

func runBatch(csvPath string, cfg eventmodels.SolverConfig) error {
	rows, err := utils.LoadContractRows(csvPath)
	if err != nil {
		return fmt.Errorf("runBatch: %w", err)
	}

	results := make([]eventmodels.BatchResult, 0, len(rows))
	for i, row := range rows {
		result := priceRow(row, cfg)
		if result.Err != nil {
			log.Warnf("row %d (%s): %v", i+1, row.Symbol, result.Err)
		}

		results = append(results, result)
	}

	fmt.Print(renderer.Batch(results))
	return nil
}

// priceRow prices a row with a vol cell, or solves IV from a market price
// cell. A row with neither is a failure.
func priceRow(row *eventmodels.CsvContractDTO, cfg eventmodels.SolverConfig) eventmodels.BatchResult {
	result := eventmodels.BatchResult{
		Symbol:     row.Symbol,
		OptionType: eventmodels.OptionType(row.OptionType),
	}

	contract, err := row.ToOptionContract()
	if err != nil {
		result.Err = err
		return result
	}

	vol, err := row.GetVol()
	if err != nil {
		result.Err = err
		return result
	}

	marketPrice, err := row.GetMarketPrice()
	if err != nil {
		result.Err = err
		return result
	}

	switch {
	case vol != nil:
		pricing, err := optionpricing.PriceAndGreeks(contract, *vol)
		if err != nil {
			result.Err = err
			return result
		}

		result.Price = &pricing.Price

	case marketPrice != nil:
		iv, err := optionpricing.ImpliedVolatility(contract, *marketPrice, cfg)
		if err != nil {
			result.Err = err
			return result
		}

		result.ImpliedVol = &iv.Sigma

	default:
		result.Err = fmt.Errorf("priceRow: row must set either vol or market_price")
	}

	return result
}
