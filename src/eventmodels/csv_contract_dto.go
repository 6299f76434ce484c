package eventmodels

import (
	"fmt"
	"strconv"
	"strings"
)

// CsvContractDTO is one row of a batch pricing sheet. Vol and MarketPrice are
// kept as strings so a blank cell can be told apart from zero: a row with a
// vol is priced, a row with a market price is solved for implied volatility.
type CsvContractDTO struct {
	Symbol        string  `csv:"symbol"`
	OptionType    string  `csv:"type"`
	Underlying    float64 `csv:"spot"`
	Strike        float64 `csv:"strike"`
	Days          float64 `csv:"days"`
	RiskFreeRate  float64 `csv:"rate"`
	DividendYield float64 `csv:"dividend"`
	Vol           string  `csv:"vol"`
	MarketPrice   string  `csv:"market_price"`
}

func (dto *CsvContractDTO) ToOptionContract() (OptionContract, error) {
	contract := OptionContract{
		Underlying:    dto.Underlying,
		Strike:        dto.Strike,
		TimeToExpiry:  dto.Days / DaysPerYear,
		RiskFreeRate:  dto.RiskFreeRate,
		DividendYield: dto.DividendYield,
		OptionType:    OptionType(strings.ToLower(strings.TrimSpace(dto.OptionType))),
	}

	if err := contract.Validate(); err != nil {
		return OptionContract{}, fmt.Errorf("CsvContractDTO: ToOptionContract: %w", err)
	}

	return contract, nil
}

// GetVol returns the row's volatility, or nil when the cell is blank.
func (dto *CsvContractDTO) GetVol() (*float64, error) {
	return parseOptionalFloat(dto.Vol, "vol")
}

// GetMarketPrice returns the row's market price, or nil when the cell is blank.
func (dto *CsvContractDTO) GetMarketPrice() (*float64, error) {
	return parseOptionalFloat(dto.MarketPrice, "market_price")
}

func parseOptionalFloat(s string, column string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parseOptionalFloat: invalid %s value %q: %v", column, s, err)
	}

	return &v, nil
}
