package eventmodels

import "fmt"

// OptionContract describes a single European option: the market inputs and
// the contract terms. TimeToExpiry is expressed in years.
type OptionContract struct {
	Underlying    float64
	Strike        float64
	TimeToExpiry  float64
	RiskFreeRate  float64
	DividendYield float64
	OptionType    OptionType
}

func (c OptionContract) Validate() error {
	if c.Underlying <= 0 {
		return fmt.Errorf("OptionContract: Validate: underlying price must be positive, found %v: %w", c.Underlying, InvalidInputErr)
	}

	if c.Strike <= 0 {
		return fmt.Errorf("OptionContract: Validate: strike price must be positive, found %v: %w", c.Strike, InvalidInputErr)
	}

	if c.TimeToExpiry <= 0 {
		return fmt.Errorf("OptionContract: Validate: time to expiry must be positive, found %v: %w", c.TimeToExpiry, InvalidInputErr)
	}

	return c.OptionType.Validate()
}

// WithOptionType returns a copy of the contract priced as the given leg.
func (c OptionContract) WithOptionType(optionType OptionType) OptionContract {
	c.OptionType = optionType
	return c
}
