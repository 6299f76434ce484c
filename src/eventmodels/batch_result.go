package eventmodels

// BatchResult is the outcome of one batch sheet row: a price, a recovered
// implied volatility, or a failure.
type BatchResult struct {
	Symbol     string
	OptionType OptionType
	Price      *float64
	ImpliedVol *float64
	Err        error
}
